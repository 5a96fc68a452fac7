// Package http exposes the operator-facing REST API over echo. Handlers
// translate requests into commands and queries and map the domain error
// taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/ports"
	"fleetops/internal/pkg/errs"
)

// APIError is the uniform error body returned by every endpoint.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDeliveryRequest is the body of POST /api/v1/deliveries.
type CreateDeliveryRequest struct {
	OrderID         string `json:"order_id"`
	CourierID       string `json:"courier_id"`
	TotalProducts   int    `json:"total_products"`
	BuyerName       string `json:"buyer_name"`
	BuyerPhone      string `json:"buyer_phone"`
	ShopName        string `json:"shop_name"`
	OrderTotalCents int64  `json:"order_total_cents"`
	ShippingAddress string `json:"shipping_address"`
}

// RegisterCourierRequest is the body of POST /api/v1/couriers.
type RegisterCourierRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AssignmentRequest is the body of PUT /api/v1/deliveries/:id/assignment.
type AssignmentRequest struct {
	CourierID string `json:"courier_id"`
}

// CollectionRequest is the body of POST /api/v1/deliveries/:id/collections.
type CollectionRequest struct {
	ProductID string `json:"product_id"`
}

// PickupRequest is the body of POST /api/v1/deliveries/:id/pickup.
type PickupRequest struct {
	AllowPartial bool `json:"allow_partial"`
}

// CompletionRequest is the body of POST /api/v1/deliveries/:id/completion.
type CompletionRequest struct {
	ValidationCode string `json:"validation_code"`
}

// FailureRequest is the body of POST /api/v1/deliveries/:id/failure.
type FailureRequest struct {
	Reason string `json:"reason"`
}

// DeliveryResponse is one in-progress delivery as returned by
// GET /api/v1/deliveries/active.
type DeliveryResponse struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"order_id"`
	CourierID         string    `json:"courier_id"`
	Status            string    `json:"status"`
	TotalProducts     int       `json:"total_products"`
	CollectedProducts int       `json:"collected_products"`
	Progress          int       `json:"progress"`
	AssignedAt        time.Time `json:"assigned_at"`
	BuyerName         string    `json:"buyer_name"`
	ShopName          string    `json:"shop_name"`
	ShippingAddress   string    `json:"shipping_address"`
}

// SuggestionResponse is one ranked courier as returned by
// GET /api/v1/couriers/suggestions.
type SuggestionResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	ActiveDeliveries int    `json:"active_deliveries"`
	Availability     string `json:"availability"`
}

// StatsResponse is the fleet snapshot as returned by GET /api/v1/stats.
type StatsResponse struct {
	TotalDeliveries   int            `json:"total_deliveries"`
	ActiveDeliveries  int            `json:"active_deliveries"`
	DeliveryPersonnel int            `json:"delivery_personnel"`
	StatusBreakdown   map[string]int `json:"status_breakdown"`
	SuccessRate       float64        `json:"success_rate"`
}

// statusFromError maps the domain error taxonomy to HTTP status codes.
// Lifecycle rule violations are conflicts: the request was well formed but
// the delivery's current state forbids it.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, delivery.ErrIllegalTransition),
		errors.Is(err, delivery.ErrInvalidState),
		errors.Is(err, delivery.ErrInvalidTimeline),
		errors.Is(err, delivery.ErrOverCollection):
		return http.StatusConflict
	case errors.Is(err, ports.ErrTransientIO):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
