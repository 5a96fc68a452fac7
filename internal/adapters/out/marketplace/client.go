// Package marketplace implements the remote marketplace data-access gateway
// over its HTTP API. Every failure crossing the wire is wrapped as a
// TransientIOError so callers can classify it without inspecting transport
// details.
package marketplace

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fleetops/internal/core/domain/model/courier"
	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/ports"

	"github.com/go-resty/resty/v2"
)

// Client implements ports.MarketplaceGateway using a resty HTTP client.
type Client struct {
	http *resty.Client
}

// NewClient creates a gateway client for the marketplace API at baseURL.
// A non-positive timeout disables the per-request deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient}
}

// deliveryPayload is the wire representation of one delivery.
type deliveryPayload struct {
	ID                string     `json:"id"`
	OrderID           string     `json:"order_id"`
	CourierID         string     `json:"courier_id"`
	Status            string     `json:"status"`
	TotalProducts     int        `json:"total_products"`
	CollectedProducts int        `json:"collected_products"`
	AssignedAt        time.Time  `json:"assigned_at"`
	PickedUpAt        *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
	ValidationCode    string     `json:"validation_code,omitempty"`
	FailureReason     string     `json:"failure_reason,omitempty"`
	BuyerName         string     `json:"buyer_name"`
	BuyerPhone        string     `json:"buyer_phone"`
	ShopName          string     `json:"shop_name"`
	OrderTotalCents   int64      `json:"order_total_cents"`
	ShippingAddress   string     `json:"shipping_address"`
}

// courierPayload is the wire representation of one fleet member.
type courierPayload struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	ActiveDeliveries int    `json:"active_deliveries"`
}

// statsPayload is the wire representation of the fleet snapshot.
type statsPayload struct {
	TotalDeliveries   int            `json:"total_deliveries"`
	ActiveDeliveries  int            `json:"active_deliveries"`
	DeliveryPersonnel int            `json:"delivery_personnel"`
	StatusBreakdown   map[string]int `json:"status_breakdown"`
}

// FetchDeliveries retrieves the authoritative delivery collection.
func (c *Client) FetchDeliveries(ctx context.Context) ([]*delivery.Delivery, error) {
	var payload []deliveryPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/api/deliveries")
	if err != nil {
		return nil, ports.NewTransientIOError("fetch deliveries", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, ports.NewTransientIOError("fetch deliveries", statusError(resp.StatusCode()))
	}

	deliveries := make([]*delivery.Delivery, 0, len(payload))
	for _, p := range payload {
		d, convErr := toDelivery(p)
		if convErr != nil {
			return nil, convErr
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

// FetchPersonnel retrieves the authoritative fleet roster.
func (c *Client) FetchPersonnel(ctx context.Context) ([]*courier.Courier, error) {
	var payload []courierPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/api/personnel")
	if err != nil {
		return nil, ports.NewTransientIOError("fetch personnel", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, ports.NewTransientIOError("fetch personnel", statusError(resp.StatusCode()))
	}

	couriers := make([]*courier.Courier, 0, len(payload))
	for _, p := range payload {
		id, convErr := kernel.UUIDFromString(p.ID)
		if convErr != nil {
			return nil, convErr
		}

		member, convErr := courier.RestoreCourier(id, p.Name, p.Phone, p.ActiveDeliveries)
		if convErr != nil {
			return nil, convErr
		}
		couriers = append(couriers, member)
	}

	return couriers, nil
}

// FetchStats retrieves the fleet-wide aggregate snapshot.
func (c *Client) FetchStats(ctx context.Context) (ports.FleetSnapshot, error) {
	var payload statsPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/api/stats")
	if err != nil {
		return ports.FleetSnapshot{}, ports.NewTransientIOError("fetch stats", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return ports.FleetSnapshot{}, ports.NewTransientIOError("fetch stats", statusError(resp.StatusCode()))
	}

	breakdown := make(map[delivery.Status]int, len(payload.StatusBreakdown))
	for name, count := range payload.StatusBreakdown {
		status, convErr := delivery.StatusFromString(name)
		if convErr != nil {
			return ports.FleetSnapshot{}, convErr
		}
		breakdown[status] = count
	}

	return ports.FleetSnapshot{
		TotalDeliveries:   payload.TotalDeliveries,
		ActiveDeliveries:  payload.ActiveDeliveries,
		DeliveryPersonnel: payload.DeliveryPersonnel,
		StatusBreakdown:   breakdown,
	}, nil
}

// PersistAssignment reports a courier (re)assignment upstream.
func (c *Client) PersistAssignment(ctx context.Context, deliveryID, courierID kernel.UUID) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"courier_id": courierID.String()}).
		Put(fmt.Sprintf("/api/deliveries/%s/assignment", deliveryID.String()))
	if err != nil {
		return ports.NewTransientIOError("persist assignment", err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return ports.NewTransientIOError("persist assignment", statusError(resp.StatusCode()))
	}

	return nil
}

// PersistCollection reports one collected product upstream.
func (c *Client) PersistCollection(ctx context.Context, deliveryID kernel.UUID, productID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"product_id": productID}).
		Post(fmt.Sprintf("/api/deliveries/%s/collections", deliveryID.String()))
	if err != nil {
		return ports.NewTransientIOError("persist collection", err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return ports.NewTransientIOError("persist collection", statusError(resp.StatusCode()))
	}

	return nil
}

// PersistStatus reports a status transition upstream.
func (c *Client) PersistStatus(ctx context.Context, deliveryID kernel.UUID, status delivery.Status, extra string) error {
	body := map[string]string{"status": status.String()}
	switch status {
	case delivery.Delivered:
		body["validation_code"] = extra
	case delivery.Failed:
		body["failure_reason"] = extra
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Put(fmt.Sprintf("/api/deliveries/%s/status", deliveryID.String()))
	if err != nil {
		return ports.NewTransientIOError("persist status", err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusNoContent {
		return ports.NewTransientIOError("persist status", statusError(resp.StatusCode()))
	}

	return nil
}

func statusError(code int) error {
	return fmt.Errorf("unexpected response status: %d", code)
}

func toDelivery(p deliveryPayload) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromString(p.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromString(p.OrderID)
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromString(p.CourierID)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(p.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		courierID,
		status,
		p.TotalProducts,
		p.CollectedProducts,
		p.AssignedAt,
		p.PickedUpAt,
		p.DeliveredAt,
		p.ValidationCode,
		p.FailureReason,
		delivery.OrderSnapshot{
			BuyerName:       p.BuyerName,
			BuyerPhone:      p.BuyerPhone,
			ShopName:        p.ShopName,
			OrderTotalCents: p.OrderTotalCents,
			ShippingAddress: p.ShippingAddress,
		},
	)
}
