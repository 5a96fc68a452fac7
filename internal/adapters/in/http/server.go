package http

import (
	"net/http"

	"fleetops/internal/core/application/usecases/commands"
	"fleetops/internal/core/application/usecases/queries"
	"fleetops/internal/core/domain/model/delivery"
	"fleetops/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server wires the REST endpoints to the application's command and query
// handlers.
type Server struct {
	createDeliveryHandler   commands.CreateDeliveryCommandHandler
	registerCourierHandler  commands.RegisterCourierCommandHandler
	assignDeliveryHandler   commands.AssignDeliveryCommandHandler
	recordCollectionHandler commands.RecordCollectionCommandHandler
	markPickedUpHandler     commands.MarkPickedUpCommandHandler
	startTransitHandler     commands.StartTransitCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	failDeliveryHandler     commands.FailDeliveryCommandHandler

	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
	suggestCouriersHandler     queries.SuggestCouriersQueryHandler
	getFleetSnapshotHandler    queries.GetFleetSnapshotQueryHandler
}

// NewServer creates the HTTP server with all required handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	registerCourierHandler commands.RegisterCourierCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	recordCollectionHandler commands.RecordCollectionCommandHandler,
	markPickedUpHandler commands.MarkPickedUpCommandHandler,
	startTransitHandler commands.StartTransitCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	failDeliveryHandler commands.FailDeliveryCommandHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
	suggestCouriersHandler queries.SuggestCouriersQueryHandler,
	getFleetSnapshotHandler queries.GetFleetSnapshotQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:      createDeliveryHandler,
		registerCourierHandler:     registerCourierHandler,
		assignDeliveryHandler:      assignDeliveryHandler,
		recordCollectionHandler:    recordCollectionHandler,
		markPickedUpHandler:        markPickedUpHandler,
		startTransitHandler:        startTransitHandler,
		completeDeliveryHandler:    completeDeliveryHandler,
		failDeliveryHandler:        failDeliveryHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
		suggestCouriersHandler:     suggestCouriersHandler,
		getFleetSnapshotHandler:    getFleetSnapshotHandler,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance. Every route
// requires operator authentication.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	api := e.Group("/api/v1", OperatorAuth(jwtSecret))

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.PUT("/deliveries/:id/assignment", s.AssignDelivery)
	api.POST("/deliveries/:id/collections", s.RecordCollection)
	api.POST("/deliveries/:id/pickup", s.MarkPickedUp)
	api.POST("/deliveries/:id/transit", s.StartTransit)
	api.POST("/deliveries/:id/completion", s.CompleteDelivery)
	api.POST("/deliveries/:id/failure", s.FailDelivery)

	api.POST("/couriers", s.RegisterCourier)
	api.GET("/couriers/suggestions", s.SuggestCouriers)

	api.GET("/stats", s.GetFleetSnapshot)
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), orderID, courierID, req.TotalProducts,
		delivery.OrderSnapshot{
			BuyerName:       req.BuyerName,
			BuyerPhone:      req.BuyerPhone,
			ShopName:        req.ShopName,
			OrderTotalCents: req.OrderTotalCents,
			ShippingAddress: req.ShippingAddress,
		},
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.DeliveryID().String()})
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var req RegisterCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterCourierCommand(kernel.NewUUID(), req.Name, req.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.registerCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.CourierID().String()})
}

// AssignDelivery handles PUT /api/v1/deliveries/:id/assignment.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req AssignmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	cmd, err := commands.NewAssignDeliveryCommand(deliveryID, courierID, Actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordCollection handles POST /api/v1/deliveries/:id/collections.
func (s *Server) RecordCollection(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req CollectionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordCollectionCommand(deliveryID, req.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.recordCollectionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkPickedUp handles POST /api/v1/deliveries/:id/pickup.
func (s *Server) MarkPickedUp(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req PickupRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewMarkPickedUpCommand(deliveryID, req.AllowPartial, Actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markPickedUpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartTransit handles POST /api/v1/deliveries/:id/transit.
func (s *Server) StartTransit(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	cmd, err := commands.NewStartTransitCommand(deliveryID, Actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.startTransitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/completion.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req CompletionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, req.ValidationCode, Actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FailDelivery handles POST /api/v1/deliveries/:id/failure.
func (s *Server) FailDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req FailureRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewFailDeliveryCommand(deliveryID, req.Reason, Actor(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.failDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	result, err := s.getActiveDeliveriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveDeliveriesQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DeliveryResponse, len(result))
	for i, d := range result {
		response[i] = DeliveryResponse{
			ID:                d.ID.String(),
			OrderID:           d.OrderID.String(),
			CourierID:         d.CourierID.String(),
			Status:            d.Status,
			TotalProducts:     d.TotalProducts,
			CollectedProducts: d.CollectedProducts,
			Progress:          d.Progress,
			AssignedAt:        d.AssignedAt,
			BuyerName:         d.BuyerName,
			ShopName:          d.ShopName,
			ShippingAddress:   d.ShippingAddress,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SuggestCouriers handles GET /api/v1/couriers/suggestions.
func (s *Server) SuggestCouriers(ctx echo.Context) error {
	result, err := s.suggestCouriersHandler.Handle(
		ctx.Request().Context(), queries.NewSuggestCouriersQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]SuggestionResponse, len(result))
	for i, c := range result {
		response[i] = SuggestionResponse{
			ID:               c.ID.String(),
			Name:             c.Name,
			Phone:            c.Phone,
			ActiveDeliveries: c.ActiveDeliveries,
			Availability:     c.Availability,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFleetSnapshot handles GET /api/v1/stats.
func (s *Server) GetFleetSnapshot(ctx echo.Context) error {
	result, err := s.getFleetSnapshotHandler.Handle(
		ctx.Request().Context(), queries.NewGetFleetSnapshotQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatsResponse{
		TotalDeliveries:   result.TotalDeliveries,
		ActiveDeliveries:  result.ActiveDeliveries,
		DeliveryPersonnel: result.DeliveryPersonnel,
		StatusBreakdown:   result.StatusBreakdown,
		SuccessRate:       result.SuccessRate,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, APIError{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func writeError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	return ctx.JSON(code, APIError{Code: code, Message: err.Error()})
}
