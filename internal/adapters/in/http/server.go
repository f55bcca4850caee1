// Package http exposes the order lifecycle over a REST API built on echo.
// Handlers translate transport concerns into commands and queries; every
// business rule stays in the core.
package http

import (
	"errors"
	"net/http"
	"time"

	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RoleHeader carries the caller's role class ("CUSTOMER" or "INTERNAL").
// Upstream auth middleware is expected to set it; the core only sees the
// resulting class.
const RoleHeader = "X-Actor-Role"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler         commands.CreateOrderCommandHandler
	addItemHandler             commands.AddItemCommandHandler
	updateItemHandler          commands.UpdateItemCommandHandler
	removeItemHandler          commands.RemoveItemCommandHandler
	changeOrderStatusHandler   commands.ChangeOrderStatusCommandHandler
	updateObservationsHandler  commands.UpdateObservationsCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler
	recomputeOrderTotalHandler commands.RecomputeOrderTotalCommandHandler

	getOrderHandler        queries.GetOrderQueryHandler
	statusDashboardHandler queries.StatusDashboardQueryHandler
	periodSummaryHandler   queries.PeriodSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	updateItemHandler commands.UpdateItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	updateObservationsHandler commands.UpdateObservationsCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	recomputeOrderTotalHandler commands.RecomputeOrderTotalCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	statusDashboardHandler queries.StatusDashboardQueryHandler,
	periodSummaryHandler queries.PeriodSummaryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		addItemHandler:             addItemHandler,
		updateItemHandler:          updateItemHandler,
		removeItemHandler:          removeItemHandler,
		changeOrderStatusHandler:   changeOrderStatusHandler,
		updateObservationsHandler:  updateObservationsHandler,
		deleteOrderHandler:         deleteOrderHandler,
		recomputeOrderTotalHandler: recomputeOrderTotalHandler,
		getOrderHandler:            getOrderHandler,
		statusDashboardHandler:     statusDashboardHandler,
		periodSummaryHandler:       periodSummaryHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:orderID", s.GetOrder)
	v1.DELETE("/orders/:orderID", s.DeleteOrder)

	v1.POST("/orders/:orderID/items", s.AddItem)
	v1.PUT("/orders/:orderID/items/:itemID", s.UpdateItem)
	v1.DELETE("/orders/:orderID/items/:itemID", s.RemoveItem)

	v1.POST("/orders/:orderID/status", s.ChangeOrderStatus)
	v1.PUT("/orders/:orderID/observations", s.UpdateObservations)
	v1.POST("/orders/:orderID/recompute-total", s.RecomputeOrderTotal)

	v1.GET("/dashboard/status", s.StatusDashboard)
	v1.GET("/reports/period-summary", s.PeriodSummary)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clienteID, err := kernel.UUIDFromString(req.ClienteID)
	if err != nil {
		return badRequest(ctx, "Invalid cliente_id: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clienteID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	items := make([]ItemResponse, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = ItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity.String(),
			UnitPrice: item.UnitPrice.String(),
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:           resp.ID.String(),
		ClienteID:    resp.ClienteID.String(),
		Status:       resp.Status,
		Total:        resp.Total.String(),
		Observations: resp.Observations,
		Items:        items,
		CreatedAt:    resp.CreatedAt,
		UpdatedAt:    resp.UpdatedAt,
		Version:      resp.Version,
	})
}

// DeleteOrder handles DELETE /api/v1/orders/:orderID.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddItem handles POST /api/v1/orders/:orderID/items.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req AddItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product_id: "+err.Error())
	}

	quantity, err := kernel.QuantityFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddItemCommand(orderID, itemID, productID, quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddItemResponse{ItemID: itemID.String()})
}

// UpdateItem handles PUT /api/v1/orders/:orderID/items/:itemID.
func (s *Server) UpdateItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return badRequest(ctx, "Invalid item ID: "+err.Error())
	}

	var req UpdateItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	quantity, err := kernel.QuantityFromString(req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity: "+err.Error())
	}

	cmd, err := commands.NewUpdateItemCommand(orderID, itemID, quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/orders/:orderID/items/:itemID.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemID"))
	if err != nil {
		return badRequest(ctx, "Invalid item ID: "+err.Error())
	}

	cmd, err := commands.NewRemoveItemCommand(orderID, itemID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderID/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	role, err := order.RoleClassFromString(ctx.Request().Header.Get(RoleHeader))
	if err != nil {
		return badRequest(ctx, "Invalid or missing "+RoleHeader+" header")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateObservations handles PUT /api/v1/orders/:orderID/observations.
func (s *Server) UpdateObservations(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req UpdateObservationsRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateObservationsCommand(orderID, req.Observations)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.updateObservationsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecomputeOrderTotal handles POST /api/v1/orders/:orderID/recompute-total.
func (s *Server) RecomputeOrderTotal(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewRecomputeOrderTotalCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	changed, err := s.recomputeOrderTotalHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RecomputeTotalResponse{Changed: changed})
}

// StatusDashboard handles GET /api/v1/dashboard/status.
func (s *Server) StatusDashboard(ctx echo.Context) error {
	query := queries.NewStatusDashboardQuery()

	rows, err := s.statusDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]StatusDashboardRow, len(rows))
	for i, row := range rows {
		response[i] = StatusDashboardRow{
			Status:     row.Status,
			Count:      row.Count,
			Percentage: row.Percentage,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PeriodSummary handles GET /api/v1/reports/period-summary?from=...&to=...
// with RFC 3339 bounds forming the half-open interval [from, to).
func (s *Server) PeriodSummary(ctx echo.Context) error {
	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, "Invalid from: expected RFC 3339 timestamp")
	}

	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, "Invalid to: expected RFC 3339 timestamp")
	}

	query, err := queries.NewPeriodSummaryQuery(from, to)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	summary, err := s.periodSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PeriodSummaryResponse{
		Count:      summary.Count,
		TotalValue: summary.TotalValue.String(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates core errors into HTTP status codes. The mapping is by
// sentinel, never by message text.
func mapError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, order.ErrItemNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrTransitionForbidden):
		code = http.StatusForbidden
	case errors.Is(err, ports.ErrConcurrentModification),
		errors.Is(err, order.ErrDuplicateItem):
		code = http.StatusConflict
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderNotEditable),
		errors.Is(err, order.ErrProductUnavailable):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
