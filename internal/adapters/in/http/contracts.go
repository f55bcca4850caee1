package http

import "time"

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ClienteID string `json:"cliente_id"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// AddItemRequest is the body of POST /api/v1/orders/:orderID/items.
// Quantity is a decimal string so fractional quantities survive transport.
type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
}

// AddItemResponse returns the identifier of the created line item.
type AddItemResponse struct {
	ItemID string `json:"item_id"`
}

// UpdateItemRequest is the body of PUT /api/v1/orders/:orderID/items/:itemID.
type UpdateItemRequest struct {
	Quantity string `json:"quantity"`
}

// ChangeStatusRequest is the body of POST /api/v1/orders/:orderID/status.
// The actor's role class travels in the X-Actor-Role header, not the body.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// UpdateObservationsRequest is the body of PUT /api/v1/orders/:orderID/observations.
type UpdateObservationsRequest struct {
	Observations string `json:"observations"`
}

// RecomputeTotalResponse reports whether the stored total actually changed.
type RecomputeTotalResponse struct {
	Changed bool `json:"changed"`
}

// OrderResponse is the read model of GET /api/v1/orders/:orderID.
type OrderResponse struct {
	ID           string         `json:"id"`
	ClienteID    string         `json:"cliente_id"`
	Status       string         `json:"status"`
	Total        string         `json:"total"`
	Observations string         `json:"observations,omitempty"`
	Items        []ItemResponse `json:"items"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Version      int            `json:"version"`
}

// ItemResponse is one line item within OrderResponse.
type ItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// StatusDashboardRow is one row of GET /api/v1/dashboard/status.
type StatusDashboardRow struct {
	Status     string  `json:"status"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PeriodSummaryResponse is the body of GET /api/v1/reports/period-summary.
type PeriodSummaryResponse struct {
	Count      int64  `json:"count"`
	TotalValue string `json:"total_value"`
}
