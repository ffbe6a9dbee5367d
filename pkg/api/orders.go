package api

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"shopapi/pkg/catalog"
	"shopapi/pkg/order"
	"shopapi/pkg/otel"
)

// CreateOrder handles POST /orders.
// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body order.CreateRequest true "Order"
// @Success 201 {object} order.Order
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /orders [post]
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createOrderHandler")
	defer span.End()

	var req order.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(ctx, w, "create order", err)
		return
	}
	o, err := h.orders.Create(ctx, req)
	if err != nil {
		h.handleError(ctx, w, "create order", err)
		return
	}
	span.SetAttributes(attribute.Int64("order.id", o.ID))
	writeJSON(w, http.StatusCreated, o)
}

// ListOrders handles GET /orders.
// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {array} order.Order
// @Router /orders [get]
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listOrdersHandler")
	defer span.End()

	orders, err := h.orders.List(ctx)
	if err != nil {
		h.handleError(ctx, w, "list orders", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type databaseInfoResponse struct {
	order.Info
	Memory catalog.Stats `json:"memory_store"`
}

// DatabaseInfo handles GET /database/info.
// @Summary Describe persisted storage
// @Tags database
// @Produce json
// @Success 200 {object} databaseInfoResponse
// @Router /database/info [get]
func (h *Handler) DatabaseInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "databaseInfoHandler")
	defer span.End()

	info, err := h.orders.Info(ctx)
	if err != nil {
		h.handleError(ctx, w, "database info", err)
		return
	}
	stats, err := h.catalog.Stats(ctx)
	if err != nil {
		h.handleError(ctx, w, "database info", err)
		return
	}
	writeJSON(w, http.StatusOK, databaseInfoResponse{Info: info, Memory: stats})
}
