// Package api exposes the shop over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"shopapi/pkg/catalog"
	"shopapi/pkg/logger"
	"shopapi/pkg/order"
)

// OrderService creates and lists orders.
type OrderService interface {
	Create(ctx context.Context, req order.CreateRequest) (order.Order, error)
	List(ctx context.Context) ([]order.Order, error)
	Info(ctx context.Context) (order.Info, error)
}

// Handler is the HTTP layer over the catalog and the order service.
type Handler struct {
	catalog catalog.Store
	orders  OrderService
	log     *logger.Logger
	version string
	now     func() time.Time
}

// NewHandler returns a Handler instance.
func NewHandler(c catalog.Store, orders OrderService, log *logger.Logger, version string) *Handler {
	return &Handler{catalog: c, orders: orders, log: log, version: version, now: time.Now}
}

// RegisterRoutes registers all routes on the provided router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// Users
	r.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", h.UpdateUser).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}", h.DeleteUser).Methods(http.MethodDelete)

	// Products; /products/available must precede /products/{id}.
	r.HandleFunc("/products", h.CreateProduct).Methods(http.MethodPost)
	r.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/products/available", h.ListAvailableProducts).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", h.GetProduct).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", h.UpdateProduct).Methods(http.MethodPut)
	r.HandleFunc("/products/{id}", h.DeleteProduct).Methods(http.MethodDelete)

	// Orders
	r.HandleFunc("/orders", h.CreateOrder).Methods(http.MethodPost)
	r.HandleFunc("/orders", h.ListOrders).Methods(http.MethodGet)

	r.HandleFunc("/database/info", h.DatabaseInfo).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)
}

type rootResponse struct {
	Message string `json:"message" example:"Welcome to the shop API"`
	Version string `json:"version" example:"1.0.0"`
	Docs    string `json:"docs" example:"/swagger/index.html"`
}

type healthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp"`
}

// Root describes the API.
// @Summary API root
// @Produce json
// @Success 200 {object} rootResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Message: "Welcome to the shop API",
		Version: h.version,
		Docs:    "/swagger/index.html",
	})
}

// Health reports liveness.
// @Summary Health check
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "healthy", Timestamp: h.now().UTC()})
}
