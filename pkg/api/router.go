package api

import (
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	"shopapi/pkg/logger"
)

// NewRouter builds the full route table with middleware and API docs.
func NewRouter(h *Handler, log *logger.Logger, tracer trace.Tracer) *mux.Router {
	r := mux.NewRouter()
	r.Use(
		requestIDMiddleware,
		traceMiddleware(tracer),
		loggingMiddleware(log),
		recoveryMiddleware(log),
	)
	h.RegisterRoutes(r)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}
