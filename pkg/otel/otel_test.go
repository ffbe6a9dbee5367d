package otel

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"shopapi/pkg/logger"
)

func TestTracing_SpansCarryTraceID(t *testing.T) {
	tp, shutdown, err := InitTracing(logger.NewNop(), Config{ServiceName: "shopapi-test", Probability: 1.0})
	require.NoError(t, err)
	defer shutdown(context.Background())

	assert.Empty(t, GetTraceID(context.Background()))

	r := httptest.NewRequest("GET", "/users", nil)
	ctx, span := InjectTracing(r, tp.Tracer("test"))
	defer span.End()

	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, 32)

	child, childSpan := AddSpan(ctx, "listUsers", attribute.Int("count", 2))
	defer childSpan.End()
	assert.Equal(t, traceID, GetTraceID(child))
}

func TestInjectTracing_ContinuesIncomingTrace(t *testing.T) {
	tp, shutdown, err := InitTracing(logger.NewNop(), Config{ServiceName: "shopapi-test", Probability: 1.0})
	require.NoError(t, err)
	defer shutdown(context.Background())

	r := httptest.NewRequest("GET", "/orders", nil)
	r.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")

	ctx, span := InjectTracing(r, tp.Tracer("test"))
	defer span.End()
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", GetTraceID(ctx))
}
