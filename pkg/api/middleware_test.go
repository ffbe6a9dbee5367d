package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/pkg/logger"
	"shopapi/pkg/model"
)

func TestRecoveryMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.LevelDebug, "shopapi", nil)

	h := requestIDMiddleware(loggingMiddleware(log)(recoveryMiddleware(log)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }),
	)))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var e errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, kindInternal, e.Error)

	out := buf.String()
	assert.Contains(t, out, "panic recovered")
	assert.Contains(t, out, "http request started")
	assert.Contains(t, out, "http request failed")
	assert.Contains(t, out, `"status":500`)
}

func TestRequestIDMiddleware_Generates(t *testing.T) {
	var seen string
	h := requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestHandleError_StatusMapping(t *testing.T) {
	h := &Handler{log: logger.NewNop()}

	tests := []struct {
		name   string
		err    error
		status int
		kind   string
	}{
		{"validation", model.NewValidationError("name", "is required"), http.StatusUnprocessableEntity, kindValidation},
		{"not found", model.NewNotFound(model.EntityOrder, 3), http.StatusNotFound, kindNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", model.NewNotFound(model.EntityUser, 1)), http.StatusNotFound, kindNotFound},
		{"conflict", fmt.Errorf("product name %q already exists: %w", "Book", model.ErrConflict), http.StatusConflict, kindConflict},
		{"unavailable", fmt.Errorf("product 2: %w", model.ErrUnavailable), http.StatusConflict, kindUnavailable},
		{"internal", errors.New("disk full"), http.StatusInternalServerError, kindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.handleError(context.Background(), rec, "test", tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			var e errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
			assert.Equal(t, tt.kind, e.Error)
		})
	}
}

func TestHandleError_HidesInternalDetails(t *testing.T) {
	h := &Handler{log: logger.NewNop()}
	rec := httptest.NewRecorder()
	h.handleError(context.Background(), rec, "create order", errors.New("open /var/lib/app_db.json: permission denied"))

	assert.NotContains(t, rec.Body.String(), "permission denied")
	assert.Contains(t, rec.Body.String(), "internal server error")
}
