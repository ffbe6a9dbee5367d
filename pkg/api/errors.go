package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"shopapi/pkg/model"
)

// Error kinds reported in the "error" field.
const (
	kindValidation  = "validation_error"
	kindNotFound    = "not_found"
	kindConflict    = "conflict"
	kindUnavailable = "unavailable"
	kindMethod      = "method_not_allowed"
	kindInternal    = "internal"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error   string             `json:"error" example:"not_found"`
	Message string             `json:"message" example:"user 1 not found"`
	Entity  string             `json:"entity,omitempty" example:"user"`
	ID      *int64             `json:"id,omitempty" example:"1"`
	Details []model.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, resp errorResponse) {
	writeJSON(w, code, resp)
}

// handleError maps err onto a status code and error body. Anything that is
// not a domain error is logged and reported as an internal error.
func (h *Handler) handleError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	var (
		ve *model.ValidationError
		nf *model.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		writeErr(w, http.StatusUnprocessableEntity, errorResponse{Error: kindValidation, Message: "request validation failed", Details: ve.Fields})
	case errors.As(err, &nf):
		id := nf.ID
		writeErr(w, http.StatusNotFound, errorResponse{Error: kindNotFound, Message: nf.Error(), Entity: nf.Entity, ID: &id})
	case errors.Is(err, model.ErrConflict):
		writeErr(w, http.StatusConflict, errorResponse{Error: kindConflict, Message: err.Error()})
	case errors.Is(err, model.ErrUnavailable):
		writeErr(w, http.StatusConflict, errorResponse{Error: kindUnavailable, Message: err.Error()})
	default:
		h.log.Error(ctx, op, "error", err)
		writeErr(w, http.StatusInternalServerError, errorResponse{Error: kindInternal, Message: "internal server error"})
	}
}

// decodeJSON reads the request body into v. Malformed bodies are reported as
// validation errors.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return model.NewValidationError(typeErr.Field, "must be of type "+typeErr.Type.String())
	case errors.Is(err, io.EOF):
		return model.NewValidationError("body", "request body is required")
	default:
		return model.NewValidationError("body", "invalid JSON")
	}
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, model.NewValidationError("id", "must be an integer")
	}
	return id, nil
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeErr(w, http.StatusNotFound, errorResponse{Error: kindNotFound, Message: "route " + r.URL.Path + " not found"})
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeErr(w, http.StatusMethodNotAllowed, errorResponse{Error: kindMethod, Message: "method " + r.Method + " not allowed on " + r.URL.Path})
}
