package api

import (
	"net/http"

	"shopapi/pkg/model"
	"shopapi/pkg/otel"
)

// CreateUser handles POST /users.
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.CreateUserRequest true "User"
// @Success 201 {object} model.User
// @Failure 422 {object} errorResponse
// @Router /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createUserHandler")
	defer span.End()

	var req model.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(ctx, w, "create user", err)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.handleError(ctx, w, "create user", err)
		return
	}
	u, err := h.catalog.CreateUser(ctx, req)
	if err != nil {
		h.handleError(ctx, w, "create user", err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// ListUsers handles GET /users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listUsersHandler")
	defer span.End()

	users, err := h.catalog.ListUsers(ctx)
	if err != nil {
		h.handleError(ctx, w, "list users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GetUser handles GET /users/{id}.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errorResponse
// @Router /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getUserHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.handleError(ctx, w, "get user", err)
		return
	}
	u, err := h.catalog.GetUser(ctx, id)
	if err != nil {
		h.handleError(ctx, w, "get user", err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// UpdateUser handles PUT /users/{id}.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body model.UpdateUserRequest true "Fields to change"
// @Success 200 {object} model.User
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateUserHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.handleError(ctx, w, "update user", err)
		return
	}
	var req model.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(ctx, w, "update user", err)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.handleError(ctx, w, "update user", err)
		return
	}
	u, err := h.catalog.UpdateUser(ctx, id, req)
	if err != nil {
		h.handleError(ctx, w, "update user", err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// DeleteUser handles DELETE /users/{id}.
// @Summary Delete user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteUserHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.handleError(ctx, w, "delete user", err)
		return
	}
	if err := h.catalog.DeleteUser(ctx, id); err != nil {
		h.handleError(ctx, w, "delete user", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
