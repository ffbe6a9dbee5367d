package api

import (
	"net/http"

	"shopapi/pkg/model"
	"shopapi/pkg/otel"
)

// CreateProduct handles POST /products.
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param product body model.CreateProductRequest true "Product"
// @Success 201 {object} model.Product
// @Failure 409 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /products [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "createProductHandler")
	defer span.End()

	var req model.CreateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(ctx, w, "create product", err)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.handleError(ctx, w, "create product", err)
		return
	}
	p, err := h.catalog.CreateProduct(ctx, req)
	if err != nil {
		h.handleError(ctx, w, "create product", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// ListProducts handles GET /products.
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listProductsHandler")
	defer span.End()

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		h.handleError(ctx, w, "list products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// ListAvailableProducts handles GET /products/available.
// @Summary List products that can be ordered
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Router /products/available [get]
func (h *Handler) ListAvailableProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "listAvailableProductsHandler")
	defer span.End()

	products, err := h.catalog.ListAvailableProducts(ctx)
	if err != nil {
		h.handleError(ctx, w, "list available products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{id}.
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} errorResponse
// @Router /products/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "getProductHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.handleError(ctx, w, "get product", err)
		return
	}
	p, err := h.catalog.GetProduct(ctx, id)
	if err != nil {
		h.handleError(ctx, w, "get product", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdateProduct handles PUT /products/{id}.
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body model.UpdateProductRequest true "Fields to change"
// @Success 200 {object} model.Product
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /products/{id} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "updateProductHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.handleError(ctx, w, "update product", err)
		return
	}
	var req model.UpdateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(ctx, w, "update product", err)
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		h.handleError(ctx, w, "update product", err)
		return
	}
	p, err := h.catalog.UpdateProduct(ctx, id, req)
	if err != nil {
		h.handleError(ctx, w, "update product", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeleteProduct handles DELETE /products/{id}.
// @Summary Delete product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /products/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "deleteProductHandler")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		h.handleError(ctx, w, "delete product", err)
		return
	}
	if err := h.catalog.DeleteProduct(ctx, id); err != nil {
		h.handleError(ctx, w, "delete product", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
