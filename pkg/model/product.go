package model

import (
	"strings"
	"time"
)

const (
	productNameMax        = 100
	productDescriptionMax = 500
)

// Product is an item that can be ordered.
type Product struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	IsAvailable bool       `json:"is_available"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// CreateProductRequest is the payload for POST /products.
type CreateProductRequest struct {
	Name        string  `json:"name" example:"Go Programming Book"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price" example:"59.99"`
	Stock       int     `json:"stock" example:"10"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

// Normalize trims surrounding whitespace from the name.
func (r *CreateProductRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// Validate checks every field and reports all failures at once.
func (r CreateProductRequest) Validate() error {
	var c checker
	if c.required("name", r.Name) {
		c.length("name", r.Name, 0, productNameMax)
	}
	if r.Description != nil {
		c.length("description", *r.Description, 0, productDescriptionMax)
	}
	if r.Price < 0 {
		c.add("price", "must be greater than or equal to 0")
	}
	if r.Stock < 0 {
		c.add("stock", "must be greater than or equal to 0")
	}
	return c.err()
}

// Availability resolves the initial availability flag. An explicit flag wins over the
// stock-derived default, but an empty stock always reads as unavailable.
func (r CreateProductRequest) Availability() bool {
	if r.Stock == 0 {
		return false
	}
	if r.IsAvailable != nil {
		return *r.IsAvailable
	}
	return true
}

// UpdateProductRequest is the payload for PUT /products/{id}. Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// Normalize trims surrounding whitespace from a supplied name.
func (r *UpdateProductRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
}

// Validate checks the supplied fields only.
func (r UpdateProductRequest) Validate() error {
	var c checker
	if r.Name != nil && c.required("name", *r.Name) {
		c.length("name", *r.Name, 0, productNameMax)
	}
	if r.Description != nil {
		c.length("description", *r.Description, 0, productDescriptionMax)
	}
	if r.Price != nil && *r.Price < 0 {
		c.add("price", "must be greater than or equal to 0")
	}
	if r.Stock != nil && *r.Stock < 0 {
		c.add("stock", "must be greater than or equal to 0")
	}
	return c.err()
}

// Apply copies the supplied fields onto p. Setting stock to zero clears availability;
// raising stock never sets it.
func (r UpdateProductRequest) Apply(p *Product) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		d := *r.Description
		p.Description = &d
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.IsAvailable != nil {
		p.IsAvailable = *r.IsAvailable
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
		if p.Stock == 0 {
			p.IsAvailable = false
		}
	}
}
