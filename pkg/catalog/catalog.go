// Package catalog defines storage for users and products.
package catalog

import (
	"context"

	"shopapi/pkg/model"
)

// Store defines behavior for keeping users and products.
type Store interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, req model.CreateProductRequest) (model.Product, error)
	GetProduct(ctx context.Context, id int64) (model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListAvailableProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int64, req model.UpdateProductRequest) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	// Stats reports the number of stored users and products.
	Stats(ctx context.Context) (Stats, error)
}

// Stats summarises the catalog contents.
type Stats struct {
	Users    int `json:"users"`
	Products int `json:"products"`
}
