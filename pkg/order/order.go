// Package order implements order creation and the persisted order table.
package order

import (
	"context"
	"fmt"
	"time"

	"shopapi/pkg/model"
)

// StatusPending is the only status an order is ever given.
const StatusPending = "pending"

// TableName is the name of the order table in Info.
const TableName = "orders"

// Order represents a committed customer order.
type Order struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Items       []Line    `json:"items"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Line is one product of an order, priced when the order was committed.
type Line struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// LineRequest asks for a quantity of a product.
type LineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CreateRequest is the payload for creating an order.
type CreateRequest struct {
	UserID int64         `json:"user_id"`
	Items  []LineRequest `json:"items"`
}

// Validate reports every malformed field of the request.
func (r CreateRequest) Validate() error {
	var fields []model.FieldError
	if r.UserID <= 0 {
		fields = append(fields, model.FieldError{Field: "user_id", Message: "must be a positive integer"})
	}
	if len(r.Items) == 0 {
		fields = append(fields, model.FieldError{Field: "items", Message: "must contain at least one item"})
	}
	for i, it := range r.Items {
		if it.ProductID <= 0 {
			fields = append(fields, model.FieldError{Field: fmt.Sprintf("items[%d].product_id", i), Message: "must be a positive integer"})
		}
		if it.Quantity <= 0 {
			fields = append(fields, model.FieldError{Field: fmt.Sprintf("items[%d].quantity", i), Message: "must be greater than 0"})
		}
	}
	if len(fields) > 0 {
		return &model.ValidationError{Fields: fields}
	}
	return nil
}

// Field describes a column of the order table.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TableInfo describes one table.
type TableInfo struct {
	Count  int     `json:"count"`
	Fields []Field `json:"fields"`
}

// Info describes the persisted order database.
type Info struct {
	Database string               `json:"database_name"`
	DataFile string               `json:"data_file"`
	Backend  string               `json:"backend"`
	Tables   map[string]TableInfo `json:"tables"`
}

// Schema lists the fields of a persisted order.
var Schema = []Field{
	{Name: "id", Type: "integer"},
	{Name: "user_id", Type: "integer"},
	{Name: "items", Type: "array"},
	{Name: "total_amount", Type: "number"},
	{Name: "status", Type: "string"},
	{Name: "created_at", Type: "string"},
}

// Repository defines behavior for persisting orders.
type Repository interface {
	Create(ctx context.Context, o Order) (Order, error)
	List(ctx context.Context) ([]Order, error)
	Info(ctx context.Context) (Info, error)
}

// Catalog resolves the users and products an order refers to.
type Catalog interface {
	FindUser(ctx context.Context, id int64) (model.User, error)
	FindProduct(ctx context.Context, id int64) (model.Product, error)
}
