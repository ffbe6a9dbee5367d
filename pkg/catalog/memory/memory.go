// Package memory implements an in-memory catalog store.
//
// Users and products are kept twice: in maps keyed by id, which are the source of truth,
// and in insertion-ordered slices that order creation scans. Both views change under the
// same write lock, so no reader can observe them disagreeing.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"shopapi/pkg/catalog"
	"shopapi/pkg/model"
)

var _ catalog.Store = (*Store)(nil)

// Store provides an in-memory implementation of catalog.Store.
type Store struct {
	mu sync.RWMutex

	users    map[int64]model.User
	products map[int64]model.Product

	userList    []model.User
	productList []model.Product

	userSeq    int64
	productSeq int64

	now func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:    make(map[int64]model.User),
		products: make(map[int64]model.Product),
		now:      time.Now,
	}
}

// CreateUser stores a new user under the next user id.
func (s *Store) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	u := model.User{
		ID:        s.userSeq,
		Name:      req.Name,
		Email:     req.Email,
		IsActive:  true,
		CreatedAt: s.now().UTC(),
	}
	if req.Age != nil {
		age := *req.Age
		u.Age = &age
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	s.users[u.ID] = u
	s.userList = append(s.userList, u)
	return u, nil
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(ctx context.Context, id int64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.NewNotFound(model.EntityUser, id)
	}
	return u, nil
}

// ListUsers returns all users in id order.
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.users, func(u model.User) int64 { return u.ID }), nil
}

// UpdateUser applies the supplied fields to an existing user.
func (s *Store) UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.NewNotFound(model.EntityUser, id)
	}
	req.Apply(&u)
	now := s.now().UTC()
	u.UpdatedAt = &now

	s.users[id] = u
	replace(s.userList, u, func(v model.User) bool { return v.ID == id })
	return u, nil
}

// DeleteUser removes a user by id.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return model.NewNotFound(model.EntityUser, id)
	}
	delete(s.users, id)
	s.userList = slices.DeleteFunc(s.userList, func(v model.User) bool { return v.ID == id })
	return nil
}

// CreateProduct stores a new product. Names must be unique among existing products.
func (s *Store) CreateProduct(ctx context.Context, req model.CreateProductRequest) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.Name == req.Name {
			return model.Product{}, fmt.Errorf("product name %q already exists: %w", req.Name, model.ErrConflict)
		}
	}

	s.productSeq++
	p := model.Product{
		ID:          s.productSeq,
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		IsAvailable: req.Availability(),
		CreatedAt:   s.now().UTC(),
	}
	if req.Description != nil {
		d := *req.Description
		p.Description = &d
	}

	s.products[p.ID] = p
	s.productList = append(s.productList, p)
	return p, nil
}

// GetProduct retrieves a product by id.
func (s *Store) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, model.NewNotFound(model.EntityProduct, id)
	}
	return p, nil
}

// ListProducts returns all products in id order.
func (s *Store) ListProducts(ctx context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.products, func(p model.Product) int64 { return p.ID }), nil
}

// ListAvailableProducts returns products flagged as available, in id order.
func (s *Store) ListAvailableProducts(ctx context.Context) ([]model.Product, error) {
	all, _ := s.ListProducts(ctx)
	return slices.DeleteFunc(all, func(p model.Product) bool { return !p.IsAvailable }), nil
}

// UpdateProduct applies the supplied fields to an existing product.
func (s *Store) UpdateProduct(ctx context.Context, id int64, req model.UpdateProductRequest) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, model.NewNotFound(model.EntityProduct, id)
	}
	req.Apply(&p)
	now := s.now().UTC()
	p.UpdatedAt = &now

	s.products[id] = p
	replace(s.productList, p, func(v model.Product) bool { return v.ID == id })
	return p, nil
}

// DeleteProduct removes a product by id. Orders that reference it are left as they are.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return model.NewNotFound(model.EntityProduct, id)
	}
	delete(s.products, id)
	s.productList = slices.DeleteFunc(s.productList, func(v model.Product) bool { return v.ID == id })
	return nil
}

// Stats reports the number of stored users and products.
func (s *Store) Stats(ctx context.Context) (catalog.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Stats{Users: len(s.users), Products: len(s.products)}, nil
}

// FindUser scans the user list for id.
func (s *Store) FindUser(ctx context.Context, id int64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.userList {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, model.NewNotFound(model.EntityUser, id)
}

// FindProduct scans the product list for id.
func (s *Store) FindProduct(ctx context.Context, id int64) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.productList {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, model.NewNotFound(model.EntityProduct, id)
}

func sortedValues[T any](m map[int64]T, id func(T) int64) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return out
}

func replace[T any](list []T, v T, match func(T) bool) {
	if i := slices.IndexFunc(list, match); i >= 0 {
		list[i] = v
	}
}
