package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/pkg/model"
)

func ptr[T any](v T) *T { return &v }

// assertReplicaInSync checks that the list views hold exactly the map contents.
func assertReplicaInSync(t *testing.T, s *Store) {
	t.Helper()
	s.mu.RLock()
	defer s.mu.RUnlock()

	require.Len(t, s.userList, len(s.users))
	for _, u := range s.userList {
		assert.Equal(t, s.users[u.ID], u)
	}
	require.Len(t, s.productList, len(s.products))
	for _, p := range s.productList {
		assert.Equal(t, s.products[p.ID], p)
	}
}

func TestStore_UserLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New()

	u, err := s.CreateUser(ctx, model.CreateUserRequest{Name: "alice", Email: "alice@example.com", Age: ptr(30)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.True(t, u.IsActive)
	assertReplicaInSync(t, s)

	got, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)

	updated, err := s.UpdateUser(ctx, u.ID, model.UpdateUserRequest{Email: ptr("a@example.org")})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Name)
	assert.Equal(t, "a@example.org", updated.Email)
	assert.NotNil(t, updated.UpdatedAt)
	assertReplicaInSync(t, s)

	mirrored, err := s.FindUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.org", mirrored.Email)

	require.NoError(t, s.DeleteUser(ctx, u.ID))
	assertReplicaInSync(t, s)

	_, err = s.GetUser(ctx, u.ID)
	assert.True(t, errors.Is(err, model.ErrNotFound))
	_, err = s.FindUser(ctx, u.ID)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestStore_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	s := New()

	a, _ := s.CreateUser(ctx, model.CreateUserRequest{Name: "alice", Email: "a@example.com"})
	b, _ := s.CreateUser(ctx, model.CreateUserRequest{Name: "bobby", Email: "b@example.com"})
	require.NoError(t, s.DeleteUser(ctx, b.ID))
	c, _ := s.CreateUser(ctx, model.CreateUserRequest{Name: "carol", Email: "c@example.com"})

	assert.Less(t, a.ID, b.ID)
	assert.Less(t, b.ID, c.ID)

	p1, _ := s.CreateProduct(ctx, model.CreateProductRequest{Name: "Pen", Price: 1, Stock: 1})
	require.NoError(t, s.DeleteProduct(ctx, p1.ID))
	p2, _ := s.CreateProduct(ctx, model.CreateProductRequest{Name: "Pen", Price: 1, Stock: 1})
	assert.Equal(t, int64(1), p1.ID)
	assert.Equal(t, int64(2), p2.ID)
}

func TestStore_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := New()

	err := s.DeleteUser(ctx, 7)
	var nf *model.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, model.EntityUser, nf.Entity)
	assert.Equal(t, int64(7), nf.ID)

	err = s.DeleteProduct(ctx, 9)
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, model.EntityProduct, nf.Entity)

	_, err = s.UpdateProduct(ctx, 9, model.UpdateProductRequest{})
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestStore_ProductNameConflict(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.CreateProduct(ctx, model.CreateProductRequest{Name: "Book", Price: 10, Stock: 1})
	require.NoError(t, err)

	_, err = s.CreateProduct(ctx, model.CreateProductRequest{Name: "Book", Price: 12, Stock: 1})
	assert.True(t, errors.Is(err, model.ErrConflict))

	_, err = s.CreateProduct(ctx, model.CreateProductRequest{Name: "Notebook", Price: 12, Stock: 1})
	assert.NoError(t, err)

	stats, _ := s.Stats(ctx)
	assert.Equal(t, 2, stats.Products)
	assertReplicaInSync(t, s)
}

func TestStore_RenameIntoExistingNameAllowedOnUpdate(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, _ = s.CreateProduct(ctx, model.CreateProductRequest{Name: "Book", Price: 10, Stock: 1})
	p, _ := s.CreateProduct(ctx, model.CreateProductRequest{Name: "Pen", Price: 1, Stock: 1})

	updated, err := s.UpdateProduct(ctx, p.ID, model.UpdateProductRequest{Name: ptr("Book")})
	require.NoError(t, err)
	assert.Equal(t, "Book", updated.Name)
}

func TestStore_ProductAvailability(t *testing.T) {
	ctx := context.Background()
	s := New()

	p, err := s.CreateProduct(ctx, model.CreateProductRequest{Name: "Lamp", Price: 25.5, Stock: 3})
	require.NoError(t, err)
	assert.True(t, p.IsAvailable)

	p, err = s.UpdateProduct(ctx, p.ID, model.UpdateProductRequest{Stock: ptr(0)})
	require.NoError(t, err)
	assert.False(t, p.IsAvailable)

	p, err = s.UpdateProduct(ctx, p.ID, model.UpdateProductRequest{Stock: ptr(5)})
	require.NoError(t, err)
	assert.False(t, p.IsAvailable)

	mirrored, err := s.FindProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, mirrored.Stock)
	assert.False(t, mirrored.IsAvailable)

	available, err := s.ListAvailableProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, available)

	_, err = s.UpdateProduct(ctx, p.ID, model.UpdateProductRequest{IsAvailable: ptr(true)})
	require.NoError(t, err)
	available, _ = s.ListAvailableProducts(ctx)
	assert.Len(t, available, 1)
	assertReplicaInSync(t, s)
}

func TestStore_ListOrderedByID(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, name := range []string{"a-product", "b-product", "c-product"} {
		_, err := s.CreateProduct(ctx, model.CreateProductRequest{Name: name, Price: 1, Stock: 1})
		require.NoError(t, err)
	}
	list, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, p := range list {
		assert.Equal(t, int64(i+1), p.ID)
	}
}
