package order

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/pkg/docstore"
	"shopapi/pkg/docstore/file"
	"shopapi/pkg/docstore/memory"
	"shopapi/pkg/logger"
)

type failingBackend struct {
	docstore.Backend
	err error
}

func (f failingBackend) Save(ctx context.Context, data []byte) error { return f.err }

type brokenBackend struct{ memory.Backend }

func (b *brokenBackend) Load(ctx context.Context) ([]byte, error) {
	return nil, errors.New("permission denied")
}

func sampleOrder(userID int64) Order {
	return Order{
		UserID:      userID,
		Items:       []Line{{ProductID: 1, Quantity: 2, UnitPrice: 10.5}},
		TotalAmount: 21,
		Status:      StatusPending,
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestTable_MissingDocumentStartsEmpty(t *testing.T) {
	ctx := context.Background()
	tbl := NewTable(ctx, "app_db", memory.New(), logger.NewNop())

	list, err := tbl.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestTable_MalformedDocumentStartsEmpty(t *testing.T) {
	ctx := context.Background()
	tbl := NewTable(ctx, "app_db", memory.NewWithDocument([]byte("{not json")), logger.NewNop())

	list, err := tbl.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	o, err := tbl.Create(ctx, sampleOrder(1))
	require.NoError(t, err)
	assert.EqualValues(t, 1, o.ID)
}

func TestTable_UnreadableBackendStartsEmpty(t *testing.T) {
	ctx := context.Background()
	tbl := NewTable(ctx, "app_db", &brokenBackend{}, logger.NewNop())
	list, err := tbl.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTable_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	tbl := NewTable(ctx, "app_db", backend, logger.NewNop())

	first, err := tbl.Create(ctx, sampleOrder(1))
	require.NoError(t, err)
	second, err := tbl.Create(ctx, sampleOrder(2))
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.ID)
	assert.EqualValues(t, 2, second.ID)

	data, err := backend.Load(ctx)
	require.NoError(t, err)
	var doc document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Orders, 2)
	assert.EqualValues(t, 2, doc.Orders[1].UserID)
}

func TestTable_ReloadContinuesSequence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app_db.json")

	tbl := NewTable(ctx, "app_db", file.New(path), logger.NewNop())
	_, err := tbl.Create(ctx, sampleOrder(1))
	require.NoError(t, err)
	_, err = tbl.Create(ctx, sampleOrder(2))
	require.NoError(t, err)

	reloaded := NewTable(ctx, "app_db", file.New(path), logger.NewNop())
	list, err := reloaded.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.EqualValues(t, 1, list[0].ID)
	assert.Equal(t, []Line{{ProductID: 1, Quantity: 2, UnitPrice: 10.5}}, list[0].Items)
	assert.True(t, list[0].CreatedAt.Equal(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))

	o, err := reloaded.Create(ctx, sampleOrder(3))
	require.NoError(t, err)
	assert.EqualValues(t, 3, o.ID)
}

func TestTable_SequenceFollowsHighestID(t *testing.T) {
	ctx := context.Background()
	doc := []byte(`{"orders":[{"id":7,"user_id":1,"items":[],"total_amount":0,"status":"pending","created_at":"2024-01-01T00:00:00Z"},{"id":3,"user_id":1,"items":[],"total_amount":0,"status":"pending","created_at":"2024-01-01T00:00:00Z"}]}`)
	tbl := NewTable(ctx, "app_db", memory.NewWithDocument(doc), logger.NewNop())

	o, err := tbl.Create(ctx, sampleOrder(1))
	require.NoError(t, err)
	assert.EqualValues(t, 8, o.ID)
}

func TestTable_SaveFailureLeavesTableUnchanged(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	tbl := NewTable(ctx, "app_db", failingBackend{Backend: memory.New(), err: boom}, logger.NewNop())

	_, err := tbl.Create(ctx, sampleOrder(1))
	assert.ErrorIs(t, err, boom)

	list, err := tbl.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	info, err := tbl.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, info.Tables[TableName].Count)
}

func TestTable_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	tbl := NewTable(ctx, "app_db", memory.New(), logger.NewNop())
	_, err := tbl.Create(ctx, sampleOrder(1))
	require.NoError(t, err)

	list, _ := tbl.List(ctx)
	list[0].UserID = 99

	again, _ := tbl.List(ctx)
	assert.EqualValues(t, 1, again[0].UserID)
}

func TestTable_Info(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "app_db.json")
	tbl := NewTable(ctx, "app_db", file.New(path), logger.NewNop())
	_, err := tbl.Create(ctx, sampleOrder(1))
	require.NoError(t, err)

	info, err := tbl.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, "app_db", info.Database)
	assert.Equal(t, path, info.DataFile)
	assert.Equal(t, "file", info.Backend)
	assert.Equal(t, 1, info.Tables[TableName].Count)
	assert.Equal(t, Schema, info.Tables[TableName].Fields)

	_, err = os.Stat(path)
	require.NoError(t, err)
}
