package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/pkg/config"
	"shopapi/pkg/order"
)

func TestOpenBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name     string
		orders   config.Orders
		kind     string
		location string
	}{
		{"default file", config.Orders{Database: filepath.Join(dir, "app_db"), Backend: "file"}, "file", filepath.Join(dir, "app_db.json")},
		{"explicit file", config.Orders{Database: "app_db", File: filepath.Join(dir, "orders.json"), Backend: "file"}, "file", filepath.Join(dir, "orders.json")},
		{"memory", config.Orders{Database: "app_db", Backend: "memory"}, "memory", "memory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, closeFn, err := openBackend(ctx, &config.Config{Orders: tt.orders})
			require.NoError(t, err)
			defer closeFn()
			assert.Equal(t, tt.kind, b.Kind())
			assert.Equal(t, tt.location, b.Location())
		})
	}

	_, _, err := openBackend(ctx, &config.Config{Orders: config.Orders{Backend: "s3"}})
	assert.Error(t, err)
}

func TestOrdersInfoCommand(t *testing.T) {
	t.Setenv("ORDERS_BACKEND", "file")
	t.Setenv("ORDERS_FILE", filepath.Join(t.TempDir(), "app_db.json"))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"orders", "info"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	var info order.Info
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, "app_db", info.Database)
	assert.Equal(t, "file", info.Backend)
	assert.Equal(t, 0, info.Tables[order.TableName].Count)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Build version: N/A")
}
