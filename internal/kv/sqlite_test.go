package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	store, err := NewSQLite(filepath.Join(t.TempDir(), "pocketbook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteGetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)

	_, ok, err := store.Get(ctx, "user_transactions")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "user_transactions", `[]`))
	value, ok, err := store.Get(ctx, "user_transactions")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, value)

	require.NoError(t, store.Set(ctx, "user_transactions", `[{"id":"t1"}]`))
	value, _, _ = store.Get(ctx, "user_transactions")
	assert.Equal(t, `[{"id":"t1"}]`, value)

	require.NoError(t, store.Delete(ctx, "user_transactions"))
	_, ok, _ = store.Get(ctx, "user_transactions")
	assert.False(t, ok)
}

func TestSQLiteDeleteNoKeys(t *testing.T) {
	store := newTestSQLite(t)
	require.NoError(t, store.Delete(context.Background()))
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "pocketbook.db")

	store, err := NewSQLite(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "user_budget", "200"))
	require.NoError(t, store.Close())

	reopened, err := NewSQLite(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "user_budget")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "200", value)
}
