package redisstore_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/kv"
	"printshop-backend/internal/redisstore"
)

func newStore(t *testing.T) (*redisstore.KVStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	store, err := redisstore.Connect(context.Background(), mr.Addr(), "", 0, "printshop:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	_, err := store.Get(ctx, "gallery_g1")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, store.Upsert(ctx, "gallery_g1", json.RawMessage(`{"id":"g1"}`)))
	assert.True(t, mr.Exists("printshop:gallery_g1"))

	v, err := store.Get(ctx, "gallery_g1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"g1"}`, string(v))

	require.NoError(t, store.Delete(ctx, "gallery_g1"))
	require.NoError(t, store.Delete(ctx, "gallery_g1"))
	assert.False(t, mr.Exists("printshop:gallery_g1"))
}

func TestRedisStore_ScanStripsNamespace(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t)

	require.NoError(t, store.Upsert(ctx, "order_1_a", json.RawMessage(`{"orderId":"order_1_a"}`)))
	require.NoError(t, store.Upsert(ctx, "order_images_order_1_a", json.RawMessage(`{}`)))
	require.NoError(t, store.Upsert(ctx, "gallery_g1", json.RawMessage(`{}`)))
	require.NoError(t, mr.Set("other:order_9_z", `{}`))

	entries, err := store.Scan(ctx, "order_")
	require.NoError(t, err)

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	assert.ElementsMatch(t, []string{"order_1_a", "order_images_order_1_a"}, keys)
}

func TestRedisStore_ScanEscapesGlob(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	require.NoError(t, store.Upsert(ctx, "gallery_*", json.RawMessage(`{}`)))
	require.NoError(t, store.Upsert(ctx, "gallery_x", json.RawMessage(`{}`)))

	entries, err := store.Scan(ctx, "gallery_*")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "gallery_*", entries[0].Key)
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := redisstore.Connect(context.Background(), "127.0.0.1:1", "", 0, "p:")
	assert.Error(t, err)
}
