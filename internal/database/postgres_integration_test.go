//go:build integration
// +build integration

package database_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"printshop-backend/internal/database"
	"printshop-backend/internal/kv"
)

func startPostgresContainer(ctx context.Context, t *testing.T) string {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "printshop",
			"POSTGRES_PASSWORD": "printshop",
			"POSTGRES_DB":       "printshop",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		).WithDeadline(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "Failed to start Postgres container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://printshop:printshop@%s:%s/printshop?sslmode=disable", host, port.Port())
}

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()
	dsn := startPostgresContainer(ctx, t)

	store, err := database.NewPostgresStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	t.Run("round trip", func(t *testing.T) {
		_, err := store.Get(ctx, "gallery_g1")
		assert.ErrorIs(t, err, kv.ErrNotFound)

		require.NoError(t, store.Upsert(ctx, "gallery_g1", json.RawMessage(`{"id":"g1","name":"Spring","images":[]}`)))
		require.NoError(t, store.Upsert(ctx, "gallery_g1", json.RawMessage(`{"id":"g1","name":"Summer","images":[]}`)))

		v, err := store.Get(ctx, "gallery_g1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"g1","name":"Summer","images":[]}`, string(v))

		require.NoError(t, store.Delete(ctx, "gallery_g1"))
		require.NoError(t, store.Delete(ctx, "gallery_g1"))
		_, err = store.Get(ctx, "gallery_g1")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("scan matches underscore literally", func(t *testing.T) {
		for _, key := range []string{"gallery_a", "galleryXb", "order_1_a", "order_images_order_1_a", "orderXimages"} {
			require.NoError(t, store.Upsert(ctx, key, json.RawMessage(`{}`)))
		}

		entries, err := store.Scan(ctx, "gallery_")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "gallery_a", entries[0].Key)

		entries, err = store.Scan(ctx, "order_")
		require.NoError(t, err)
		keys := make([]string, 0, len(entries))
		for _, e := range entries {
			keys = append(keys, e.Key)
		}
		assert.ElementsMatch(t, []string{"order_1_a", "order_images_order_1_a"}, keys)
		assert.Len(t, kv.FilterKind(entries, kv.KindOrder), 1)
	})

	t.Run("migrations apply once", func(t *testing.T) {
		again, err := database.NewPostgresStore(ctx, dsn)
		require.NoError(t, err)
		again.Close()

		db, err := sql.Open("postgres", dsn)
		require.NoError(t, err)
		defer db.Close()

		var count int
		require.NoError(t, db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM schema_migrations WHERE name = '001_create_kv_store.sql'`).Scan(&count))
		assert.Equal(t, 1, count)
	})
}
