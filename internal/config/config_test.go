package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"printshop-backend/internal/config"
)

func TestLoad_MemoryBackendDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("PORT", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("API_BASE_PATH", "")
	t.Setenv("ADMIN_JWT_SECRET", "")
	t.Setenv("ADMIN_SESSION_TTL", "")
	t.Setenv("SUPABASE_STORAGE_BUCKET", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/api/v1", cfg.APIBasePath)
	assert.Equal(t, 12*time.Hour, cfg.AdminSessionTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.AdminGateEnabled())
}

func TestLoad_SupabaseRequiresCredentials(t *testing.T) {
	t.Setenv("STORE_BACKEND", "supabase")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPABASE_URL is required")
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "zero")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			StoreBackend:    config.BackendMemory,
			APIBasePath:     "/api/v1",
			AdminSessionTTL: time.Hour,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{"memory ok", func(c *config.Config) {}, ""},
		{"unknown backend", func(c *config.Config) { c.StoreBackend = "etcd" }, "unknown STORE_BACKEND"},
		{"postgres without url", func(c *config.Config) { c.StoreBackend = config.BackendPostgres }, "DATABASE_URL"},
		{"sqlite without path", func(c *config.Config) { c.StoreBackend = config.BackendSQLite }, "SQLITE_PATH"},
		{"secret without pin", func(c *config.Config) { c.AdminJWTSecret = "s" }, "ADMIN_PIN"},
		{"bucket without supabase", func(c *config.Config) { c.SupabaseStorageBucket = "orders" }, "SUPABASE_STORAGE_BUCKET"},
		{"relative base path", func(c *config.Config) { c.APIBasePath = "api" }, "API_BASE_PATH"},
		{"zero ttl", func(c *config.Config) { c.AdminSessionTTL = 0 }, "ADMIN_SESSION_TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
