package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

type Config struct {
	// Server
	Port        string
	Environment string
	BaseURL     string
	APIBasePath string
	LogLevel    string

	// Storage backend selection
	StoreBackend string

	// Supabase
	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseKVTable        string
	SupabaseStorageBucket  string

	// Database
	DatabaseURL string
	SQLitePath  string

	// Redis
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	// Admin gate
	AdminPIN        string
	AdminJWTSecret  string
	AdminSessionTTL time.Duration

	// CORS
	CORSAllowOrigins []string
}

func Load() (*Config, error) {
	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: REDIS_DB must be an integer: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("ADMIN_SESSION_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: ADMIN_SESSION_TTL: %w", err)
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		APIBasePath: getEnv("API_BASE_PATH", "/api/v1"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", BackendSupabase)),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabaseServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseKVTable:        getEnv("SUPABASE_KV_TABLE", "kv_store"),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "printshop.db"),

		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        redisDB,
		RedisKeyPrefix: getEnv("REDIS_KEY_PREFIX", "printshop:"),

		AdminPIN:        getEnv("ADMIN_PIN", ""),
		AdminJWTSecret:  getEnv("ADMIN_JWT_SECRET", ""),
		AdminSessionTTL: ttl,

		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendSupabase:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required")
		}
		if c.SupabaseServiceRoleKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if c.SupabaseStorageBucket != "" && (c.SupabaseURL == "" || c.SupabaseServiceRoleKey == "") {
		return fmt.Errorf("SUPABASE_STORAGE_BUCKET requires SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY")
	}
	if c.AdminJWTSecret != "" && c.AdminPIN == "" {
		return fmt.Errorf("ADMIN_PIN is required when ADMIN_JWT_SECRET is set")
	}
	if c.AdminSessionTTL <= 0 {
		return fmt.Errorf("ADMIN_SESSION_TTL must be positive")
	}
	if !strings.HasPrefix(c.APIBasePath, "/") {
		return fmt.Errorf("API_BASE_PATH must start with /")
	}
	return nil
}

// AdminGateEnabled reports whether admin routes require a session token.
func (c *Config) AdminGateEnabled() bool {
	return c.AdminJWTSecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
