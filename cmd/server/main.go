// @title           Print Shop Backend API
// @version         1.0.0
// @description     Gallery and quote-order API for the print shop storefront and its admin panel. Galleries and orders are persisted in a key-value store.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin session token.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"printshop-backend/docs"
	"printshop-backend/internal/config"
	"printshop-backend/internal/database"
	"printshop-backend/internal/handlers"
	"printshop-backend/internal/kv"
	"printshop-backend/internal/metrics"
	"printshop-backend/internal/redisstore"
	"printshop-backend/internal/server"
	"printshop-backend/internal/supabase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, continuing with environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})))

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	docs.SwaggerInfo.BasePath = cfg.APIBasePath
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize store", "backend", cfg.StoreBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(registry)

	var archiver handlers.SelectionArchiver
	if cfg.SupabaseStorageBucket != "" {
		archiver = supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.SupabaseStorageBucket)
		slog.Info("archiving image selections", "bucket", cfg.SupabaseStorageBucket)
	}

	if !cfg.AdminGateEnabled() {
		slog.Warn("ADMIN_JWT_SECRET not set: admin routes are not protected")
	}

	router := server.NewRouter(server.Dependencies{
		Config:   cfg,
		Store:    metrics.InstrumentStore(store, cfg.StoreBackend, m),
		Archiver: archiver,
		Metrics:  m,
		Gatherer: registry,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "backend", cfg.StoreBackend, "base_path", cfg.APIBasePath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

// openStore connects the configured backend. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (kv.Store, func(), error) {
	noop := func() {}

	switch cfg.StoreBackend {
	case config.BackendSupabase:
		client, err := supabase.NewClient(cfg)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to initialize Supabase client: %w", err)
		}
		return client.KVStore(), noop, nil

	case config.BackendPostgres:
		store, err := database.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { store.Close() }, nil

	case config.BackendSQLite:
		store, err := database.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { store.Close() }, nil

	case config.BackendRedis:
		store, err := redisstore.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisKeyPrefix)
		if err != nil {
			return nil, noop, err
		}
		return store, func() { store.Close() }, nil

	case config.BackendMemory:
		slog.Warn("using in-memory store: data is lost on restart")
		return kv.NewMemoryStore(), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
