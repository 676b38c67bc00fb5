package server

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"printshop-backend/internal/config"
	"printshop-backend/internal/handlers"
	"printshop-backend/internal/kv"
	"printshop-backend/internal/metrics"
	"printshop-backend/internal/middleware"
	"printshop-backend/internal/repository"
)

type Dependencies struct {
	Config *config.Config
	Store  kv.Store
	// Archiver is optional.
	Archiver handlers.SelectionArchiver
	// Metrics and Gatherer are optional; /metrics is only mounted when
	// Gatherer is set.
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// NewRouter wires repositories and handlers onto a gin engine.
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config

	galleriesHandler := handlers.NewGalleriesHandler(repository.NewGalleryRepository(deps.Store))
	ordersHandler := handlers.NewOrdersHandler(repository.NewOrderRepository(deps.Store))
	driveHandler := handlers.NewDriveHandler(repository.NewImageSelectionRepository(deps.Store), deps.Archiver)
	adminHandler := handlers.NewAdminHandler(cfg)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg)))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group(cfg.APIBasePath)
	api.GET("/health", handlers.HealthHandler)

	// Public storefront routes
	api.GET("/galleries", galleriesHandler.ListGalleries)
	api.GET("/galleries/:id", galleriesHandler.GetGallery)
	api.POST("/orders", ordersHandler.CreateOrder)
	api.POST("/drive/save-images", driveHandler.SaveImages)
	api.POST("/admin/session", adminHandler.CreateSession)

	// Admin routes
	admin := api.Group("", middleware.AdminAuth(cfg))
	admin.POST("/galleries", galleriesHandler.CreateGallery)
	admin.PUT("/galleries", galleriesHandler.UpdateGallery)
	admin.DELETE("/galleries/:id", galleriesHandler.DeleteGallery)
	admin.GET("/orders", ordersHandler.ListOrders)
	admin.GET("/drive/get-images/:orderId", driveHandler.GetImages)

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSAllowOrigins) == 0 || slices.Contains(cfg.CORSAllowOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowOrigins
	}
	return c
}
