package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/models"
	"printshop-backend/internal/repository"
)

// HealthHandler godoc
// @Summary     Health check
// @Description Returns the health status of the API
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(repository.TimestampFormat),
	})
}
