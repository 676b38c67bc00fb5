package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/config"
	"printshop-backend/internal/middleware"
	"printshop-backend/internal/models"
)

type AdminHandler struct {
	cfg *config.Config
}

func NewAdminHandler(cfg *config.Config) *AdminHandler {
	return &AdminHandler{cfg: cfg}
}

// CreateSession godoc
// @Summary     Open an admin session
// @Description Exchanges the admin PIN for a bearer token used on admin routes.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body models.AdminSessionRequest true "Admin PIN"
// @Success     200 {object} models.AdminSessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Router      /admin/session [post]
func (h *AdminHandler) CreateSession(c *gin.Context) {
	if !h.cfg.AdminGateEnabled() {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "admin sessions are not configured"})
		return
	}

	var req models.AdminSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}
	if req.PIN == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "pin is required"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.PIN), []byte(h.cfg.AdminPIN)) != 1 {
		slog.Warn("rejected admin PIN", "client_ip", c.ClientIP())
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "incorrect PIN"})
		return
	}

	token, expiresAt, err := middleware.IssueAdminToken(h.cfg, time.Now())
	if err != nil {
		respondError(c, err, "failed to issue session")
		return
	}

	c.JSON(http.StatusOK, models.AdminSessionResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
