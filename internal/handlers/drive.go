package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/models"
	"printshop-backend/internal/repository"
)

// SelectionArchiver keeps an out-of-band copy of a saved image selection.
type SelectionArchiver interface {
	ArchiveSelection(ctx context.Context, sel models.ImageSelection) (string, error)
}

type DriveHandler struct {
	repo     *repository.ImageSelectionRepository
	archiver SelectionArchiver
}

// NewDriveHandler creates the handler. archiver may be nil.
func NewDriveHandler(repo *repository.ImageSelectionRepository, archiver SelectionArchiver) *DriveHandler {
	return &DriveHandler{repo: repo, archiver: archiver}
}

// SaveImages godoc
// @Summary     Attach picker images to an order
// @Description Replaces the image selection stored for the order.
// @Tags        drive
// @Accept      json
// @Produce     json
// @Param       request body models.SaveImagesRequest true "Selection"
// @Success     200 {object} models.ImageSelectionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /drive/save-images [post]
func (h *DriveHandler) SaveImages(c *gin.Context) {
	var req models.SaveImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	sel, err := h.repo.Save(c.Request.Context(), req.UserID, req.OrderID, req.Images)
	if err != nil {
		respondError(c, err, "failed to save images")
		return
	}

	if h.archiver != nil {
		// The KV write is authoritative; a failed archive only gets logged.
		if url, err := h.archiver.ArchiveSelection(c.Request.Context(), sel); err != nil {
			slog.Warn("failed to archive image selection", "order_id", sel.OrderID, "error", err)
		} else {
			slog.Info("archived image selection", "order_id", sel.OrderID, "url", url)
		}
	}

	c.JSON(http.StatusOK, models.ImageSelectionResponse{Success: true, Data: sel})
}

// GetImages godoc
// @Summary     Get the images attached to an order
// @Description Returns {"images": []} when the order has no stored selection.
// @Tags        drive
// @Produce     json
// @Security    Bearer
// @Param       orderId path string true "Order ID"
// @Success     200 {object} models.ImageSelectionResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /drive/get-images/{orderId} [get]
func (h *DriveHandler) GetImages(c *gin.Context) {
	sel, err := h.repo.Get(c.Request.Context(), c.Param("orderId"))
	if repository.IsNotFound(err) {
		c.JSON(http.StatusOK, models.EmptyImagesResponse{Images: []models.ImageReference{}})
		return
	}
	if err != nil {
		respondError(c, err, "failed to fetch images")
		return
	}

	c.JSON(http.StatusOK, models.ImageSelectionResponse{Success: true, Data: sel})
}
