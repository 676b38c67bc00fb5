package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/models"
	"printshop-backend/internal/repository"
)

type GalleriesHandler struct {
	repo *repository.GalleryRepository
}

func NewGalleriesHandler(repo *repository.GalleryRepository) *GalleriesHandler {
	return &GalleriesHandler{repo: repo}
}

// CreateGallery godoc
// @Summary     Create or replace a gallery
// @Description Stores the gallery under its id. Behaves exactly like PUT: an existing gallery with the same id is fully replaced.
// @Tags        galleries
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.Gallery true "Gallery (id and name required)"
// @Success     200 {object} models.GalleryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /galleries [post]
func (h *GalleriesHandler) CreateGallery(c *gin.Context) {
	h.save(c, h.repo.Create, "failed to save gallery")
}

// UpdateGallery godoc
// @Summary     Replace a gallery
// @Description Full-value replace; fields omitted from the body (including images) are not kept.
// @Tags        galleries
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.Gallery true "Gallery (id and name required)"
// @Success     200 {object} models.GalleryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /galleries [put]
func (h *GalleriesHandler) UpdateGallery(c *gin.Context) {
	h.save(c, h.repo.Update, "failed to update gallery")
}

func (h *GalleriesHandler) save(c *gin.Context, write func(context.Context, models.Gallery) (models.Gallery, error), failure string) {
	var req models.Gallery
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	gallery, err := write(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, failure)
		return
	}

	c.JSON(http.StatusOK, models.GalleryResponse{Success: true, Gallery: gallery})
}

// ListGalleries godoc
// @Summary     List galleries
// @Tags        galleries
// @Produce     json
// @Success     200 {object} models.GalleryListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /galleries [get]
func (h *GalleriesHandler) ListGalleries(c *gin.Context) {
	galleries, err := h.repo.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch galleries")
		return
	}

	c.JSON(http.StatusOK, models.GalleryListResponse{Success: true, Galleries: galleries})
}

// GetGallery godoc
// @Summary     Get a gallery
// @Tags        galleries
// @Produce     json
// @Param       id path string true "Gallery ID"
// @Success     200 {object} models.GalleryResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /galleries/{id} [get]
func (h *GalleriesHandler) GetGallery(c *gin.Context) {
	gallery, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if repository.IsNotFound(err) {
			respondError(c, err, "gallery not found")
			return
		}
		respondError(c, err, "failed to fetch gallery")
		return
	}

	c.JSON(http.StatusOK, models.GalleryResponse{Success: true, Gallery: gallery})
}

// DeleteGallery godoc
// @Summary     Delete a gallery
// @Description Idempotent: deleting a missing gallery also succeeds.
// @Tags        galleries
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Gallery ID"
// @Success     200 {object} models.SuccessResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /galleries/{id} [delete]
func (h *GalleriesHandler) DeleteGallery(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "failed to delete gallery")
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
