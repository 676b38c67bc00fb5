package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"printshop-backend/internal/models"
	"printshop-backend/internal/repository"
)

// respondError maps repository errors onto HTTP responses. Store failures
// pass the backend message through in details.
func respondError(c *gin.Context, err error, failure string) {
	var (
		validation *repository.ValidationError
		notFound   *repository.NotFoundError
		storeErr   *repository.StoreError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: validation.Message})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: failure})
	default:
		slog.Error(failure, "error", err, "path", c.FullPath())
		details := err.Error()
		if errors.As(err, &storeErr) {
			details = storeErr.Err.Error()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   failure,
			Details: details,
		})
	}
}

func invalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid request body",
		Details: err.Error(),
	})
}
