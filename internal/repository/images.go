package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"printshop-backend/internal/kv"
	"printshop-backend/internal/models"
)

// ImageSelectionRepository stores the picker images attached to an order
// under order_images_<orderId>.
type ImageSelectionRepository struct {
	store kv.Store
	now   func() time.Time
}

func NewImageSelectionRepository(store kv.Store) *ImageSelectionRepository {
	return &ImageSelectionRepository{store: store, now: time.Now}
}

// Save replaces any previous selection for the order.
func (r *ImageSelectionRepository) Save(ctx context.Context, userID, orderID string, images []models.ImageReference) (models.ImageSelection, error) {
	if userID == "" {
		return models.ImageSelection{}, &ValidationError{Field: "userId", Message: "missing required fields"}
	}
	if orderID == "" {
		return models.ImageSelection{}, &ValidationError{Field: "orderId", Message: "missing required fields"}
	}
	if images == nil {
		return models.ImageSelection{}, &ValidationError{Field: "images", Message: "missing required fields"}
	}

	sel := models.ImageSelection{
		UserID:    userID,
		OrderID:   orderID,
		Images:    images,
		Timestamp: r.now().UTC().Format(TimestampFormat),
	}

	data, err := json.Marshal(sel)
	if err != nil {
		return models.ImageSelection{}, storeErr("encode image selection", err)
	}
	if err := r.store.Upsert(ctx, kv.OrderImagesKey(orderID), data); err != nil {
		return models.ImageSelection{}, storeErr("save images", err)
	}
	return sel, nil
}

func (r *ImageSelectionRepository) Get(ctx context.Context, orderID string) (models.ImageSelection, error) {
	data, err := r.store.Get(ctx, kv.OrderImagesKey(orderID))
	if errors.Is(err, kv.ErrNotFound) {
		return models.ImageSelection{}, &NotFoundError{Kind: kv.KindOrderImages, ID: orderID}
	}
	if err != nil {
		return models.ImageSelection{}, storeErr("get images", err)
	}

	var sel models.ImageSelection
	if err := json.Unmarshal(data, &sel); err != nil {
		return models.ImageSelection{}, storeErr("decode image selection", err)
	}
	return sel, nil
}
