package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"printshop-backend/internal/kv"
	"printshop-backend/internal/models"
)

// GalleryRepository stores galleries as whole JSON values. Create and Update
// are the same upsert; concurrent writers to one id resolve last-write-wins.
type GalleryRepository struct {
	store kv.Store
}

func NewGalleryRepository(store kv.Store) *GalleryRepository {
	return &GalleryRepository{store: store}
}

func (r *GalleryRepository) Create(ctx context.Context, g models.Gallery) (models.Gallery, error) {
	return r.save(ctx, g)
}

// Update replaces the stored gallery with g. Fields absent from g, including
// images, are not carried over from the previous value.
func (r *GalleryRepository) Update(ctx context.Context, g models.Gallery) (models.Gallery, error) {
	return r.save(ctx, g)
}

func (r *GalleryRepository) save(ctx context.Context, g models.Gallery) (models.Gallery, error) {
	if err := validateGallery(g); err != nil {
		return models.Gallery{}, err
	}
	// Omitted images are stored as an empty list, never null.
	if g.Images == nil {
		g.Images = []models.ImageReference{}
	}

	data, err := json.Marshal(g)
	if err != nil {
		return models.Gallery{}, storeErr("encode gallery", err)
	}
	if err := r.store.Upsert(ctx, kv.GalleryKey(g.ID), data); err != nil {
		return models.Gallery{}, storeErr("save gallery", err)
	}
	return g, nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, id string) (models.Gallery, error) {
	data, err := r.store.Get(ctx, kv.GalleryKey(id))
	if errors.Is(err, kv.ErrNotFound) {
		return models.Gallery{}, &NotFoundError{Kind: kv.KindGallery, ID: id}
	}
	if err != nil {
		return models.Gallery{}, storeErr("get gallery", err)
	}

	var g models.Gallery
	if err := json.Unmarshal(data, &g); err != nil {
		return models.Gallery{}, storeErr("decode gallery", err)
	}
	return g, nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]models.Gallery, error) {
	entries, err := r.store.Scan(ctx, kv.PrefixFor(kv.KindGallery))
	if err != nil {
		return nil, storeErr("list galleries", err)
	}

	entries = kv.FilterKind(entries, kv.KindGallery)
	galleries := make([]models.Gallery, 0, len(entries))
	for _, e := range entries {
		var g models.Gallery
		if err := json.Unmarshal(e.Value, &g); err != nil {
			return nil, storeErr("decode gallery "+e.Key, err)
		}
		galleries = append(galleries, g)
	}
	return galleries, nil
}

// Delete removes the gallery unconditionally. Orders that snapshot it are
// unaffected.
func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, kv.GalleryKey(id)); err != nil {
		return storeErr("delete gallery", err)
	}
	return nil
}

func validateGallery(g models.Gallery) error {
	if g.ID == "" {
		return &ValidationError{Field: "id", Message: "Gallery ID and name are required"}
	}
	if strings.TrimSpace(g.Name) == "" {
		return &ValidationError{Field: "name", Message: "Gallery ID and name are required"}
	}
	return nil
}
