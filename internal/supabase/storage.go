package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"
	"printshop-backend/internal/models"
)

// StorageClient writes image selection manifests to a Supabase Storage
// bucket so the print team can pick them up alongside the order.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) *StorageClient {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// SelectionPath returns the object path of an order's selection manifest.
func SelectionPath(orderID string) string {
	return fmt.Sprintf("orders/%s/images.json", orderID)
}

// ArchiveSelection uploads sel as JSON, replacing an earlier manifest for the
// same order, and returns the object's public URL.
func (s *StorageClient) ArchiveSelection(ctx context.Context, sel models.ImageSelection) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(sel, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode selection: %w", err)
	}

	storagePath := SelectionPath(sel.OrderID)
	contentType := "application/json"
	upsert := true
	_, err = s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload selection: %w", err)
	}

	return s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}
