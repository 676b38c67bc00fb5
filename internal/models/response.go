package models

import "time"

type GalleryResponse struct {
	Success bool    `json:"success"`
	Gallery Gallery `json:"gallery"`
}

type GalleryListResponse struct {
	Success   bool      `json:"success"`
	Galleries []Gallery `json:"galleries"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type OrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Order   Order  `json:"order"`
}

type OrderListResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}

type ImageSelectionResponse struct {
	Success bool           `json:"success"`
	Data    ImageSelection `json:"data"`
}

// EmptyImagesResponse is returned when no selection exists for an order.
type EmptyImagesResponse struct {
	Images []ImageReference `json:"images"`
}

type AdminSessionResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
