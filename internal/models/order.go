package models

// OrderFields are the caller-supplied parts of a quote request.
type OrderFields struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company,omitempty"`
	Quantity    string `json:"quantity,omitempty"`
	Timeline    string `json:"timeline,omitempty"`
	Message     string `json:"message,omitempty"`
	ServiceName string `json:"serviceName"`

	// Snapshot of the gallery chosen at submission time. Not kept in sync
	// with later gallery edits.
	GalleryID   string `json:"galleryId,omitempty"`
	GalleryName string `json:"galleryName,omitempty"`
	ImageCount  int    `json:"imageCount,omitempty"`
}

// Order is an immutable quote request.
type Order struct {
	OrderFields
	OrderID   string `json:"orderId"`
	CreatedAt string `json:"createdAt"`
}
