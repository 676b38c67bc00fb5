package models

// ImageReference describes an externally hosted image chosen in the picker.
type ImageReference struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	MimeType       string `json:"mimeType"`
	ThumbnailLink  string `json:"thumbnailLink,omitempty"`
	WebContentLink string `json:"webContentLink,omitempty"`
	IconLink       string `json:"iconLink,omitempty"`
}

// Gallery is stored verbatim under gallery_<ID>. Images keep display order.
type Gallery struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Images      []ImageReference `json:"images"`
	CreatedAt   string           `json:"createdAt,omitempty"`
}

// ImageSelection is the set of picker images a customer attached to an order.
type ImageSelection struct {
	UserID    string           `json:"userId"`
	OrderID   string           `json:"orderId"`
	Images    []ImageReference `json:"images"`
	Timestamp string           `json:"timestamp"`
}
