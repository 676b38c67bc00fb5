package models

type SaveImagesRequest struct {
	UserID  string           `json:"userId"`
	OrderID string           `json:"orderId"`
	Images  []ImageReference `json:"images"`
}

type AdminSessionRequest struct {
	PIN string `json:"pin" example:"1234"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
