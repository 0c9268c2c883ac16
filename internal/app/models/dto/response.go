package dto

// SuccessResponse represents a bare success acknowledgement
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// NewSuccessResponse creates a bare success acknowledgement
func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{Success: true}
}
