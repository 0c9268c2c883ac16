package dto

// CreatePointRequest awards loyalty points to a user
type CreatePointRequest struct {
	Points      int64  `json:"points" binding:"required" example:"100"`
	Description string `json:"description" example:"Referral bonus"`
}
