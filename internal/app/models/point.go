package models

// Point defines a loyalty point award based on the 'points' table
type Point struct {
	ID          int64  `json:"id" db:"id" example:"1"`
	UserID      int64  `json:"user_id" db:"user_id" example:"1"`
	Points      int64  `json:"points" db:"points" example:"100"`
	Description string `json:"description" db:"description" example:"Referral bonus"`
	CreatedAt   string `json:"created_at" db:"created_at" example:"2024-01-01 10:00:00"`
}

// RefPointCashOut defines a loyalty point redemption based on the
// 'ref_point_cash_out' table
type RefPointCashOut struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	UserID    int64  `json:"user_id" db:"user_id" example:"1"`
	Points    int64  `json:"points" db:"points" example:"50"`
	Status    int    `json:"status" db:"status" example:"1"`
	CreatedAt string `json:"created_at" db:"created_at" example:"2024-01-01 10:00:00"`
}

// PointsSummary aggregates a user's earned and spent loyalty points
type PointsSummary struct {
	Earned int64 `json:"earned" example:"300"`
	Spent  int64 `json:"spent" example:"50"`
	Total  int64 `json:"total" example:"250"`
}
