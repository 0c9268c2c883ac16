package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/beartshare/admin-api/internal/app/models"
)

// PointRepository handles database operations for loyalty points
type PointRepository struct {
	db *pgxpool.Pool
}

// NewPointRepository creates a new point repository
func NewPointRepository(db *pgxpool.Pool) *PointRepository {
	return &PointRepository{
		db: db,
	}
}

// Create inserts a point award and fills in the generated ID
func (r *PointRepository) Create(ctx context.Context, point *models.Point) error {
	query := `
		INSERT INTO points (user_id, points, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		point.UserID,
		point.Points,
		point.Description,
		point.CreatedAt,
	).Scan(&point.ID)
	if err != nil {
		return fmt.Errorf("error creating point: %w", err)
	}

	return nil
}

// GetByUserID retrieves a user's point awards, newest first
func (r *PointRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Point, error) {
	query := `
		SELECT id, user_id, points, description, created_at
		FROM points
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []*models.Point
	for rows.Next() {
		var point models.Point
		if err := rows.Scan(
			&point.ID,
			&point.UserID,
			&point.Points,
			&point.Description,
			&point.CreatedAt,
		); err != nil {
			return nil, err
		}
		points = append(points, &point)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

// GetCashOutsByUserID retrieves a user's redemptions, newest first
func (r *PointRepository) GetCashOutsByUserID(ctx context.Context, userID int64) ([]*models.RefPointCashOut, error) {
	query := `
		SELECT id, user_id, points, status, created_at
		FROM ref_point_cash_out
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cashOuts []*models.RefPointCashOut
	for rows.Next() {
		var cashOut models.RefPointCashOut
		if err := rows.Scan(
			&cashOut.ID,
			&cashOut.UserID,
			&cashOut.Points,
			&cashOut.Status,
			&cashOut.CreatedAt,
		); err != nil {
			return nil, err
		}
		cashOuts = append(cashOuts, &cashOut)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cashOuts, nil
}

// GetSummaryByUserID aggregates earned and spent points for a user
func (r *PointRepository) GetSummaryByUserID(ctx context.Context, userID int64) (*models.PointsSummary, error) {
	var earned int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(points), 0) FROM points WHERE user_id = $1`, userID).Scan(&earned)
	if err != nil {
		return nil, fmt.Errorf("error summing earned points: %w", err)
	}

	var spent int64
	err = r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(points), 0) FROM ref_point_cash_out WHERE user_id = $1`, userID).Scan(&spent)
	if err != nil {
		return nil, fmt.Errorf("error summing spent points: %w", err)
	}

	return &models.PointsSummary{
		Earned: earned,
		Spent:  spent,
		Total:  earned - spent,
	}, nil
}
