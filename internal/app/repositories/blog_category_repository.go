package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/beartshare/admin-api/internal/app/models"
	"github.com/beartshare/admin-api/internal/pkg/apperrors"
	"github.com/beartshare/admin-api/internal/pkg/dberrors"
)

// BlogCategoryRepository handles database operations for blog categories
type BlogCategoryRepository struct {
	db *pgxpool.Pool
}

// NewBlogCategoryRepository creates a new blog category repository
func NewBlogCategoryRepository(db *pgxpool.Pool) *BlogCategoryRepository {
	return &BlogCategoryRepository{
		db: db,
	}
}

// Create inserts a new category and fills in the generated ID
func (r *BlogCategoryRepository) Create(ctx context.Context, category *models.BlogCategory) error {
	query := `
		INSERT INTO blog_categories (name, slug, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, category.Name, category.Slug, category.CreatedAt).Scan(&category.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "blog_categories_slug_key") {
			return apperrors.ErrSlugAlreadyUsed
		}
		return fmt.Errorf("error creating category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by ID
func (r *BlogCategoryRepository) GetByID(ctx context.Context, id int64) (*models.BlogCategory, error) {
	query := `
		SELECT id, name, slug, created_at
		FROM blog_categories
		WHERE id = $1
	`

	var category models.BlogCategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error retrieving category: %w", err)
	}

	return &category, nil
}

// GetAll retrieves all categories ordered by name
func (r *BlogCategoryRepository) GetAll(ctx context.Context) ([]*models.BlogCategory, error) {
	query := `
		SELECT id, name, slug, created_at
		FROM blog_categories
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.BlogCategory
	for rows.Next() {
		var category models.BlogCategory
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Slug,
			&category.CreatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// Update applies non-empty fields to an existing category
func (r *BlogCategoryRepository) Update(ctx context.Context, category *models.BlogCategory) error {
	query := `
		UPDATE blog_categories
		SET name = $1, slug = $2
		WHERE id = $3
	`

	tag, err := r.db.Exec(ctx, query, category.Name, category.Slug, category.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "blog_categories_slug_key") {
			return apperrors.ErrSlugAlreadyUsed
		}
		return fmt.Errorf("error updating category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category by ID
func (r *BlogCategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCategoryNotFound
	}
	return nil
}

// PostCount returns the number of posts filed under a category
func (r *BlogCategoryRepository) PostCount(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting posts: %w", err)
	}
	return count, nil
}
