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

const blogPostColumns = `id, user_id, category_id, title, slug, content, image, status, created_at, updated_at`

// BlogPostRepository handles database operations for blog posts
type BlogPostRepository struct {
	db *pgxpool.Pool
}

// NewBlogPostRepository creates a new blog post repository
func NewBlogPostRepository(db *pgxpool.Pool) *BlogPostRepository {
	return &BlogPostRepository{
		db: db,
	}
}

func scanBlogPost(row pgx.Row) (*models.BlogPost, error) {
	var post models.BlogPost
	err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.CategoryID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Image,
		&post.Status,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post and fills in the generated ID
func (r *BlogPostRepository) Create(ctx context.Context, post *models.BlogPost) error {
	query := `
		INSERT INTO blog_posts (user_id, category_id, title, slug, content, image, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		post.UserID,
		post.CategoryID,
		post.Title,
		post.Slug,
		post.Content,
		post.Image,
		post.Status,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "blog_posts_slug_key") {
			return apperrors.ErrSlugAlreadyUsed
		}
		return fmt.Errorf("error creating post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by ID
func (r *BlogPostRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	query := `
		SELECT ` + blogPostColumns + `
		FROM blog_posts
		WHERE id = $1
	`

	post, err := scanBlogPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error retrieving post: %w", err)
	}

	return post, nil
}

// GetAll retrieves all posts, newest first
func (r *BlogPostRepository) GetAll(ctx context.Context) ([]*models.BlogPost, error) {
	query := `
		SELECT ` + blogPostColumns + `
		FROM blog_posts
		ORDER BY id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// Update persists the full post row
func (r *BlogPostRepository) Update(ctx context.Context, post *models.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET category_id = $1, title = $2, slug = $3, content = $4, image = $5, status = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := r.db.Exec(ctx, query,
		post.CategoryID,
		post.Title,
		post.Slug,
		post.Content,
		post.Image,
		post.Status,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "blog_posts_slug_key") {
			return apperrors.ErrSlugAlreadyUsed
		}
		return fmt.Errorf("error updating post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}

	return nil
}

// Delete removes a post by ID
func (r *BlogPostRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrPostNotFound
	}
	return nil
}
