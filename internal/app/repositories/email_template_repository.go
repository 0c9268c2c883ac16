package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/beartshare/admin-api/internal/app/models"
	"github.com/beartshare/admin-api/internal/pkg/apperrors"
)

// EmailTemplateRepository handles database operations for email templates
type EmailTemplateRepository struct {
	db *pgxpool.Pool
}

// NewEmailTemplateRepository creates a new email template repository
func NewEmailTemplateRepository(db *pgxpool.Pool) *EmailTemplateRepository {
	return &EmailTemplateRepository{
		db: db,
	}
}

// Create inserts a new template and fills in the generated ID
func (r *EmailTemplateRepository) Create(ctx context.Context, template *models.EmailTemplate) error {
	query := `
		INSERT INTO email_templates (name, subject, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		template.Name,
		template.Subject,
		template.Content,
		template.CreatedAt,
		template.UpdatedAt,
	).Scan(&template.ID)
	if err != nil {
		return fmt.Errorf("error creating template: %w", err)
	}

	return nil
}

// GetByID retrieves a template by ID
func (r *EmailTemplateRepository) GetByID(ctx context.Context, id int64) (*models.EmailTemplate, error) {
	query := `
		SELECT id, name, subject, content, created_at, updated_at
		FROM email_templates
		WHERE id = $1
	`

	var template models.EmailTemplate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&template.ID,
		&template.Name,
		&template.Subject,
		&template.Content,
		&template.CreatedAt,
		&template.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("error retrieving template: %w", err)
	}

	return &template, nil
}

// GetAll retrieves all templates, newest first
func (r *EmailTemplateRepository) GetAll(ctx context.Context) ([]*models.EmailTemplate, error) {
	query := `
		SELECT id, name, subject, content, created_at, updated_at
		FROM email_templates
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*models.EmailTemplate
	for rows.Next() {
		var template models.EmailTemplate
		if err := rows.Scan(
			&template.ID,
			&template.Name,
			&template.Subject,
			&template.Content,
			&template.CreatedAt,
			&template.UpdatedAt,
		); err != nil {
			return nil, err
		}
		templates = append(templates, &template)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

// Update persists the full template row
func (r *EmailTemplateRepository) Update(ctx context.Context, template *models.EmailTemplate) error {
	query := `
		UPDATE email_templates
		SET name = $1, subject = $2, content = $3, updated_at = $4
		WHERE id = $5
	`

	tag, err := r.db.Exec(ctx, query,
		template.Name,
		template.Subject,
		template.Content,
		template.UpdatedAt,
		template.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTemplateNotFound
	}

	return nil
}

// Delete removes a template by ID
func (r *EmailTemplateRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM email_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTemplateNotFound
	}
	return nil
}
