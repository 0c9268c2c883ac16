package services

import (
	"context"

	"github.com/beartshare/admin-api/internal/app/models"
	"github.com/beartshare/admin-api/internal/app/models/dto"
	"github.com/beartshare/admin-api/internal/app/repositories"
	"github.com/beartshare/admin-api/internal/pkg/helpers"
)

// TemplateService handles email template management
type TemplateService interface {
	GetAllTemplates(ctx context.Context) ([]*models.EmailTemplate, error)
	GetTemplateByID(ctx context.Context, id int64) (*models.EmailTemplate, error)
	CreateTemplate(ctx context.Context, req *dto.CreateEmailTemplateRequest) (*models.EmailTemplate, error)
	UpdateTemplate(ctx context.Context, id int64, req *dto.UpdateEmailTemplateRequest) (*models.EmailTemplate, error)
	DeleteTemplate(ctx context.Context, id int64) error
}

// templateService implements TemplateService
type templateService struct {
	templateRepo *repositories.EmailTemplateRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo *repositories.EmailTemplateRepository) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
	}
}

// GetAllTemplates lists all templates
func (s *templateService) GetAllTemplates(ctx context.Context) ([]*models.EmailTemplate, error) {
	return s.templateRepo.GetAll(ctx)
}

// GetTemplateByID retrieves a single template
func (s *templateService) GetTemplateByID(ctx context.Context, id int64) (*models.EmailTemplate, error) {
	return s.templateRepo.GetByID(ctx, id)
}

// CreateTemplate creates a template with server-side timestamps
func (s *templateService) CreateTemplate(ctx context.Context, req *dto.CreateEmailTemplateRequest) (*models.EmailTemplate, error) {
	now := helpers.NowDBDateTime()
	template := &models.EmailTemplate{
		Name:      req.Name,
		Subject:   req.Subject,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

// UpdateTemplate applies the provided fields and refreshes updated_at
func (s *templateService) UpdateTemplate(ctx context.Context, id int64, req *dto.UpdateEmailTemplateRequest) (*models.EmailTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Subject != nil {
		template.Subject = *req.Subject
	}
	if req.Content != nil {
		template.Content = *req.Content
	}
	template.UpdatedAt = helpers.NowDBDateTime()

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

// DeleteTemplate removes a template
func (s *templateService) DeleteTemplate(ctx context.Context, id int64) error {
	return s.templateRepo.Delete(ctx, id)
}
