package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/beartshare/admin-api/internal/app/models"
	"github.com/beartshare/admin-api/internal/app/models/dto"
	"github.com/beartshare/admin-api/internal/app/repositories"
	"github.com/beartshare/admin-api/internal/pkg/apperrors"
	"github.com/beartshare/admin-api/internal/pkg/helpers"
)

// BlogService handles blog category and post management
type BlogService interface {
	GetAllCategories(ctx context.Context) ([]*models.BlogCategory, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.BlogCategory, error)
	CreateCategory(ctx context.Context, req *dto.CreateBlogCategoryRequest) (*models.BlogCategory, error)
	UpdateCategory(ctx context.Context, id int64, req *dto.UpdateBlogCategoryRequest) (*models.BlogCategory, error)
	DeleteCategory(ctx context.Context, id int64) error

	GetAllPosts(ctx context.Context) ([]*models.BlogPost, error)
	GetPostByID(ctx context.Context, id int64) (*models.BlogPost, error)
	CreatePost(ctx context.Context, authorID int64, req *dto.CreateBlogPostRequest) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, id int64, req *dto.UpdateBlogPostRequest) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id int64) error
}

// blogService implements BlogService
type blogService struct {
	categoryRepo *repositories.BlogCategoryRepository
	postRepo     *repositories.BlogPostRepository
}

// NewBlogService creates a new blog service
func NewBlogService(categoryRepo *repositories.BlogCategoryRepository, postRepo *repositories.BlogPostRepository) BlogService {
	return &blogService{
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
	}
}

// NormalizeStatus maps the status forms the front end sends (number, bare
// string, English or Turkish label) onto the "0"/"1" strings the legacy
// schema stores. An empty raw value yields "" so callers can apply their own
// default; anything unrecognized is a validation error.
func NormalizeStatus(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	value := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	switch value {
	case "1", "published", "Yayında":
		return models.PostStatusPublished, nil
	case "0", "draft", "Taslak":
		return models.PostStatusDraft, nil
	default:
		return "", apperrors.NewValidationError("unrecognized status value: " + value)
	}
}

// GetAllCategories lists categories with their post counts
func (s *blogService) GetAllCategories(ctx context.Context) ([]*models.BlogCategory, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, category := range categories {
		count, err := s.categoryRepo.PostCount(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		category.PostCount = count
	}

	return categories, nil
}

// GetCategoryByID retrieves a single category
func (s *blogService) GetCategoryByID(ctx context.Context, id int64) (*models.BlogCategory, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// CreateCategory creates a category, deriving the slug from the name when absent
func (s *blogService) CreateCategory(ctx context.Context, req *dto.CreateBlogCategoryRequest) (*models.BlogCategory, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("category name cannot be empty")
	}

	slug := req.Slug
	if slug == "" {
		slug = helpers.GenerateSlug(req.Name)
	}

	category := &models.BlogCategory{
		Name:      req.Name,
		Slug:      slug,
		CreatedAt: helpers.NowDBDateTime(),
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// UpdateCategory applies the provided fields to a category
func (s *blogService) UpdateCategory(ctx context.Context, id int64, req *dto.UpdateBlogCategoryRequest) (*models.BlogCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		category.Name = req.Name
		if req.Slug == "" {
			category.Slug = helpers.GenerateSlug(req.Name)
		}
	}
	if req.Slug != "" {
		category.Slug = req.Slug
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes a category
func (s *blogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categoryRepo.Delete(ctx, id)
}

// GetAllPosts lists all posts
func (s *blogService) GetAllPosts(ctx context.Context) ([]*models.BlogPost, error) {
	return s.postRepo.GetAll(ctx)
}

// GetPostByID retrieves a single post
func (s *blogService) GetPostByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	return s.postRepo.GetByID(ctx, id)
}

// CreatePost creates a post: status normalized, slug derived from the title
// when absent, author stamped from the session, timestamps set server-side
// in the legacy string format.
func (s *blogService) CreatePost(ctx context.Context, authorID int64, req *dto.CreateBlogPostRequest) (*models.BlogPost, error) {
	status, err := NormalizeStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if status == "" {
		status = models.PostStatusDraft
	}

	slug := req.Slug
	if slug == "" {
		slug = helpers.GenerateSlug(req.Title)
	}

	now := helpers.NowDBDateTime()
	post := &models.BlogPost{
		UserID:     authorID,
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Slug:       slug,
		Content:    req.Content,
		Image:      req.Image,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost applies the provided fields to a post. The original author is
// kept; updated_at is refreshed.
func (s *blogService) UpdatePost(ctx context.Context, id int64, req *dto.UpdateBlogPostRequest) (*models.BlogPost, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
		// Regenerate the slug from the new title unless one was sent along
		if req.Slug == nil {
			post.Slug = helpers.GenerateSlug(*req.Title)
		}
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.CategoryID != nil {
		post.CategoryID = req.CategoryID
	}
	if req.Image != nil {
		post.Image = req.Image
	}

	status, err := NormalizeStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if status != "" {
		post.Status = status
	}

	post.UpdatedAt = helpers.NowDBDateTime()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes a post
func (s *blogService) DeletePost(ctx context.Context, id int64) error {
	return s.postRepo.Delete(ctx, id)
}
