package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	BlogCategoryRepository  *BlogCategoryRepository
	BlogPostRepository      *BlogPostRepository
	EmailTemplateRepository *EmailTemplateRepository
	PointRepository         *PointRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		BlogCategoryRepository:  NewBlogCategoryRepository(db),
		BlogPostRepository:      NewBlogPostRepository(db),
		EmailTemplateRepository: NewEmailTemplateRepository(db),
		PointRepository:         NewPointRepository(db),
	}
}
