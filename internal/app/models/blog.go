package models

// BlogCategory defines the blog category model based on the 'blog_categories' table
type BlogCategory struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	Name      string `json:"name" db:"name" example:"Duyurular"`
	Slug      string `json:"slug" db:"slug" example:"duyurular"`
	CreatedAt string `json:"created_at" db:"created_at" example:"2024-01-01 10:00:00"`

	// PostCount is computed on listing, not stored
	PostCount int64 `json:"postCount,omitempty"`
}

// BlogPost defines the blog post model based on the 'blog_posts' table
type BlogPost struct {
	ID         int64   `json:"id" db:"id" example:"1"`
	UserID     int64   `json:"user_id" db:"user_id" example:"1"`                 // Author, stamped from the session on create
	CategoryID *int64  `json:"category_id,omitempty" db:"category_id"`           // Category (nullable)
	Title      string  `json:"title" db:"title" example:"Yeni özellikler"`
	Slug       string  `json:"slug" db:"slug" example:"yeni-ozellikler"`
	Content    string  `json:"content" db:"content"`                             // HTML body
	Image      *string `json:"image,omitempty" db:"image"`                       // Cover image URL (nullable)
	Status     string  `json:"status" db:"status" example:"1"`                   // "0" draft, "1" published
	CreatedAt  string  `json:"created_at" db:"created_at" example:"2024-01-01 10:00:00"`
	UpdatedAt  string  `json:"updated_at" db:"updated_at" example:"2024-01-02 15:30:00"`
}

// Post status values as persisted in the legacy schema.
const (
	PostStatusDraft     = "0"
	PostStatusPublished = "1"
)
