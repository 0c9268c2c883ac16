package dto

import "encoding/json"

// CreateBlogCategoryRequest is the category create payload
type CreateBlogCategoryRequest struct {
	Name string `json:"name" binding:"required" example:"Duyurular"`
	Slug string `json:"slug" example:"duyurular"`
}

// UpdateBlogCategoryRequest is the category update payload; zero-valued
// fields are left untouched
type UpdateBlogCategoryRequest struct {
	Name string `json:"name" example:"Duyurular"`
	Slug string `json:"slug" example:"duyurular"`
}

// CreateBlogPostRequest is the post create payload. Status is declared as
// json.RawMessage because the front end sends it interchangeably as a
// number, a bare status string, or a localized label; it is normalized
// before storage.
type CreateBlogPostRequest struct {
	Title      string          `json:"title" binding:"required" example:"Yeni özellikler"`
	Content    string          `json:"content" binding:"required"`
	CategoryID *int64          `json:"category_id" example:"1"`
	Slug       string          `json:"slug" example:"yeni-ozellikler"`
	Image      *string         `json:"image"`
	Status     json.RawMessage `json:"status"`
}

// UpdateBlogPostRequest is the post update payload; nil fields are left
// untouched
type UpdateBlogPostRequest struct {
	Title      *string         `json:"title"`
	Content    *string         `json:"content"`
	CategoryID *int64          `json:"category_id"`
	Slug       *string         `json:"slug"`
	Image      *string         `json:"image"`
	Status     json.RawMessage `json:"status"`
}
