package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beartshare/admin-api/internal/app/models/dto"
	"github.com/beartshare/admin-api/internal/app/services"
	"github.com/beartshare/admin-api/internal/middleware"
	"github.com/beartshare/admin-api/internal/pkg/apperrors"
)

// BlogController handles blog category and post endpoints
type BlogController struct {
	blogService services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// ListCategories returns all blog categories with their post counts
// @Summary List blog categories
// @Tags blog
// @Produce json
// @Success 200 {array} models.BlogCategory "All categories"
// @Router /blog-categories [get]
func (c *BlogController) ListCategories(ctx *gin.Context) {
	categories, err := c.blogService.GetAllCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetCategory returns a single blog category
// @Summary Get blog category
// @Tags blog
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.BlogCategory "Category detail"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /blog-categories/{id} [get]
func (c *BlogController) GetCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	category, err := c.blogService.GetCategoryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// CreateCategory creates a blog category; the slug is derived from the name
// when omitted
// @Summary Create blog category
// @Tags blog
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogCategoryRequest true "Category"
// @Success 201 {object} models.BlogCategory "Created category"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 409 {object} dto.ErrorResponse "Slug already in use"
// @Router /blog-categories [post]
func (c *BlogController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateBlogCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	category, err := c.blogService.CreateCategory(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

// UpdateCategory updates a blog category
// @Summary Update blog category
// @Tags blog
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body dto.UpdateBlogCategoryRequest true "Fields to update"
// @Success 200 {object} models.BlogCategory "Updated category"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 409 {object} dto.ErrorResponse "Slug already in use"
// @Router /blog-categories/{id} [put]
func (c *BlogController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBlogCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	category, err := c.blogService.UpdateCategory(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

// DeleteCategory removes a blog category
// @Summary Delete blog category
// @Tags blog
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.SuccessResponse "Category deleted"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Router /blog-categories/{id} [delete]
func (c *BlogController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.blogService.DeleteCategory(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse())
}

// ListPosts returns all blog posts
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Success 200 {array} models.BlogPost "All posts"
// @Router /blog-posts [get]
func (c *BlogController) ListPosts(ctx *gin.Context) {
	posts, err := c.blogService.GetAllPosts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, posts)
}

// GetPost returns a single blog post
// @Summary Get blog post
// @Tags blog
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.BlogPost "Post detail"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /blog-posts/{id} [get]
func (c *BlogController) GetPost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	post, err := c.blogService.GetPostByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// CreatePost creates a blog post authored by the session user
// @Summary Create blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogPostRequest true "Post"
// @Success 201 {object} models.BlogPost "Created post"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or status value"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /blog-posts [post]
func (c *BlogController) CreatePost(ctx *gin.Context) {
	authorID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateBlogPostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.blogService.CreatePost(ctx, authorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}

// UpdatePost updates a blog post
// @Summary Update blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body dto.UpdateBlogPostRequest true "Fields to update"
// @Success 200 {object} models.BlogPost "Updated post"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or status value"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /blog-posts/{id} [put]
func (c *BlogController) UpdatePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBlogPostRequest
	if !bindJSON(ctx, &req) {
		return
	}

	post, err := c.blogService.UpdatePost(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, post)
}

// DeletePost removes a blog post
// @Summary Delete blog post
// @Tags blog
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.SuccessResponse "Post deleted"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /blog-posts/{id} [delete]
func (c *BlogController) DeletePost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.blogService.DeletePost(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse())
}
