package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beartshare/admin-api/internal/app/models/dto"
	"github.com/beartshare/admin-api/internal/app/services"
	"github.com/beartshare/admin-api/internal/middleware"
)

// TemplateController handles email template endpoints
type TemplateController struct {
	templateService services.TemplateService
}

// NewTemplateController creates a new TemplateController
func NewTemplateController(templateService services.TemplateService) *TemplateController {
	return &TemplateController{templateService: templateService}
}

// ListTemplates returns all email templates
// @Summary List email templates
// @Tags templates
// @Produce json
// @Success 200 {array} models.EmailTemplate "All templates"
// @Router /email-templates [get]
func (c *TemplateController) ListTemplates(ctx *gin.Context) {
	templates, err := c.templateService.GetAllTemplates(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, templates)
}

// GetTemplate returns a single email template
// @Summary Get email template
// @Tags templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} models.EmailTemplate "Template detail"
// @Failure 404 {object} dto.ErrorResponse "Template not found"
// @Router /email-templates/{id} [get]
func (c *TemplateController) GetTemplate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	template, err := c.templateService.GetTemplateByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, template)
}

// CreateTemplate creates an email template
// @Summary Create email template
// @Tags templates
// @Accept json
// @Produce json
// @Param request body dto.CreateEmailTemplateRequest true "Template"
// @Success 201 {object} models.EmailTemplate "Created template"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Router /email-templates [post]
func (c *TemplateController) CreateTemplate(ctx *gin.Context) {
	var req dto.CreateEmailTemplateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	template, err := c.templateService.CreateTemplate(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, template)
}

// UpdateTemplate updates an email template
// @Summary Update email template
// @Tags templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body dto.UpdateEmailTemplateRequest true "Fields to update"
// @Success 200 {object} models.EmailTemplate "Updated template"
// @Failure 404 {object} dto.ErrorResponse "Template not found"
// @Router /email-templates/{id} [put]
func (c *TemplateController) UpdateTemplate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateEmailTemplateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	template, err := c.templateService.UpdateTemplate(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, template)
}

// DeleteTemplate removes an email template
// @Summary Delete email template
// @Tags templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} dto.SuccessResponse "Template deleted"
// @Failure 404 {object} dto.ErrorResponse "Template not found"
// @Router /email-templates/{id} [delete]
func (c *TemplateController) DeleteTemplate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.templateService.DeleteTemplate(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse())
}
