package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beartshare/admin-api/internal/app/models/dto"
	"github.com/beartshare/admin-api/internal/app/services"
	"github.com/beartshare/admin-api/internal/middleware"
)

// DispatchController handles bulk email and SMS dispatch endpoints
type DispatchController struct {
	dispatchService services.DispatchService
}

// NewDispatchController creates a new DispatchController
func NewDispatchController(dispatchService services.DispatchService) *DispatchController {
	return &DispatchController{dispatchService: dispatchService}
}

// SendEmail dispatches a personalized bulk email to the selected users
// @Summary Send bulk email
// @Tags dispatch
// @Accept json
// @Produce json
// @Param request body dto.SendEmailRequest true "Dispatch request"
// @Success 200 {object} dto.SendEmailResponse "Per-recipient results"
// @Failure 400 {object} dto.ErrorResponse "Empty user list or missing content"
// @Failure 404 {object} dto.ErrorResponse "Template not found"
// @Router /send-email [post]
func (c *DispatchController) SendEmail(ctx *gin.Context) {
	var req dto.SendEmailRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := c.dispatchService.SendBulkEmail(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// SendSMS dispatches a bulk SMS to the selected users in one gateway call
// @Summary Send bulk SMS
// @Tags dispatch
// @Accept json
// @Produce json
// @Param request body dto.SendSMSRequest true "Dispatch request"
// @Success 200 {object} dto.SendSMSResponse "Gateway acknowledgement"
// @Failure 400 {object} dto.ErrorResponse "Empty user list, blank message or no reachable numbers"
// @Failure 500 {object} dto.ErrorResponse "Gateway call failed"
// @Router /send-sms [post]
func (c *DispatchController) SendSMS(ctx *gin.Context) {
	var req dto.SendSMSRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := c.dispatchService.SendBulkSMS(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
