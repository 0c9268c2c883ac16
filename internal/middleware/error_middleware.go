package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/beartshare/admin-api/internal/app/models/dto"
	"github.com/beartshare/admin-api/internal/pkg/apperrors"
)

// HandleAPIError translates service errors into HTTP responses. Validation
// and precondition failures become 4xx with a coded envelope; anything
// unrecognized collapses to a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials or not an admin")))
		return
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrSessionNotFound):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Unauthorized")))
		return
	case errors.Is(err, apperrors.ErrTemplateNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTemplateNotFound, "Email template not found")))
		return
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCategoryNotFound),
		errors.Is(err, apperrors.ErrPostNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, errorMessage(err, "Resource not found"))))
		return
	case errors.Is(err, apperrors.ErrSlugAlreadyUsed), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, errorMessage(err, "Resource already exists"))))
		return
	case errors.Is(err, apperrors.ErrInvalidInput):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidInput, errorMessage(err, "Invalid dispatch input"))))
		return
	case errors.Is(err, apperrors.ErrNoValidRecipients):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNoValidRecipients, "No valid phone numbers found")))
		return
	case errors.Is(err, apperrors.ErrEmptyMessage):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeEmptyMessage, "Message required")))
		return
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, errorMessage(err, "Validation failed"))))
		return
	case errors.Is(err, apperrors.ErrUploadNotConfigured):
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Image upload credentials not configured")))
		return
	case errors.Is(err, apperrors.ErrUploadFailed), errors.Is(err, apperrors.ErrTransportFailure):
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, errorMessage(err, "External service call failed"))))
		return
	default:
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
		return
	}
}

// errorMessage prefers the CustomError message when one was attached
func errorMessage(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
