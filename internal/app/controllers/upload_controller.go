package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beartshare/admin-api/internal/app/models/dto"
	"github.com/beartshare/admin-api/internal/middleware"
	"github.com/beartshare/admin-api/internal/pkg/apperrors"
	"github.com/beartshare/admin-api/internal/pkg/images"
)

// maxUploadSize caps in-memory image uploads at 10 MiB.
const maxUploadSize = 10 << 20

// UploadController proxies image uploads to the CDN
type UploadController struct {
	uploader images.Uploader
}

// NewUploadController creates a new UploadController
func NewUploadController(uploader images.Uploader) *UploadController {
	return &UploadController{uploader: uploader}
}

// UploadImage forwards a multipart image file to the CDN
// @Summary Upload image
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} dto.UploadImageResponse "Delivery URL and variants"
// @Failure 400 {object} dto.ErrorResponse "Missing or oversized file"
// @Failure 500 {object} dto.ErrorResponse "CDN rejected the upload"
// @Router /upload-image [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("image file is required"))
		return
	}
	if fileHeader.Size > maxUploadSize {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("image file exceeds the 10MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("could not read uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("could not read uploaded file"))
		return
	}

	result, err := c.uploader.UploadFile(ctx, data, fileHeader.Filename)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.UploadImageResponse{
		URL:     c.uploader.ImageURL(result),
		Success: true,
	}
	if result.Result != nil {
		response.Variants = result.Result.Variants
	}
	ctx.JSON(http.StatusOK, response)
}

// UploadImageFromURL asks the CDN to ingest an image from a source URL
// @Summary Upload image by URL
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body dto.UploadImageURLRequest true "Source URL"
// @Success 200 {object} dto.UploadImageURLResponse "Stored image id and variants"
// @Failure 400 {object} dto.ErrorResponse "Missing URL"
// @Failure 500 {object} dto.ErrorResponse "CDN rejected the upload"
// @Router /upload-image-url [post]
func (c *UploadController) UploadImageFromURL(ctx *gin.Context) {
	var req dto.UploadImageURLRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := c.uploader.UploadFromURL(ctx, req.URL)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.UploadImageURLResponse{Success: true}
	if result.Result != nil {
		response.ImageID = result.Result.ID
		response.Variants = result.Result.Variants
	}
	ctx.JSON(http.StatusOK, response)
}
