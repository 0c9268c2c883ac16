// Package images uploads files to Cloudflare Images and returns the CDN
// variant URLs the blog editor embeds.
package images

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/beartshare/admin-api/internal/pkg/apperrors"
)

// Config holds the Cloudflare Images account credentials
type Config struct {
	AccountID string
	APIToken  string
}

// UploadResult is the parsed Cloudflare Images API response
type UploadResult struct {
	Success bool `json:"success"`
	Result  *struct {
		ID       string   `json:"id"`
		Filename string   `json:"filename"`
		Uploaded string   `json:"uploaded"`
		Variants []string `json:"variants"`
	} `json:"result"`
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Uploader defines the image upload boundary used by the upload controller.
type Uploader interface {
	UploadFile(ctx context.Context, file []byte, filename string) (*UploadResult, error)
	UploadFromURL(ctx context.Context, sourceURL string) (*UploadResult, error)
	ImageURL(result *UploadResult) string
}

// CloudflareUploader implements Uploader against the Cloudflare Images v1 API
type CloudflareUploader struct {
	config Config
	client *http.Client
	logger zerolog.Logger
}

// NewCloudflareUploader creates a new Cloudflare Images client
func NewCloudflareUploader(config Config, logger zerolog.Logger) *CloudflareUploader {
	return &CloudflareUploader{
		config: config,
		client: &http.Client{Timeout: 60 * time.Second},
		logger: logger,
	}
}

// UploadFile uploads raw file bytes as a multipart form.
func (u *CloudflareUploader) UploadFile(ctx context.Context, file []byte, filename string) (*UploadResult, error) {
	return u.upload(ctx, func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			return err
		}
		if _, err := part.Write(file); err != nil {
			return err
		}
		return nil
	})
}

// UploadFromURL asks Cloudflare to ingest an image from a source URL.
func (u *CloudflareUploader) UploadFromURL(ctx context.Context, sourceURL string) (*UploadResult, error) {
	return u.upload(ctx, func(w *multipart.Writer) error {
		return w.WriteField("url", sourceURL)
	})
}

// upload builds the multipart body, submits it and decodes the response.
func (u *CloudflareUploader) upload(ctx context.Context, writeBody func(*multipart.Writer) error) (*UploadResult, error) {
	if u.config.AccountID == "" || u.config.APIToken == "" {
		return nil, apperrors.ErrUploadNotConfigured
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writeBody(writer); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.WriteField("requireSignedURLs", "false"); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	endpoint := fmt.Sprintf("https://api.cloudflare.com/client/v4/accounts/%s/images/v1", u.config.AccountID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+u.config.APIToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload response: %w", err)
	}

	var result UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}

	if !result.Success || result.Result == nil {
		u.logger.Error().Interface("errors", result.Errors).Msg("Cloudflare Images upload failed")
		return nil, apperrors.ErrUploadFailed
	}

	return &result, nil
}

// ImageURL returns the delivery URL for an uploaded image: the first variant
// when Cloudflare reports any, otherwise the constructed public variant.
func (u *CloudflareUploader) ImageURL(result *UploadResult) string {
	if result.Result == nil {
		return ""
	}
	if len(result.Result.Variants) > 0 {
		return result.Result.Variants[0]
	}
	return fmt.Sprintf("https://imagedelivery.net/%s/%s/public", u.config.AccountID, result.Result.ID)
}
