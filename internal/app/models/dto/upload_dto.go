package dto

// UploadImageResponse is returned for multipart file uploads. Both the
// single url (cover photo picker) and the variants list (editor) are
// included.
type UploadImageResponse struct {
	URL      string   `json:"url"`
	Success  bool     `json:"success" example:"true"`
	Variants []string `json:"variants"`
}

// UploadImageURLRequest asks the CDN to ingest an image from a source URL
type UploadImageURLRequest struct {
	URL string `json:"url" binding:"required" example:"https://example.com/cover.jpg"`
}

// UploadImageURLResponse is returned for URL-sourced uploads
type UploadImageURLResponse struct {
	Success  bool     `json:"success" example:"true"`
	ImageID  string   `json:"imageId"`
	Variants []string `json:"variants"`
}
