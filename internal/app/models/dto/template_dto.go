package dto

// CreateEmailTemplateRequest is the template create payload
type CreateEmailTemplateRequest struct {
	Name    string `json:"name" binding:"required" example:"Hoşgeldin"`
	Subject string `json:"subject" binding:"required" example:"Merhaba [isim]"`
	Content string `json:"content" binding:"required"`
}

// UpdateEmailTemplateRequest is the template update payload; nil fields are
// left untouched
type UpdateEmailTemplateRequest struct {
	Name    *string `json:"name"`
	Subject *string `json:"subject"`
	Content *string `json:"content"`
}
