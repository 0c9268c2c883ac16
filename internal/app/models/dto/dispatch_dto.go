package dto

// SendEmailRequest is the bulk email dispatch payload. Either a raw
// subject/message pair or a template id must be supplied; when a template id
// is present it overrides the raw pair.
type SendEmailRequest struct {
	UserIDs    []int64 `json:"userIds" binding:"required" example:"1,2"`
	Subject    string  `json:"subject" example:"Merhaba [isim]"`
	Message    string  `json:"message"`
	TemplateID *int64  `json:"templateId" example:"3"`
	CustomText string  `json:"customText" example:"Kampanya detayları"`
}

// SendSMSRequest is the bulk SMS dispatch payload
type SendSMSRequest struct {
	UserIDs []int64 `json:"userIds" binding:"required" example:"1,2"`
	Message string  `json:"message" binding:"required"`
}

// RecipientResult records the outcome of one recipient's send inside a bulk
// email dispatch.
type RecipientResult struct {
	UserID int64  `json:"userId" example:"1"`
	Email  string `json:"email" example:"berk@beartshare.com"`
	Sent   bool   `json:"sent" example:"true"`
	Error  string `json:"error,omitempty"`
}

// SendEmailResponse is the itemized bulk email dispatch result
type SendEmailResponse struct {
	Success   bool              `json:"success" example:"true"`
	SentCount int               `json:"sentCount" example:"2"`
	Results   []RecipientResult `json:"results"`
}

// SendSMSResponse is the bulk SMS dispatch result; Result carries the raw
// gateway acknowledgement
type SendSMSResponse struct {
	Success   bool   `json:"success" example:"true"`
	SentCount int    `json:"sentCount" example:"2"`
	Result    string `json:"result"`
}
