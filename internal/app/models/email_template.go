package models

// EmailTemplate defines the reusable message shape based on the
// 'email_templates' table. Subject and content may carry placeholder tags
// that are substituted per recipient at send time.
type EmailTemplate struct {
	ID        int64  `json:"id" db:"id" example:"1"`
	Name      string `json:"name" db:"name" example:"Hoşgeldin"`
	Subject   string `json:"subject" db:"subject" example:"Merhaba [isim]"`
	Content   string `json:"content" db:"content"`
	CreatedAt string `json:"created_at" db:"created_at" example:"2024-01-01 10:00:00"`
	UpdatedAt string `json:"updated_at" db:"updated_at" example:"2024-01-02 15:30:00"`
}
