package models

// User defines the user model based on the legacy 'users' table. The admin
// panel only reads users; accounts are created by the consumer platform.
type User struct {
	ID         int64   `json:"id" db:"id" example:"1"`                              // Unique identifier for the user
	Username   string  `json:"username" db:"username" example:"berkc"`              // Login name
	Password   string  `json:"-" db:"password"`                                     // SHA1 hex digest (excluded from JSON)
	Name       string  `json:"name" db:"name" example:"Berk"`                       // First name
	Lastname   *string `json:"lastname,omitempty" db:"lastname" example:"Can"`      // Last name (nullable)
	Email      string  `json:"email" db:"email" example:"berk@beartshare.com"`      // Email address, required for email dispatch
	Mobile     *string `json:"mobile,omitempty" db:"mobile" example:"05321234567"`  // Mobile phone, required for SMS dispatch (nullable)
	Admin      int     `json:"admin" db:"admin" example:"0"`                        // Admin flag stored as 0/1
	Level      int     `json:"level" db:"level" example:"1"`                        // Loyalty level
	MailVerify int     `json:"mail_verify" db:"mail_verify" example:"1"`            // Email verification flag stored as 0/1
	CreatedAt  string  `json:"created_at" db:"created_at" example:"2024-01-01 10:00:00"` // Creation timestamp in the legacy string format
}

// IsAdmin reports whether the legacy integer flag marks the user as admin.
func (u *User) IsAdmin() bool {
	return u.Admin == 1
}

// LastnameOrEmpty unwraps the nullable lastname for tag substitution.
func (u *User) LastnameOrEmpty() string {
	if u.Lastname == nil {
		return ""
	}
	return *u.Lastname
}

// HasMobile reports whether the user has a usable phone value.
func (u *User) HasMobile() bool {
	return u.Mobile != nil && *u.Mobile != ""
}
