// Package tags implements the placeholder substitution applied to email
// subjects and bodies at send time. Four tokens are recognized:
//
//	[isim]    recipient first name
//	[soyisim] recipient last name
//	[email]   recipient email address
//	[metin]   free-form text shared by the whole dispatch
//
// Replacement is global; a token whose value is absent is replaced with the
// empty string, never left literal.
package tags

import "strings"

// Tag tokens as they appear literally in template subject/content strings.
const (
	TagFirstName  = "[isim]"
	TagLastName   = "[soyisim]"
	TagEmail      = "[email]"
	TagCustomText = "[metin]"
)

// Values is the per-recipient bag of substitution values.
type Values struct {
	FirstName  string
	LastName   string
	Email      string
	CustomText string
}

// Replace substitutes every occurrence of each recognized tag in s with the
// corresponding value, one sequential pass per tag in the order below. The
// order only matters when a value itself contains a tag token: a token for a
// later tag in the chain is substituted within the same call, one for an
// earlier tag stays literal. With tag-free values the function is
// idempotent.
func Replace(s string, v Values) string {
	s = strings.ReplaceAll(s, TagFirstName, v.FirstName)
	s = strings.ReplaceAll(s, TagLastName, v.LastName)
	s = strings.ReplaceAll(s, TagEmail, v.Email)
	s = strings.ReplaceAll(s, TagCustomText, v.CustomText)
	return s
}
