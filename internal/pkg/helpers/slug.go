package helpers

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces       = regexp.MustCompile(`\s+`)
	slugHyphens      = regexp.MustCompile(`-+`)
)

// turkishSlugReplacer maps Turkish letters to their ASCII equivalents before
// lowercasing. Dotted capital İ lowercases to "i̇" otherwise, which is why it
// is mapped explicitly.
var turkishSlugReplacer = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

// GenerateSlug derives a URL slug from a title. Turkish characters are
// transliterated, everything outside [a-z0-9 -] is dropped, whitespace runs
// become single hyphens, and repeated or dangling hyphens are collapsed.
func GenerateSlug(title string) string {
	slug := turkishSlugReplacer.Replace(title)
	slug = strings.ToLower(slug)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	slug = slugSpaces.ReplaceAllString(slug, "-")
	slug = slugHyphens.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
