package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxIDBytes bounds record ids so they always fit inside a navigation token
const MaxIDBytes = 48

var slugPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Slug derives a record id from a display name: lower-cased, every run of
// non letter/digit characters collapsed to a single hyphen, trimmed of
// hyphens and capped at MaxIDBytes on a rune boundary.
func Slug(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxIDBytes {
		cut := MaxIDBytes
		for cut > 0 && !utf8.RuneStart(slug[cut]) {
			cut--
		}
		slug = strings.TrimRight(slug[:cut], "-")
	}

	return slug
}

// TokenSafe reports whether an explicit id can travel in a navigation token
// as written: non-empty, at most MaxIDBytes, no separators or spaces.
func TokenSafe(id string) bool {
	if id == "" || len(id) > MaxIDBytes || !utf8.ValidString(id) {
		return false
	}
	return !strings.ContainsFunc(id, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r) || unicode.IsControl(r)
	})
}
