package app

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UuidToString converts a pgtype.UUID to its string representation.
func UuidToString(u pgtype.UUID) string {
	return uuid.UUID(u.Bytes).String()
}

// Slugify lowercases a name and replaces every run of non-alphanumeric
// characters with a single hyphen: "Bowl-O-Rama Lanes" -> "bowl-o-rama-lanes".
// City and state route parameters are compared in slug form, so
// "/states/ca/cities/san-francisco" finds venues stored as "San Francisco".
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}

var titleCaser = cases.Title(language.AmericanEnglish)

// DisplayName turns a slug back into a human-readable name:
// "san-francisco" -> "San Francisco".
func DisplayName(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}
