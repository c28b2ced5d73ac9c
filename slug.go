package sitemeta

import (
	"strings"
	"unicode"
)

// Slugify derives a URL-safe slug from a title. It lowercases, replaces
// whitespace runs with single hyphens, and drops everything that is not a
// letter or digit. Used by catalog loaders when a blog post declares no slug
// of its own.
func Slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '_' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
