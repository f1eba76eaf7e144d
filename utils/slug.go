package utils

import "strings"

// Slugify derives a URL-safe identifier from a display name: case-fold,
// trim, transliterate Cyrillic, then collapse every run of characters
// outside [a-z0-9] into a single hyphen with no hyphen at either edge.
//
// The result matches ^[a-z0-9]+(-[a-z0-9]+)*$ or is empty, and the
// function is idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(input string) string {
	var translit strings.Builder
	for _, r := range strings.TrimSpace(strings.ToLower(input)) {
		translit.WriteString(Transliterate(r))
	}

	var slug strings.Builder
	pendingHyphen := false
	for _, r := range translit.String() {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && slug.Len() > 0 {
				slug.WriteByte('-')
			}
			pendingHyphen = false
			slug.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}
	return slug.String()
}
