package validation

import "strings"

// htmlReplacer escapes the HTML-significant characters in free text.
// The ampersand is deliberately left alone, which means the function is not
// idempotent: re-sanitizing already-escaped text double-escapes it. Callers
// must sanitize exactly once, on the way in.
var htmlReplacer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// SanitizeText escapes HTML-significant characters and trims surrounding
// whitespace. Used for free-text fields (address, medical history, notes)
// before storage.
func SanitizeText(text string) string {
	if text == "" {
		return text
	}
	return strings.TrimSpace(htmlReplacer.Replace(text))
}
