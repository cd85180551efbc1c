package module

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeTitle converts a free-text title into a file-name stem: the title
// is case-folded, every run of characters that are not Unicode letters or
// digits collapses into a single hyphen, and leading/trailing separators are
// stripped. The result is stable under repeated normalization.
//
// Unicode letters pass through unchanged apart from case folding; no
// transliteration is applied.
func NormalizeTitle(title string) string {
	folded := cases.Lower(language.Und).String(title)

	var b strings.Builder
	b.Grow(len(folded))
	pending := false // a separator run waits until the next word starts
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
