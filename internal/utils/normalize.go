package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TitleKey reduces a title to its dedup identity: trimmed, lower-cased, with
// accents and diacritics folded away. Two articles with equal keys are the
// same logical item.
func TitleKey(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
