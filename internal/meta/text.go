package meta

import (
	"regexp"
	"strings"
	"unicode"
)

const ellipsis = "..."

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes anything that looks like a markup tag. Entities are left
// as they are.
func StripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

// Truncate shortens text to at most max runes plus an ellipsis. The cut backs
// off to the last whitespace so words are never split.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if max <= 0 || len(runes) <= max {
		return text
	}

	cut := runes[:max]
	if !unicode.IsSpace(runes[max]) {
		if i := lastSpace(cut); i > 0 {
			cut = cut[:i]
		}
	}

	return strings.TrimRightFunc(string(cut), unicode.IsSpace) + ellipsis
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return -1
}
