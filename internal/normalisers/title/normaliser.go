package title

import (
	"strings"
)

// Normalise removes decorative markup from a raw title. The result is meant
// for substring and equality comparison, not for display, and may be empty
// when the title is nothing but markup.
//
// The rules are applied in passes until the title stops changing, so
// Normalise(Normalise(t)) == Normalise(t). Every rule match contains a
// non-space rune that the pass removes, so each changing pass has fewer
// non-space runes than the last and the loop ends.
func Normalise(raw string) string {
	s := collapse(raw)
	for {
		next := normaliseOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func normaliseOnce(s string) string {
	s = decorativeBrackets.ReplaceAllString(s, " ")
	s = promoTokens.ReplaceAllString(s, " ")
	s = truncate(s)
	s = foldArtistMarker(s)
	s = quoteBrackets.ReplaceAllString(s, " ")
	s = parentheses.ReplaceAllString(s, " ")
	s = delimiters.ReplaceAllString(s, " ")
	return collapse(s)
}

// truncate cuts s at the earliest truncation mark.
func truncate(s string) string {
	cut := -1
	for _, mark := range truncationMarks {
		if i := strings.Index(s, mark); i >= 0 && (cut < 0 || i < cut) {
			cut = i
		}
	}
	if cut < 0 {
		return s
	}
	return s[:cut]
}

// foldArtistMarker replaces ▽▲name▲▽ with name.
func foldArtistMarker(s string) string {
	return artistMarker.ReplaceAllString(s, " ${1} ")
}

// stripArtistMarker removes ▽▲name▲▽ entirely.
func stripArtistMarker(s string) string {
	return artistMarker.ReplaceAllString(s, " ")
}

// collapse turns every whitespace run (including U+3000) into one space and trims.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
