package title

import (
	"strings"
)

// mainTitleMaxRunes bounds the fallback main title.
const mainTitleMaxRunes = 20

// mainTitleStrategies are tried in order; the first non-empty answer wins.
var mainTitleStrategies = []func(string) string{
	fromDoubleQuotes,
	fromCornerQuotes,
	fromLenticular,
	beforeBoundary,
	firstDistinctivePhrase,
	leadingToken,
}

// MainTitle guesses the song or video name inside a raw title.
func MainTitle(raw string) string {
	for _, strategy := range mainTitleStrategies {
		if t := collapse(strategy(raw)); t != "" {
			return t
		}
	}
	return truncateRunes(Normalise(raw), mainTitleMaxRunes)
}

func fromDoubleQuotes(raw string) string {
	return firstGroup(doubleQuoted.FindStringSubmatch(raw))
}

func fromCornerQuotes(raw string) string {
	return firstGroup(cornerQuoted.FindStringSubmatch(raw))
}

// fromLenticular accepts 【…】 contents unless they describe the upload
// (cover, MV, original) rather than name it.
func fromLenticular(raw string) string {
	inner := firstGroup(lenticular.FindStringSubmatch(raw))
	if inner == "" || containsSuffixWord(inner) {
		return ""
	}
	return inner
}

// beforeBoundary takes the text before "Music Video", "MV", " - " or "／".
func beforeBoundary(raw string) string {
	s := decorativeBrackets.ReplaceAllString(raw, " ")
	loc := titleBoundary.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	prefix := stripArtistMarker(s[:loc[0]])
	if officialWord.MatchString(prefix) {
		return ""
	}
	return collapse(prefix)
}

// firstDistinctivePhrase returns the first ASCII phrase or katakana run
// that is not made up of generic words only.
func firstDistinctivePhrase(raw string) string {
	for _, p := range phrase.FindAllString(raw, -1) {
		if len([]rune(p)) < 2 || isGeneric(p) {
			continue
		}
		return p
	}
	return ""
}

// leadingToken returns the first non-generic token once a leading 【…】
// block and artist markers are gone.
func leadingToken(raw string) string {
	s := leadingLenticular.ReplaceAllString(raw, "")
	s = stripArtistMarker(s)
	for _, field := range strings.Fields(s) {
		if !isGeneric(field) {
			return field
		}
	}
	return ""
}

func firstGroup(m []string) string {
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func containsSuffixWord(s string) bool {
	folded := Fold(s)
	for _, w := range suffixWords {
		if strings.Contains(folded, w) {
			return true
		}
	}
	return false
}

func isGeneric(p string) bool {
	for _, w := range strings.FieldsFunc(Fold(p), func(r rune) bool {
		return r == ' ' || r == '\'' || r == '&' || r == '.' || r == '-'
	}) {
		if !genericWords[w] {
			return false
		}
	}
	return true
}
