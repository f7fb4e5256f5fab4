package title

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

// Extract computes everything the search engine needs from one raw title.
func Extract(raw string) domain.SearchTerms {
	return domain.SearchTerms{
		NormalisedTitle: Normalise(raw),
		MainTitle:       MainTitle(raw),
		Candidates:      SearchableTerms(raw),
	}
}

// SearchableTerms returns the keywords a title can be found by, in
// first-seen order without duplicates or empty strings:
//
//  1. the normalised title
//  2. the most prominent bracketed segment, or the text before the first bracket
//  3. every katakana run of two or more characters
//  4. every ASCII word of two or more characters
func SearchableTerms(raw string) []string {
	var set termSet
	set.add(Normalise(raw))
	set.add(prominentSegment(raw))
	for _, run := range katakanaRun.FindAllString(raw, -1) {
		if strings.Trim(run, "ー") != "" {
			set.add(run)
		}
	}
	for _, word := range asciiWord.FindAllString(raw, -1) {
		set.add(word)
	}
	return set.items
}

// prominentSegment returns the contents of the first 『…』, else 「…」,
// else 【…】, else the text before the first opening bracket.
func prominentSegment(raw string) string {
	for _, re := range []*regexp.Regexp{doubleQuoted, cornerQuoted, lenticular} {
		if m := re.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	if i := strings.IndexAny(raw, "【[（("); i > 0 {
		return raw[:i]
	}
	return ""
}

type termSet struct {
	items []string
	seen  map[string]bool
}

func (t *termSet) add(term string) {
	term = collapse(term)
	if term == "" || t.seen[term] {
		return
	}
	if t.seen == nil {
		t.seen = make(map[string]bool)
	}
	t.seen[term] = true
	t.items = append(t.items, term)
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}
