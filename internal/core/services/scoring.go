package services

import (
	"strings"
	"unicode/utf8"

	"github.com/hibiki-labs/kioku/internal/core/corpus"
	"github.com/hibiki-labs/kioku/internal/normalisers/title"
)

// Signal points. Override and pronunciation signals outrank anything the
// raw title alone can produce for a single-word query.
const (
	pointsManualTitleExact     = 50
	pointsManualTitlePartial   = 30
	pointsManualArtistExact    = 40
	pointsManualArtistPartial  = 25
	pointsTitleReadingExact    = 50
	pointsTitleReadingPartial  = 25
	pointsArtistReadingExact   = 45
	pointsArtistReadingPartial = 22
	pointsKeywordExact         = 35
	pointsKeywordPartial       = 15
	pointsTermExact            = 20
	pointsQueryInTerm          = 15
	pointsTermInQuery          = 12
	pointsRawTitle             = 10
	pointsChannel              = 8
	pointsCreator              = 9
	pointsDescription          = 3

	pointsTokenInTerm    = 6
	pointsTokenInTitle   = 5
	pointsTokenInChannel = 4
	pointsTokenInCreator = 4
)

// minTokenRunes is the shortest query token the token pass considers.
const minTokenRunes = 2

// preparedQuery is a folded query split into tokens, built once per search.
type preparedQuery struct {
	text   string
	tokens []string
}

func prepareQuery(raw string) preparedQuery {
	text := title.Fold(strings.TrimSpace(raw))
	q := preparedQuery{text: text}
	for _, tok := range strings.Fields(text) {
		if utf8.RuneCountInString(tok) >= minTokenRunes {
			q.tokens = append(q.tokens, tok)
		}
	}
	return q
}

// Score rates how well one corpus entry matches a query and lists the
// searchable terms that matched. Signals are independent and summed; each
// list-valued signal contributes at most once.
func Score(query string, entry *corpus.Entry) (int, []string) {
	return scoreEntry(prepareQuery(query), entry)
}

func scoreEntry(q preparedQuery, entry *corpus.Entry) (int, []string) {
	if q.text == "" || entry == nil {
		return 0, nil
	}
	f := &entry.Folded
	score := 0

	score += matchString(q.text, f.ManualTitle, pointsManualTitleExact, pointsManualTitlePartial)
	score += matchString(q.text, f.ManualArtist, pointsManualArtistExact, pointsManualArtistPartial)
	score += matchList(q.text, f.TitleReadings, pointsTitleReadingExact, pointsTitleReadingPartial)
	score += matchList(q.text, f.ArtistReadings, pointsArtistReadingExact, pointsArtistReadingPartial)
	score += matchList(q.text, f.Keywords, pointsKeywordExact, pointsKeywordPartial)

	matched := make([]bool, len(f.Terms))
	score += matchTerms(q.text, f.Terms, matched)

	if contains(f.Title, q.text) {
		score += pointsRawTitle
	}
	if contains(f.Channel, q.text) {
		score += pointsChannel
	}
	if anyContains(f.Creators, q.text) {
		score += pointsCreator
	}
	if contains(f.Description, q.text) {
		score += pointsDescription
	}

	for _, tok := range q.tokens {
		if markContaining(f.Terms, tok, matched) {
			score += pointsTokenInTerm
		}
		if contains(f.Title, tok) {
			score += pointsTokenInTitle
		}
		if contains(f.Channel, tok) {
			score += pointsTokenInChannel
		}
		if anyContains(f.Creators, tok) {
			score += pointsTokenInCreator
		}
	}

	return score, matchedTerms(entry.Terms.Candidates, matched)
}

// matchString scores an exact or either-direction substring match.
func matchString(query, value string, exact, partial int) int {
	switch {
	case value == "":
		return 0
	case value == query:
		return exact
	case strings.Contains(value, query) || strings.Contains(query, value):
		return partial
	default:
		return 0
	}
}

// matchList scores the best match among values; exact beats partial.
func matchList(query string, values []string, exact, partial int) int {
	best := 0
	for _, v := range values {
		if p := matchString(query, v, exact, partial); p > best {
			best = p
			if best == exact {
				break
			}
		}
	}
	return best
}

// matchTerms scores the best relation between the query and any searchable
// term and marks every term with any relation.
func matchTerms(query string, terms []string, matched []bool) int {
	best := 0
	for i, term := range terms {
		p := 0
		switch {
		case term == "":
		case term == query:
			p = pointsTermExact
		case strings.Contains(term, query):
			p = pointsQueryInTerm
		case strings.Contains(query, term):
			p = pointsTermInQuery
		}
		if p > 0 {
			matched[i] = true
			best = max(best, p)
		}
	}
	return best
}

// markContaining marks every term containing tok and reports whether any did.
func markContaining(terms []string, tok string, matched []bool) bool {
	found := false
	for i, term := range terms {
		if strings.Contains(term, tok) {
			matched[i] = true
			found = true
		}
	}
	return found
}

func matchedTerms(candidates []string, matched []bool) []string {
	var out []string
	for i, ok := range matched {
		if ok {
			out = append(out, candidates[i])
		}
	}
	return out
}

// contains reports whether a non-empty value contains sub.
func contains(value, sub string) bool {
	return value != "" && strings.Contains(value, sub)
}

func anyContains(values []string, sub string) bool {
	for _, v := range values {
		if contains(v, sub) {
			return true
		}
	}
	return false
}
