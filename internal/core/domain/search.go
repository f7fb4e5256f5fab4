package domain

// DefaultSearchLimit is the number of results returned when no limit is given.
const DefaultSearchLimit = 5

// Unlimited requests every matching result.
const Unlimited = -1

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results.
	// Zero selects the configured default; a negative value returns all matches.
	Limit int
}

// SearchResult represents a single search hit.
type SearchResult struct {
	// VideoID is the matched video.
	VideoID string

	// Score is the sum of all triggered signal points. Always positive.
	Score int

	// MatchedTerms lists the searchable terms that contributed, for explainability.
	MatchedTerms []string

	// Video is the matched record.
	Video VideoRecord
}

// SearchTerms are the comparison strings derived from a raw title.
// They are a pure function of the title and are never persisted.
type SearchTerms struct {
	// NormalisedTitle is the title with decorative markup removed.
	NormalisedTitle string

	// MainTitle is the best guess at the song or video name.
	MainTitle string

	// Candidates are the deduplicated searchable terms, in extraction order.
	Candidates []string
}

// VideoDetail is a record together with the terms derived from its title.
type VideoDetail struct {
	Video VideoRecord
	Terms SearchTerms
}
