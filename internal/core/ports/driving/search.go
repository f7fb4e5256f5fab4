package driving

import (
	"context"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search ranks the corpus against a free-text query.
	// An empty or whitespace-only query returns no results and no error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
