package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

func scored(pairs ...any) []domain.SearchResult {
	var out []domain.SearchResult
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, domain.SearchResult{VideoID: pairs[i].(string), Score: pairs[i+1].(int)})
	}
	return out
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name  string
		in    []domain.SearchResult
		limit int
		want  []string
	}{
		{"score descending", scored("a", 10, "b", 30, "c", 20), 5, []string{"b", "c", "a"}},
		{"zero scores dropped", scored("a", 0, "b", 5), 5, []string{"b"}},
		{"tie broken by id", scored("c", 10, "a", 10, "b", 10), 5, []string{"a", "b", "c"}},
		{"limit applied", scored("a", 1, "b", 2, "c", 3), 2, []string{"c", "b"}},
		{"zero limit keeps none", scored("a", 1), 0, []string{}},
		{"negative limit keeps all", scored("a", 1, "b", 2, "c", 3), domain.Unlimited, []string{"c", "b", "a"}},
		{"empty input", nil, 5, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resultIDs(Select(tt.in, tt.limit)))
		})
	}
}

func TestSelect_DoesNotModifyInput(t *testing.T) {
	in := scored("a", 1, "b", 2)

	Select(in, 5)

	assert.Equal(t, []string{"a", "b"}, resultIDs(in))
}

func TestSelect_TruncationLaw(t *testing.T) {
	in := scored("e", 3, "d", 5, "c", 3, "b", 9, "a", 1, "f", 5)
	all := Select(in, domain.Unlimited)

	for limit := 0; limit <= len(in); limit++ {
		assert.Equal(t, all[:limit], Select(in, limit), "limit %d", limit)
	}
}
