package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingSearchService.Error(), ErrMissingCorpusService.Error())
	assert.Contains(t, ErrMissingSearchService.Error(), "search service")
	assert.Contains(t, ErrMissingCorpusService.Error(), "corpus service")
}
