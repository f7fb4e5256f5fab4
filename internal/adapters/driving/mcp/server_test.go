package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("all ports creates server", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
			Corpus: &mockCorpusService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestInstructions(t *testing.T) {
	t.Run("search only", func(t *testing.T) {
		text := instructions(&Ports{Search: &mockSearchService{}})
		assert.Contains(t, text, "search_videos")
		assert.NotContains(t, text, "reload_corpus")
	})

	t.Run("with corpus", func(t *testing.T) {
		text := instructions(&Ports{Search: &mockSearchService{}, Corpus: &mockCorpusService{}})
		assert.Contains(t, text, "get_video")
		assert.Contains(t, text, "corpus_stats")
		assert.Contains(t, text, "reload_corpus")
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil search service returns error", func(t *testing.T) {
		ports := &Ports{Corpus: &mockCorpusService{}}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("search only is valid", func(t *testing.T) {
		ports := &Ports{
			Search: &mockSearchService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}
