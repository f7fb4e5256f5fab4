package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewMenu, "menu"},
		{ViewSearch, "search"},
		{ViewVideo, "video"},
		{ViewCorpus, "corpus"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewType_Distinct(t *testing.T) {
	seen := map[ViewType]bool{}
	for _, v := range []ViewType{ViewMenu, ViewSearch, ViewVideo, ViewCorpus, ViewHelp} {
		assert.False(t, seen[v], "duplicate view %s", v)
		seen[v] = true
	}
}
