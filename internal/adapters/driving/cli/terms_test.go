package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermsCmd_Table(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("terms", trinityTitle)

	require.NoError(t, err)
	assert.Contains(t, out, "Normalised: TRiNITY XOXO")
	assert.Contains(t, out, "Main title: XOXO")
	assert.Contains(t, out, "    - TRiNITY")
}

func TestTermsCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("terms", "--json", trinityTitle)

	require.NoError(t, err)
	var got struct {
		NormalisedTitle string   `json:"normalised_title"`
		MainTitle       string   `json:"main_title"`
		SearchableTerms []string `json:"searchable_terms"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "TRiNITY XOXO", got.NormalisedTitle)
	assert.Equal(t, "XOXO", got.MainTitle)
	assert.Contains(t, got.SearchableTerms, "ホロライブ")
}
