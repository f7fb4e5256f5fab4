package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_PrintsVideo(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("show", "trinity01")

	require.NoError(t, err)
	assert.Contains(t, out, "ID:       trinity01")
	assert.Contains(t, out, trinityTitle)
	assert.Contains(t, out, "[Manual]")
	assert.Contains(t, out, "Artist: TRiNITY")
	assert.Contains(t, out, "トリニティ")
	assert.Contains(t, out, "[Terms]")
	assert.Contains(t, out, "Main title: XOXO")
	assert.Contains(t, out, "watch?v=trinity01")
}

func TestShowCmd_PrintsCreators(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("show", "yoru01")

	require.NoError(t, err)
	assert.Contains(t, out, "[Creators]")
	assert.Contains(t, out, "ikura")
	assert.NotContains(t, out, "[Manual]")
}

func TestShowCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("show", "missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "video not found: missing")
}

func TestShowCmd_RequiresOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}
