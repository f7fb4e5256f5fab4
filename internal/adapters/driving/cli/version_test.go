package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	old := version
	SetVersion("1.2.3")
	defer SetVersion(old)

	out, err := executeCommand("version")

	require.NoError(t, err)
	assert.Equal(t, "kioku version 1.2.3\n", out)
}
