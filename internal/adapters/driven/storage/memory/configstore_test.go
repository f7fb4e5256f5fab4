package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_TypedGetters(t *testing.T) {
	s := NewConfigStore()
	require.NoError(t, s.Set("a.string", "value"))
	require.NoError(t, s.Set("a.int", int64(7)))
	require.NoError(t, s.Set("a.float", float64(3)))
	require.NoError(t, s.Set("a.bool", true))

	assert.Equal(t, "value", s.GetString("a.string"))
	assert.Equal(t, 7, s.GetInt("a.int"))
	assert.Equal(t, 3, s.GetInt("a.float"))
	assert.True(t, s.GetBool("a.bool"))

	assert.Empty(t, s.GetString("missing"))
	assert.Zero(t, s.GetInt("a.string"))
	assert.False(t, s.GetBool("a.int"))
}

func TestConfigStore_Keys(t *testing.T) {
	s := NewConfigStore()
	_ = s.Set("b", 1)
	_ = s.Set("a", 2)

	assert.Equal(t, []string{"a", "b"}, s.Keys())
}

func TestConfigStore_Save(t *testing.T) {
	s := NewConfigStore()

	require.NoError(t, s.Save())
	assert.Equal(t, 1, s.Saves())

	s.FailSaves(errors.New("disk full"))
	assert.Error(t, s.Save())
	assert.Equal(t, 1, s.Saves())
	assert.Empty(t, s.Path())
	assert.NoError(t, s.Load())
}
