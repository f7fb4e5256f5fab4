package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

func TestSnapshotSource_Load(t *testing.T) {
	src := NewSnapshotSource(domain.VideoRecord{ID: "a"}, domain.VideoRecord{ID: "b"})

	snap, err := src.Load(context.Background())

	require.NoError(t, err)
	assert.Len(t, snap.Records, 2)
	assert.Equal(t, 2, snap.Report.Loaded)
	assert.Equal(t, "memory", src.Describe())
	assert.Equal(t, 1, src.Loads())
}

func TestSnapshotSource_LoadReturnsCopy(t *testing.T) {
	src := NewSnapshotSource(domain.VideoRecord{ID: "a"})

	snap, err := src.Load(context.Background())
	require.NoError(t, err)
	snap.Records[0].ID = "changed"

	again, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", again.Records[0].ID)
}

func TestSnapshotSource_Error(t *testing.T) {
	src := NewSnapshotSource()
	src.SetError(errors.New("boom"))

	_, err := src.Load(context.Background())
	assert.EqualError(t, err, "boom")

	src.SetRecords(domain.VideoRecord{ID: "a"})
	_, err = src.Load(context.Background())
	assert.NoError(t, err)
}

func TestSnapshotSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSnapshotSource().Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
