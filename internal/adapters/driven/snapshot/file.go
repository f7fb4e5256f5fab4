package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/hibiki-labs/kioku/internal/core/domain"
	"github.com/hibiki-labs/kioku/internal/core/ports/driven"
)

// Ensure FileSource implements the interface.
var _ driven.SnapshotSource = (*FileSource)(nil)

// FileSource reads a JSON snapshot from a file.
type FileSource struct {
	fs   afero.Fs
	path string
}

// NewFileSource creates a source reading path from the OS filesystem.
func NewFileSource(path string) *FileSource {
	return NewFileSourceFs(afero.NewOsFs(), path)
}

// NewFileSourceFs creates a source reading path from fsys.
func NewFileSourceFs(fsys afero.Fs, path string) *FileSource {
	return &FileSource{fs: fsys, path: path}
}

// Load reads and decodes the snapshot file.
func (s *FileSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", domain.ErrSnapshotUnavailable, s.path)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSnapshotUnavailable, err)
	}
	return Decode(data, s.path)
}

// Save writes records as a snapshot document, replacing the file atomically.
func (s *FileSource) Save(records []domain.VideoRecord) error {
	data, err := Encode(records)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Describe returns the file path.
func (s *FileSource) Describe() string {
	return s.path
}

// Path returns the file path.
func (s *FileSource) Path() string {
	return s.path
}
