package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hibiki-labs/kioku/internal/adapters/driven/snapshot"
	"github.com/hibiki-labs/kioku/internal/core/domain"
	"github.com/hibiki-labs/kioku/internal/core/ports/driven"
)

// videoSource implements driven.SnapshotSource over the videos table.
type videoSource struct {
	store *Store
}

var _ driven.SnapshotSource = (*videoSource)(nil)

// Load reads every video. Rows with malformed sections are reported, not fatal.
func (v *videoSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	rows, err := v.store.db.QueryContext(ctx, `
		SELECT video_id, metadata, creative_insight, custom_info
		FROM videos ORDER BY video_id
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying videos: %w", domain.ErrSnapshotUnavailable, err)
	}
	defer rows.Close()

	b := snapshot.NewBuilder(v.store.path)
	for rows.Next() {
		var id string
		var metadata, insight, custom sql.NullString
		if err := rows.Scan(&id, &metadata, &insight, &custom); err != nil {
			return nil, fmt.Errorf("scanning video: %w", err)
		}
		b.Add(id, snapshot.Sections{
			Metadata:        nullBytes(metadata),
			CreativeInsight: nullBytes(insight),
			CustomInfo:      nullBytes(custom),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating videos: %w", err)
	}

	return b.Snapshot(), nil
}

// Describe returns the database path.
func (v *videoSource) Describe() string {
	return v.store.path
}

// Import upserts records in a single transaction and returns how many were written.
func (s *Store) Import(ctx context.Context, records []domain.VideoRecord) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO videos (video_id, metadata, creative_insight, custom_info, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(video_id) DO UPDATE SET
			metadata = excluded.metadata,
			creative_insight = excluded.creative_insight,
			custom_info = excluded.custom_info,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing import: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if rec.ID == "" {
			return 0, fmt.Errorf("importing video: %w: empty video id", domain.ErrInvalidInput)
		}
		sections, err := snapshot.EncodeSections(rec)
		if err != nil {
			return 0, fmt.Errorf("encoding video %s: %w", rec.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, rec.ID,
			nullText(sections.Metadata), nullText(sections.CreativeInsight), nullText(sections.CustomInfo),
		); err != nil {
			return 0, fmt.Errorf("importing video %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return len(records), nil
}

// Count returns the number of stored videos.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM videos").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting videos: %w", err)
	}
	return n, nil
}

func nullBytes(ns sql.NullString) []byte {
	if !ns.Valid {
		return nil
	}
	return []byte(ns.String)
}

func nullText(b []byte) sql.NullString {
	if b == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}
