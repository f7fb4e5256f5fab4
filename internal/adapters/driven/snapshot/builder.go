package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

var errNotObject = errors.New("expected an object")

// Sections holds the raw JSON of one video's sections. Nil or "null"
// sections are treated as absent.
type Sections struct {
	Metadata        []byte
	CreativeInsight []byte
	CustomInfo      []byte
}

// Builder accumulates decoded records and the load report.
type Builder struct {
	snapshot domain.Snapshot
}

// NewBuilder starts a snapshot read from source.
func NewBuilder(source string) *Builder {
	return &Builder{snapshot: domain.Snapshot{Report: domain.LoadReport{Source: source}}}
}

// Add decodes one video. Malformed sections and fields fall back to defaults
// and mark the record degraded.
func (b *Builder) Add(id string, s Sections) {
	report := &b.snapshot.Report
	report.Total++

	rec := domain.VideoRecord{ID: id}
	degraded := false
	fail := func(section string, err error) {
		degraded = true
		report.Problems = append(report.Problems, domain.RecordProblem{
			VideoID: id,
			Reason:  fmt.Sprintf("%s: %v", section, err),
		})
	}

	for _, err := range decodeMetadata(s.Metadata, &rec) {
		fail(SectionMetadata, err)
	}
	for _, err := range decodeInsight(s.CreativeInsight, &rec) {
		fail(SectionCreativeInsight, err)
	}
	for _, err := range decodeCustomInfo(s.CustomInfo, &rec) {
		fail(SectionCustomInfo, err)
	}

	if degraded {
		report.Degraded++
	}
	report.Loaded++
	b.snapshot.Records = append(b.snapshot.Records, rec)
}

// Skip records a video that could not be decoded at all.
func (b *Builder) Skip(id, reason string) {
	report := &b.snapshot.Report
	report.Total++
	report.Skipped++
	report.Problems = append(report.Problems, domain.RecordProblem{VideoID: id, Reason: reason})
}

// Snapshot returns the accumulated snapshot.
func (b *Builder) Snapshot() *domain.Snapshot {
	snap := b.snapshot
	return &snap
}

// Sections are decoded field by field: a malformed field is left at its
// zero value and reported, and the remaining fields are kept.

func decodeMetadata(raw []byte, rec *domain.VideoRecord) []error {
	f, err := newFields(raw)
	if f == nil {
		return err
	}
	rec.Title = field[string](f, "title")
	rec.ChannelTitle = field[string](f, "channel_title")
	rec.Description = field[string](f, "description")
	rec.Tags = cleanList(field[[]string](f, "tags"))
	rec.ViewCount = int64(field[flexCount](f, "view_count"))
	rec.LikeCount = int64(field[flexCount](f, "like_count"))
	rec.CommentCount = int64(field[flexCount](f, "comment_count"))
	return f.errs
}

func decodeInsight(raw []byte, rec *domain.VideoRecord) []error {
	f, err := newFields(raw)
	if f == nil {
		return err
	}
	insight := &domain.CreativeInsight{Themes: cleanList(field[[]string](f, "themes"))}
	creators := field[[]wireCreator](f, "creators")
	names := make([]string, 0, len(creators))
	for _, c := range creators {
		names = append(names, c.Name)
	}
	insight.Creators = cleanList(names)
	rec.Insight = insight
	return f.errs
}

func decodeCustomInfo(raw []byte, rec *domain.VideoRecord) []error {
	f, err := newFields(raw)
	if f == nil {
		return err
	}
	rec.Override = &domain.CustomOverride{
		ManualTitle:            field[string](f, "manual_title"),
		ManualArtist:           field[string](f, "manual_artist"),
		JapanesePronunciations: cleanList(field[[]string](f, "japanese_pronunciations")),
		ArtistPronunciations:   cleanList(field[[]string](f, "artist_pronunciations")),
		SearchKeywords:         cleanList(field[[]string](f, "search_keywords")),
		LastEdited:             field[string](f, "last_edited"),
		EditCount:              field[int](f, "edit_count"),
	}
	return f.errs
}

// fields holds one section's raw fields and the errors met decoding them.
type fields struct {
	raw  map[string]json.RawMessage
	errs []error
}

// newFields splits a section into raw fields. It returns nil fields when
// the section is absent (no errors) or is not a JSON object (one error).
func newFields(raw []byte) (*fields, []error) {
	if isAbsent(raw) {
		return nil, nil
	}
	if !isObject(raw) {
		return nil, []error{errNotObject}
	}
	f := &fields{}
	if err := json.Unmarshal(raw, &f.raw); err != nil {
		return nil, []error{err}
	}
	return f, nil
}

// field decodes one named field. Missing or null fields yield the zero value
// silently; malformed fields yield the zero value and record an error.
func field[T any](f *fields, name string) T {
	var v T
	raw, ok := f.raw[name]
	if !ok || isAbsent(raw) {
		return v
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		f.errs = append(f.errs, fmt.Errorf("%s: %w", name, err))
		var zero T
		return zero
	}
	return v
}
