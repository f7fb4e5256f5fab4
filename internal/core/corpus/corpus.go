package corpus

import (
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hibiki-labs/kioku/internal/core/domain"
	"github.com/hibiki-labs/kioku/internal/normalisers/title"
)

// Entry is one record with everything derived from it at build time.
type Entry struct {
	Record domain.VideoRecord
	Terms  domain.SearchTerms
	Folded Folded
}

// Folded holds the comparison forms of a record's text. Empty strings are
// kept as empty (they never match); empty list entries are dropped.
type Folded struct {
	Title          string
	Channel        string
	Description    string
	ManualTitle    string
	ManualArtist   string
	TitleReadings  []string
	ArtistReadings []string
	Keywords       []string
	Creators       []string

	// Terms is index-aligned with Entry.Terms.Candidates.
	Terms []string
}

// Corpus is an immutable set of entries ordered by video ID.
// It is safe for concurrent use by any number of readers.
type Corpus struct {
	generation string
	loadedAt   time.Time
	entries    []Entry
	index      map[string]int
	report     domain.LoadReport
}

// New builds a corpus from a snapshot. A nil snapshot yields an empty corpus.
// When two records share an ID the later one wins.
func New(snapshot *domain.Snapshot) *Corpus {
	c := &Corpus{
		generation: uuid.NewString(),
		loadedAt:   time.Now(),
		index:      make(map[string]int),
	}
	if snapshot == nil {
		return c
	}
	c.report = snapshot.Report

	byID := make(map[string]domain.VideoRecord, len(snapshot.Records))
	for _, rec := range snapshot.Records {
		if strings.TrimSpace(rec.ID) == "" {
			continue
		}
		byID[rec.ID] = rec
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	c.entries = make([]Entry, len(ids))
	for i, id := range ids {
		c.entries[i] = newEntry(byID[id])
		c.index[id] = i
	}
	return c
}

// Empty returns a corpus with no records.
func Empty() *Corpus {
	return New(nil)
}

func newEntry(rec domain.VideoRecord) Entry {
	terms := title.Extract(rec.Title)
	folded := Folded{
		Title:          title.Fold(rec.Title),
		Channel:        title.Fold(rec.ChannelTitle),
		Description:    title.Fold(rec.Description),
		ManualTitle:    title.Fold(strings.TrimSpace(rec.Override.Title())),
		ManualArtist:   title.Fold(strings.TrimSpace(rec.Override.Artist())),
		TitleReadings:  title.FoldAll(rec.Override.TitleReadings()),
		ArtistReadings: title.FoldAll(rec.Override.ArtistReadings()),
		Keywords:       title.FoldAll(rec.Override.Keywords()),
		Creators:       title.FoldAll(rec.CreatorNames()),
		Terms:          make([]string, len(terms.Candidates)),
	}
	for i, term := range terms.Candidates {
		folded.Terms[i] = title.Fold(term)
	}
	return Entry{Record: rec, Terms: terms, Folded: folded}
}

// Get returns the record with the given ID.
func (c *Corpus) Get(id string) (domain.VideoRecord, bool) {
	e, ok := c.Entry(id)
	if !ok {
		return domain.VideoRecord{}, false
	}
	return e.Record, true
}

// Entry returns the entry with the given ID.
func (c *Corpus) Entry(id string) (*Entry, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}

// All iterates over every record in ID order.
func (c *Corpus) All() iter.Seq[domain.VideoRecord] {
	return func(yield func(domain.VideoRecord) bool) {
		for i := range c.entries {
			if !yield(c.entries[i].Record) {
				return
			}
		}
	}
}

// Entries iterates over every entry in ID order.
// Callers must treat the entries as read-only.
func (c *Corpus) Entries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for i := range c.entries {
			if !yield(&c.entries[i]) {
				return
			}
		}
	}
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.entries)
}

// Generation returns the unique ID of this build.
func (c *Corpus) Generation() string {
	return c.generation
}

// Stats describes the corpus.
func (c *Corpus) Stats() domain.CorpusStats {
	return domain.CorpusStats{
		Generation: c.generation,
		LoadedAt:   c.loadedAt,
		Records:    len(c.entries),
		Report:     c.report,
	}
}
