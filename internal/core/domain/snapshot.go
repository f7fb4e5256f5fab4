package domain

import "time"

// Snapshot is a fully decoded corpus snapshot, ready to be built into a corpus.
type Snapshot struct {
	// Records are the successfully decoded videos.
	Records []VideoRecord

	// Report describes what was skipped or defaulted while decoding.
	Report LoadReport
}

// LoadReport summarises how a snapshot was decoded.
type LoadReport struct {
	// Source describes where the snapshot came from (file path, database).
	Source string

	// Total is the number of entries found in the snapshot.
	Total int

	// Loaded is the number of records that made it into the snapshot.
	Loaded int

	// Skipped is the number of entries dropped entirely.
	Skipped int

	// Degraded is the number of loaded records with one or more defaulted sections.
	Degraded int

	// Problems lists every skipped entry and defaulted section.
	Problems []RecordProblem
}

// RecordProblem describes one malformed part of the snapshot.
type RecordProblem struct {
	VideoID string
	Reason  string
}

// HasProblems reports whether any entry was skipped or degraded.
func (r *LoadReport) HasProblems() bool {
	return len(r.Problems) > 0
}

// CorpusStats describes the corpus currently being searched.
type CorpusStats struct {
	// Generation uniquely identifies one built corpus.
	Generation string

	// LoadedAt is when the corpus was built.
	LoadedAt time.Time

	// Records is the number of searchable records.
	Records int

	// Report is the load report of the snapshot the corpus was built from.
	Report LoadReport
}
