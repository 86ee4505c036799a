package domain

import "context"

// IngestResult summarizes one ingestion run.
type IngestResult struct {
	RunID      string
	Count      int
	Dimensions int
	OutputPath string
	Stored     []*Specialty
}

// IngestService embeds a label list and loads it into the store.
type IngestService interface {
	// Ingest embeds labels in order, writes the N×D array file and inserts one row per label.
	// The first failing insert aborts the run.
	Ingest(ctx context.Context, labels []string) (*IngestResult, error)

	// Reindex copies every stored specialty into the vector index and returns how many were copied.
	Reindex(ctx context.Context) (int, error)
}

// MatchService ranks stored specialties against a stored query specialty.
type MatchService interface {
	// FindSimilar returns up to k specialties most similar to label, never label itself.
	// k <= 0 selects the configured default.
	FindSimilar(ctx context.Context, label string, k int) ([]Match, error)
}

// SpecialtyService covers the lookup and single-insert operations on the specialty table.
type SpecialtyService interface {
	List(ctx context.Context) ([]*Specialty, error)
	Search(ctx context.Context, input string) ([]*Specialty, error)
	Add(ctx context.Context, name string) (*Specialty, error)
}
