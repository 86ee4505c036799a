package domain

import (
	"context"
	"strings"
)

// Specialty is a legal specialty label together with its embedding vector.
type Specialty struct {
	ID        int64
	Name      string
	Embedding []float32
}

// NewSpecialty creates a new Specialty instance
func NewSpecialty(name string, embedding []float32) *Specialty {
	return &Specialty{
		Name:      name,
		Embedding: embedding,
	}
}

// Validate validates the specialty
func (s *Specialty) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewInvalidInputError("name is required")
	}
	if len(s.Embedding) == 0 {
		return NewInvalidInputError("embedding is required")
	}
	return nil
}

// Match is a candidate specialty ranked against a query specialty.
type Match struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// SpecialtyRepository defines the interface for specialty persistence.
// Embeddings returned by implementations are already decoded to []float32.
type SpecialtyRepository interface {
	// Insert persists one specialty and fills in its ID.
	Insert(ctx context.Context, specialty *Specialty) error

	// GetByName returns every stored row whose name equals name exactly.
	GetByName(ctx context.Context, name string) ([]*Specialty, error)

	// GetAll returns every stored specialty including embeddings.
	GetAll(ctx context.Context) ([]*Specialty, error)

	// ListNames returns id and name of every stored specialty.
	ListNames(ctx context.Context) ([]*Specialty, error)

	// SearchByName returns up to limit specialties whose name starts with or contains input,
	// ordered by name.
	SearchByName(ctx context.Context, input string, limit int) ([]*Specialty, error)
}

// VectorIndex is an optional nearest-neighbour index mirroring the specialty table.
type VectorIndex interface {
	Upsert(ctx context.Context, specialties []*Specialty) error
	Search(ctx context.Context, vector []float32, limit int) ([]Match, error)
}
