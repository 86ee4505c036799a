package repository

import (
	"context"
	"fmt"

	"specialty-match/internal/domain"
	"specialty-match/internal/repository/models"
)

// SpecialtyDatabaseAdapter stores specialties in a Postgres table with a pgvector column.
type SpecialtyDatabaseAdapter struct {
	db    DBTX
	table string
}

// NewSpecialtyDatabaseAdapter creates a new instance of SpecialtyDatabaseAdapter
func NewSpecialtyDatabaseAdapter(db DBTX, table string) (domain.SpecialtyRepository, error) {
	if err := validateTableName(table); err != nil {
		return nil, err
	}
	return &SpecialtyDatabaseAdapter{db: db, table: table}, nil
}

// Insert persists one specialty and sets its generated ID
func (r *SpecialtyDatabaseAdapter) Insert(ctx context.Context, specialty *domain.Specialty) error {
	query := fmt.Sprintf(`INSERT INTO %s (name, embedding) VALUES ($1, $2) RETURNING id`, r.table)
	var id int64
	if err := r.db.GetContext(ctx, &id, query, specialty.Name, models.Embedding(specialty.Embedding)); err != nil {
		return fmt.Errorf("failed to insert specialty %q: %w", specialty.Name, err)
	}
	specialty.ID = id
	return nil
}

// GetByName returns every row whose name equals name
func (r *SpecialtyDatabaseAdapter) GetByName(ctx context.Context, name string) ([]*domain.Specialty, error) {
	var rows []models.Specialty
	query := fmt.Sprintf(`SELECT id, name, embedding FROM %s WHERE name = $1 ORDER BY id`, r.table)
	if err := r.db.SelectContext(ctx, &rows, query, name); err != nil {
		return nil, fmt.Errorf("failed to get specialty %q: %w", name, err)
	}
	return convertToDomainSpecialties(rows), nil
}

// GetAll returns every specialty with its embedding
func (r *SpecialtyDatabaseAdapter) GetAll(ctx context.Context) ([]*domain.Specialty, error) {
	var rows []models.Specialty
	query := fmt.Sprintf(`SELECT id, name, embedding FROM %s ORDER BY id`, r.table)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to get specialties: %w", err)
	}
	return convertToDomainSpecialties(rows), nil
}

// ListNames returns id and name of every specialty
func (r *SpecialtyDatabaseAdapter) ListNames(ctx context.Context) ([]*domain.Specialty, error) {
	var rows []models.SpecialtyName
	query := fmt.Sprintf(`SELECT id, name FROM %s ORDER BY id`, r.table)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}
	return convertNamesToDomain(rows), nil
}

// SearchByName returns up to limit specialties whose name starts with or contains input
func (r *SpecialtyDatabaseAdapter) SearchByName(ctx context.Context, input string, limit int) ([]*domain.Specialty, error) {
	var rows []models.SpecialtyName
	query := fmt.Sprintf(`SELECT id, name FROM %s WHERE name ILIKE $1 OR name ILIKE $2 ORDER BY name ASC LIMIT $3`, r.table)
	if err := r.db.SelectContext(ctx, &rows, query, input+"%", "%"+input+"%", limit); err != nil {
		return nil, fmt.Errorf("failed to search specialties: %w", err)
	}
	return convertNamesToDomain(rows), nil
}

// Helper functions for converting between domain and model types
func convertToDomainSpecialties(rows []models.Specialty) []*domain.Specialty {
	specialties := make([]*domain.Specialty, len(rows))
	for i, row := range rows {
		specialties[i] = &domain.Specialty{
			ID:        row.ID,
			Name:      row.Name,
			Embedding: []float32(row.Embedding),
		}
	}
	return specialties
}

func convertNamesToDomain(rows []models.SpecialtyName) []*domain.Specialty {
	specialties := make([]*domain.Specialty, len(rows))
	for i, row := range rows {
		specialties[i] = &domain.Specialty{ID: row.ID, Name: row.Name}
	}
	return specialties
}
