package repository

import (
	"context"
	"fmt"
	"strings"

	"specialty-match/internal/domain"
	"specialty-match/internal/repository/models"

	"github.com/supabase-community/postgrest-go"
)

// SpecialtyRESTAdapter reads and writes specialties through a Supabase PostgREST endpoint.
// The postgrest client does not take a context; ctx is only checked before each request.
type SpecialtyRESTAdapter struct {
	client *postgrest.Client
	table  string
}

// NewPostgRESTClient builds a client authenticated with the service key.
func NewPostgRESTClient(restURL, schema, serviceKey string) (*postgrest.Client, error) {
	if schema == "" {
		schema = "public"
	}
	client := postgrest.NewClient(restURL, schema, map[string]string{
		"apikey":        serviceKey,
		"Authorization": "Bearer " + serviceKey,
	})
	if client.ClientError != nil {
		return nil, fmt.Errorf("failed to create postgrest client: %w", client.ClientError)
	}
	return client, nil
}

// NewSpecialtyRESTAdapter creates a new instance of SpecialtyRESTAdapter
func NewSpecialtyRESTAdapter(client *postgrest.Client, table string) (domain.SpecialtyRepository, error) {
	if err := validateTableName(table); err != nil {
		return nil, err
	}
	return &SpecialtyRESTAdapter{client: client, table: table}, nil
}

func (r *SpecialtyRESTAdapter) Insert(ctx context.Context, specialty *domain.Specialty) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	row := models.Specialty{Name: specialty.Name, Embedding: models.Embedding(specialty.Embedding)}
	var inserted []models.SpecialtyRow
	_, err := r.client.From(r.table).
		Insert(row, false, "", "representation", "").
		ExecuteTo(&inserted)
	if err != nil {
		return fmt.Errorf("failed to insert specialty %q: %w", specialty.Name, err)
	}
	if len(inserted) > 0 {
		specialty.ID = inserted[0].ID
	}
	return nil
}

func (r *SpecialtyRESTAdapter) GetByName(ctx context.Context, name string) ([]*domain.Specialty, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []models.SpecialtyRow
	_, err := r.client.From(r.table).
		Select("id,name,embedding", "", false).
		Eq("name", name).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get specialty %q: %w", name, err)
	}
	return decodeRows(rows)
}

func (r *SpecialtyRESTAdapter) GetAll(ctx context.Context) ([]*domain.Specialty, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []models.SpecialtyRow
	_, err := r.client.From(r.table).
		Select("id,name,embedding", "", false).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get specialties: %w", err)
	}
	return decodeRows(rows)
}

func (r *SpecialtyRESTAdapter) ListNames(ctx context.Context) ([]*domain.Specialty, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []models.SpecialtyName
	_, err := r.client.From(r.table).
		Select("id,name", "", false).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}
	return convertNamesToDomain(rows), nil
}

func (r *SpecialtyRESTAdapter) SearchByName(ctx context.Context, input string, limit int) ([]*domain.Specialty, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []models.SpecialtyName
	quoted := quoteFilterValue(input)
	filter := fmt.Sprintf(`name.ilike."%s*",name.ilike."*%s*"`, quoted, quoted)
	_, err := r.client.From(r.table).
		Select("id,name", "", false).
		Or(filter, "").
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Limit(limit, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to search specialties: %w", err)
	}
	return convertNamesToDomain(rows), nil
}

// quoteFilterValue escapes input for use inside a double-quoted PostgREST filter value,
// where commas and parentheses are taken literally.
func quoteFilterValue(input string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(input)
}

func decodeRows(rows []models.SpecialtyRow) ([]*domain.Specialty, error) {
	specialties := make([]*domain.Specialty, len(rows))
	for i, row := range rows {
		vec, err := models.DecodeEmbedding(row.Embedding)
		if err != nil {
			return nil, fmt.Errorf("failed to decode embedding for %q: %w", row.Name, err)
		}
		specialties[i] = &domain.Specialty{ID: row.ID, Name: row.Name, Embedding: vec}
	}
	return specialties, nil
}
