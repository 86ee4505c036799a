package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pgvector/pgvector-go"
)

// Embedding is a vector column value. It writes pgvector text and reads any of the
// representations DecodeEmbedding accepts.
type Embedding []float32

// Value implements the driver.Valuer interface
func (e Embedding) Value() (driver.Value, error) {
	if e == nil {
		return nil, nil
	}
	return pgvector.NewVector([]float32(e)).Value()
}

// Scan implements the sql.Scanner interface
func (e *Embedding) Scan(value interface{}) error {
	vec, err := DecodeEmbedding(value)
	if err != nil {
		return err
	}
	*e = vec
	return nil
}

// DecodeEmbedding normalizes a stored embedding to []float32. Stores hand embeddings back
// either as a native numeric array or as serialized text (a JSON string wrapping an array,
// or pgvector's "[1,2,3]" form); this is the only place that tells them apart.
func DecodeEmbedding(raw interface{}) ([]float32, error) {
	switch v := raw.(type) {
	case nil:
		return nil, errors.New("embedding is null")
	case []float32:
		out := make([]float32, len(v))
		copy(out, v)
		return out, nil
	case []float64:
		out := make([]float32, len(v))
		for i, f := range v {
			out[i] = float32(f)
		}
		return out, nil
	case []interface{}:
		out := make([]float32, len(v))
		for i, item := range v {
			f, err := toFloat(item)
			if err != nil {
				return nil, fmt.Errorf("embedding element %d: %w", i, err)
			}
			out[i] = float32(f)
		}
		return out, nil
	case pgvector.Vector:
		return v.Slice(), nil
	case json.RawMessage:
		return decodeText([]byte(v))
	case []byte:
		return decodeText(v)
	case string:
		return decodeText([]byte(v))
	default:
		return nil, fmt.Errorf("unsupported embedding type %T", raw)
	}
}

func decodeText(b []byte) ([]float32, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, errors.New("embedding is empty")
	}

	// a JSON string wrapping the serialized array
	if b[0] == '"' {
		var inner string
		if err := json.Unmarshal(b, &inner); err != nil {
			return nil, fmt.Errorf("failed to decode embedding string: %w", err)
		}
		return decodeText([]byte(inner))
	}

	var values []float64
	if err := json.Unmarshal(b, &values); err != nil {
		return nil, fmt.Errorf("failed to decode embedding array: %w", err)
	}
	out := make([]float32, len(values))
	for i, f := range values {
		out[i] = float32(f)
	}
	return out, nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("unsupported element type %T", v)
	}
}

// Specialty is the row model of the specialties table.
type Specialty struct {
	ID        int64     `db:"id" json:"id,omitempty"`
	Name      string    `db:"name" json:"name"`
	Embedding Embedding `db:"embedding" json:"embedding,omitempty"`
}

// SpecialtyName is the projection used by listings and name search.
type SpecialtyName struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// SpecialtyRow is a row as returned by the REST API, before the embedding is decoded.
type SpecialtyRow struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Embedding json.RawMessage `json:"embedding"`
}
