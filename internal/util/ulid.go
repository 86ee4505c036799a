package util

import "github.com/oklog/ulid/v2"

// NewULID returns a lexically sortable identifier for an ingestion run.
func NewULID() string {
	return ulid.Make().String()
}
