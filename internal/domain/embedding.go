package domain

import "context"

// EmbeddingService turns specialty labels into vectors.
// Every vector from one service has the same dimension.
type EmbeddingService interface {
	Generate(ctx context.Context, text string) ([]float32, error)
	// GenerateBatch returns one vector per text, in input order.
	GenerateBatch(ctx context.Context, texts []string) ([][]float32, error)
}
