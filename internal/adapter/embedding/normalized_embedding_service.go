package embedding

import (
	"context"
	"fmt"

	"specialty-match/internal/domain"

	"github.com/hupe1980/vecgo/distance"
)

// NormalizedEmbeddingService scales every vector produced by next to unit L2 length.
type NormalizedEmbeddingService struct {
	next domain.EmbeddingService
}

var _ domain.EmbeddingService = (*NormalizedEmbeddingService)(nil)

func NewNormalizedEmbeddingService(next domain.EmbeddingService) *NormalizedEmbeddingService {
	return &NormalizedEmbeddingService{next: next}
}

func (s *NormalizedEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	vec, err := s.next.Generate(ctx, text)
	if err != nil {
		return nil, err
	}
	return normalize(vec)
}

func (s *NormalizedEmbeddingService) GenerateBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, err := s.next.GenerateBatch(ctx, texts)
	if err != nil {
		return nil, err
	}
	out := make([][]float32, len(vectors))
	for i, vec := range vectors {
		n, err := normalize(vec)
		if err != nil {
			return nil, fmt.Errorf("embedding %d (%q): %w", i, texts[i], err)
		}
		out[i] = n
	}
	return out, nil
}

func normalize(vec []float32) ([]float32, error) {
	n, ok := distance.NormalizeL2Copy(vec)
	if !ok {
		return nil, fmt.Errorf("cannot normalize zero-length or all-zero embedding")
	}
	return n, nil
}
