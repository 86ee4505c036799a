package embedding

import (
	"fmt"

	"specialty-match/internal/config"
	"specialty-match/internal/domain"

	"go.uber.org/zap"
)

// NewFromConfig builds the embedding pipeline: the configured model, unit normalization,
// and, when c is non-nil, a cache in front of both.
func NewFromConfig(cfg *config.Config, c domain.Cache, logger *zap.Logger) (domain.EmbeddingService, error) {
	var (
		base  domain.EmbeddingService
		model string
		dims  int
		err   error
	)

	switch cfg.Embedding.Source {
	case config.EmbeddingSourceOllama:
		model = cfg.Embedding.Ollama.Model
		base, err = NewOllamaEmbeddingService(cfg.Embedding.Ollama.ServerURL, model)
	case config.EmbeddingSourceOpenAI:
		model = cfg.Embedding.OpenAI.Model
		dims = cfg.Embedding.OpenAI.Dimensions
		base, err = NewOpenAIEmbeddingService(cfg.Embedding.OpenAI.APIKey, model, dims)
	default:
		return nil, fmt.Errorf("unsupported embedding source: %q", cfg.Embedding.Source)
	}
	if err != nil {
		return nil, err
	}

	var svc domain.EmbeddingService = NewNormalizedEmbeddingService(base)
	if c == nil {
		return svc, nil
	}

	ttl := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Embedding, DefaultEmbeddingTTL)
	return NewCachedEmbeddingService(svc, c, cfg.Embedding.Source, model, dims, ttl, logger)
}
