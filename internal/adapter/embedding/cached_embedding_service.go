package embedding

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"specialty-match/internal/cache"
	"specialty-match/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultEmbeddingTTL is used when no cache_ttls.embedding is configured.
const DefaultEmbeddingTTL = 168 * time.Hour

// CachedEmbeddingService memoizes vectors from next in a domain.Cache.
// Concurrent misses for the same text share one upstream call.
type CachedEmbeddingService struct {
	next    domain.EmbeddingService
	cache   domain.Cache
	source  string
	model   string
	dims    int
	ttl     time.Duration
	logger  *zap.Logger
	sfGroup singleflight.Group
}

var _ domain.EmbeddingService = (*CachedEmbeddingService)(nil)

// NewCachedEmbeddingService wraps next. source, model and dimensions become part of every cache key.
func NewCachedEmbeddingService(next domain.EmbeddingService, c domain.Cache, source, model string, dimensions int, ttl time.Duration, logger *zap.Logger) (*CachedEmbeddingService, error) {
	if next == nil {
		return nil, fmt.Errorf("embedding service cannot be nil")
	}
	if c == nil {
		return nil, fmt.Errorf("cache instance cannot be nil for CachedEmbeddingService")
	}
	if ttl <= 0 {
		ttl = DefaultEmbeddingTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedEmbeddingService{
		next:   next,
		cache:  c,
		source: source,
		model:  model,
		dims:   dimensions,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (s *CachedEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("input text cannot be empty for embedding")
	}
	cacheKey := cache.EmbeddingKey(s.source, s.model, s.dims, text)

	if vec, ok := s.lookup(ctx, cacheKey); ok {
		return vec, nil
	}

	res, err, _ := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		vec, err := s.next.Generate(ctx, text)
		if err != nil {
			return nil, err
		}
		s.store(ctx, cacheKey, vec)
		return vec, nil
	})
	if err != nil {
		return nil, err
	}

	vec, ok := res.([]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight.Do for embedding: %T", res)
	}
	return vec, nil
}

// GenerateBatch serves hits from the cache and embeds the misses in a single upstream batch.
func (s *CachedEmbeddingService) GenerateBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	var missTexts []string
	var missIdx []int

	for i, text := range texts {
		if text == "" {
			return nil, fmt.Errorf("input text %d cannot be empty for embedding", i)
		}
		if vec, ok := s.lookup(ctx, cache.EmbeddingKey(s.source, s.model, s.dims, text)); ok {
			out[i] = vec
			continue
		}
		missTexts = append(missTexts, text)
		missIdx = append(missIdx, i)
	}

	if len(missTexts) == 0 {
		return out, nil
	}
	s.logger.Debug("Embedding cache batch",
		zap.Int("hits", len(texts)-len(missTexts)),
		zap.Int("misses", len(missTexts)))

	vectors, err := s.next.GenerateBatch(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(missTexts) {
		return nil, fmt.Errorf("embedding service returned %d vectors for %d texts", len(vectors), len(missTexts))
	}
	for j, vec := range vectors {
		out[missIdx[j]] = vec
		s.store(ctx, cache.EmbeddingKey(s.source, s.model, s.dims, missTexts[j]), vec)
	}
	return out, nil
}

func (s *CachedEmbeddingService) lookup(ctx context.Context, key string) ([]float32, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("Failed to read embedding cache", zap.String("cacheKey", key), zap.Error(err))
		}
		return nil, false
	}

	var vec []float32
	if err := gob.NewDecoder(bytes.NewReader([]byte(data))).Decode(&vec); err != nil || len(vec) == 0 {
		s.logger.Warn("Discarding undecodable cached embedding", zap.String("cacheKey", key), zap.Error(err))
		return nil, false
	}
	return vec, true
}

// store never fails the caller; a vector that cannot be cached is still returned.
func (s *CachedEmbeddingService) store(ctx context.Context, key string, vec []float32) {
	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(vec); err != nil {
		s.logger.Error("Failed to gob encode embedding for caching", zap.String("cacheKey", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, buffer.String(), s.ttl); err != nil {
		s.logger.Warn("Failed to write embedding cache", zap.String("cacheKey", key), zap.Error(err))
	}
}
