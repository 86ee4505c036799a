package service

import (
	"context"
	"strings"
	"time"

	"specialty-match/internal/domain"
	"specialty-match/internal/metrics"
	"specialty-match/internal/util"

	"go.uber.org/zap"
)

// DefaultTopK is the number of matches returned when neither caller nor config sets one.
const DefaultTopK = 5

// matchService implements the domain.MatchService interface.
type matchService struct {
	repo     domain.SpecialtyRepository
	index    domain.VectorIndex
	defaultK int
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewMatchService creates a new instance of matchService.
// With a nil index every query ranks the full table in memory.
func NewMatchService(
	repo domain.SpecialtyRepository,
	index domain.VectorIndex,
	defaultK int,
	logger *zap.Logger,
	m *metrics.Metrics,
) domain.MatchService {
	if defaultK <= 0 {
		defaultK = DefaultTopK
	}
	return &matchService{
		repo:     repo,
		index:    index,
		defaultK: defaultK,
		logger:   logger,
		metrics:  m,
	}
}

func (s *matchService) FindSimilar(ctx context.Context, label string, k int) (matches []domain.Match, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveOperation("match", start, err) }()

	if strings.TrimSpace(label) == "" {
		return nil, domain.NewInvalidInputError("input_name is required")
	}
	if k <= 0 {
		k = s.defaultK
	}

	s.logger.Info("Finding matches", zap.String("specialty", label), zap.Int("k", k))

	rows, err := s.repo.GetByName(ctx, label)
	if err != nil {
		return nil, domain.NewStoreError("failed to fetch query specialty", err)
	}
	if len(rows) == 0 {
		return nil, domain.NewSpecialtyNotFoundError(label)
	}
	query := rows[0].Embedding

	if s.index != nil {
		matches, err = s.searchIndex(ctx, query, label, k, len(rows))
		if err == nil && len(matches) < k {
			// The index only holds rows upserted while it was enabled.
			s.logger.Warn("Vector index returned too few matches, ranking the store instead",
				zap.String("specialty", label), zap.Int("k", k), zap.Int("index_matches", len(matches)))
			matches, err = s.rankAll(ctx, query, label, k)
		}
	} else {
		matches, err = s.rankAll(ctx, query, label, k)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveMatches(len(matches))
	s.logger.Debug("Matches ranked", zap.String("specialty", label), zap.Int("returned", len(matches)))
	return matches, nil
}

func (s *matchService) rankAll(ctx context.Context, query []float32, label string, k int) ([]domain.Match, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, domain.NewStoreError("failed to fetch specialties", err)
	}
	matches, err := util.RankBySimilarity(query, all, label, k)
	if err != nil {
		return nil, domain.NewInternalError("failed to rank specialties", err)
	}
	return matches, nil
}

// searchIndex asks for enough neighbours to survive dropping every stored copy of label.
func (s *matchService) searchIndex(ctx context.Context, query []float32, label string, k, selfCount int) ([]domain.Match, error) {
	found, err := s.index.Search(ctx, query, k+selfCount)
	if err != nil {
		return nil, domain.NewInternalError("vector index search failed", err)
	}
	matches := make([]domain.Match, 0, k)
	for _, m := range found {
		if m.Name == label {
			continue
		}
		matches = append(matches, m)
		if len(matches) == k {
			break
		}
	}
	return matches, nil
}
