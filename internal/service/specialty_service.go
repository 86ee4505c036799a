package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"specialty-match/internal/domain"
	"specialty-match/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SearchLimit caps the number of rows a name search returns.
const SearchLimit = 5

// specialtyService implements the domain.SpecialtyService interface.
type specialtyService struct {
	repo             domain.SpecialtyRepository
	embeddingService domain.EmbeddingService
	index            domain.VectorIndex
	logger           *zap.Logger
	metrics          *metrics.Metrics
}

// NewSpecialtyService creates a new instance of specialtyService.
func NewSpecialtyService(
	repo domain.SpecialtyRepository,
	embeddingService domain.EmbeddingService,
	index domain.VectorIndex,
	logger *zap.Logger,
	m *metrics.Metrics,
) domain.SpecialtyService {
	return &specialtyService{
		repo:             repo,
		embeddingService: embeddingService,
		index:            index,
		logger:           logger,
		metrics:          m,
	}
}

// List returns every stored specialty without embeddings.
func (s *specialtyService) List(ctx context.Context) ([]*domain.Specialty, error) {
	specialties, err := s.repo.ListNames(ctx)
	if err != nil {
		return nil, domain.NewStoreError("failed to list specialties", err)
	}
	return specialties, nil
}

// Search returns up to SearchLimit names starting with or containing input.
// Prefix matches come first, then locale order.
func (s *specialtyService) Search(ctx context.Context, input string) ([]*domain.Specialty, error) {
	if input == "" {
		return nil, domain.NewInvalidInputError("input is required")
	}
	term := strings.TrimSpace(input)
	if term == "" {
		return nil, domain.NewInvalidInputError("input cannot be empty")
	}

	found, err := s.repo.SearchByName(ctx, term, SearchLimit)
	if err != nil {
		return nil, domain.NewStoreError("failed to search specialties", err)
	}
	sortByPrefixThenLocale(found, term)
	return found, nil
}

func sortByPrefixThenLocale(specialties []*domain.Specialty, term string) {
	col := collate.New(language.English)
	prefix := strings.ToLower(term)
	sort.SliceStable(specialties, func(i, j int) bool {
		a, b := specialties[i].Name, specialties[j].Name
		aStarts := strings.HasPrefix(strings.ToLower(a), prefix)
		bStarts := strings.HasPrefix(strings.ToLower(b), prefix)
		if aStarts != bStarts {
			return aStarts
		}
		return col.CompareString(a, b) < 0
	})
}

// Add embeds name, stores it and mirrors it into the index when one is configured.
func (s *specialtyService) Add(ctx context.Context, name string) (result *domain.Specialty, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveOperation("add", start, err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewInvalidInputError("name is required")
	}

	vector, err := s.embeddingService.Generate(ctx, name)
	if err != nil {
		return nil, domain.NewEmbeddingServiceError(err)
	}
	s.metrics.AddEmbeddings(1)

	specialty := domain.NewSpecialty(name, vector)
	if err := specialty.Validate(); err != nil {
		return nil, err
	}
	insertErr := s.repo.Insert(ctx, specialty)
	s.metrics.IncInsert(insertErr)
	if insertErr != nil {
		return nil, domain.NewStoreError("failed to insert specialty", insertErr)
	}

	if s.index != nil {
		if err := s.index.Upsert(ctx, []*domain.Specialty{specialty}); err != nil {
			s.logger.Error("Failed to index new specialty", zap.String("name", name), zap.Error(err))
			return nil, domain.NewInternalError("failed to update vector index", err)
		}
	}

	s.logger.Info("Added specialty", zap.String("name", name), zap.Int64("id", specialty.ID))
	return specialty, nil
}
