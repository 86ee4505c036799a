package service

import (
	"context"
	"fmt"
	"time"

	"specialty-match/internal/domain"
	"specialty-match/internal/export"
	"specialty-match/internal/metrics"
	"specialty-match/internal/util"

	"go.uber.org/zap"
)

// ingestService implements the domain.IngestService interface.
type ingestService struct {
	repo             domain.SpecialtyRepository
	embeddingService domain.EmbeddingService
	index            domain.VectorIndex
	outputPath       string
	logger           *zap.Logger
	metrics          *metrics.Metrics
}

// NewIngestService creates a new instance of ingestService.
// index may be nil; an empty outputPath skips the array file.
func NewIngestService(
	repo domain.SpecialtyRepository,
	embeddingService domain.EmbeddingService,
	index domain.VectorIndex,
	outputPath string,
	logger *zap.Logger,
	m *metrics.Metrics,
) domain.IngestService {
	return &ingestService{
		repo:             repo,
		embeddingService: embeddingService,
		index:            index,
		outputPath:       outputPath,
		logger:           logger,
		metrics:          m,
	}
}

func (s *ingestService) Ingest(ctx context.Context, labels []string) (result *domain.IngestResult, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveOperation("ingest", start, err) }()

	if len(labels) == 0 {
		return nil, domain.NewInvalidInputError("no labels to ingest")
	}

	runID := util.NewULID()
	log := s.logger.With(zap.String("run_id", runID))

	log.Info("Creating embeddings...", zap.Int("labels", len(labels)))
	vectors, err := s.embeddingService.GenerateBatch(ctx, labels)
	if err != nil {
		log.Error("Failed to create embeddings", zap.Error(err))
		return nil, domain.NewEmbeddingServiceError(err)
	}
	if len(vectors) != len(labels) {
		return nil, domain.NewInternalError(
			fmt.Sprintf("embedding model returned %d vectors for %d labels", len(vectors), len(labels)), nil)
	}
	s.metrics.AddEmbeddings(len(vectors))

	if s.outputPath != "" {
		if err := export.WriteNPY(s.outputPath, vectors); err != nil {
			log.Error("Failed to write embedding array", zap.String("path", s.outputPath), zap.Error(err))
			return nil, domain.NewInternalError("failed to write embedding array", err)
		}
		log.Info("Saved embedding array",
			zap.String("path", s.outputPath),
			zap.Int("rows", len(vectors)),
			zap.Int("dimensions", len(vectors[0])))
	}

	log.Info("Inserting embeddings...", zap.Int("rows", len(labels)))
	stored := make([]*domain.Specialty, 0, len(labels))
	for i, label := range labels {
		specialty := domain.NewSpecialty(label, vectors[i])
		insertErr := s.repo.Insert(ctx, specialty)
		s.metrics.IncInsert(insertErr)
		if insertErr != nil {
			log.Error("Insert failed, aborting ingestion",
				zap.Int("position", i),
				zap.String("name", label),
				zap.Int("inserted", len(stored)),
				zap.Error(insertErr))
			return nil, domain.NewStoreError(fmt.Sprintf("failed to insert specialty %q", label), insertErr)
		}
		log.Debug("Inserted specialty", zap.String("name", label), zap.Int64("id", specialty.ID))
		stored = append(stored, specialty)
	}

	if s.index != nil {
		if err := s.index.Upsert(ctx, stored); err != nil {
			log.Error("Failed to update vector index", zap.Error(err))
			return nil, domain.NewInternalError("failed to update vector index", err)
		}
	}

	log.Info("Done!", zap.Int("inserted", len(stored)), zap.Duration("elapsed", time.Since(start)))
	return &domain.IngestResult{
		RunID:      runID,
		Count:      len(stored),
		Dimensions: len(vectors[0]),
		OutputPath: s.outputPath,
		Stored:     stored,
	}, nil
}

func (s *ingestService) Reindex(ctx context.Context) (count int, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveOperation("reindex", start, err) }()

	if s.index == nil {
		return 0, domain.NewInvalidInputError("no vector index configured")
	}

	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return 0, domain.NewStoreError("failed to fetch specialties", err)
	}
	if len(all) == 0 {
		s.logger.Info("Nothing to reindex")
		return 0, nil
	}

	s.logger.Info("Reindexing specialties...", zap.Int("rows", len(all)))
	if err := s.index.Upsert(ctx, all); err != nil {
		return 0, domain.NewInternalError("failed to update vector index", err)
	}
	s.logger.Info("Done!", zap.Int("indexed", len(all)), zap.Duration("elapsed", time.Since(start)))
	return len(all), nil
}
