// Package bootstrap wires configuration into the store, embedding pipeline and services
// shared by the CLI and the HTTP server.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"specialty-match/internal/adapter"
	"specialty-match/internal/adapter/embedding"
	"specialty-match/internal/adapter/vectorindex"
	"specialty-match/internal/cache"
	"specialty-match/internal/config"
	"specialty-match/internal/database"
	"specialty-match/internal/domain"
	"specialty-match/internal/metrics"
	"specialty-match/internal/repository"
	"specialty-match/internal/service"

	"go.uber.org/zap"
)

// Container holds the wired dependencies of one process.
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	Repository domain.SpecialtyRepository
	Embedder   domain.EmbeddingService
	Cache      domain.Cache
	Index      domain.VectorIndex

	Ingest      domain.IngestService
	Match       domain.MatchService
	Specialties domain.SpecialtyService

	closers []func() error
}

// New builds every dependency selected by cfg. Redis is optional: when it cannot be
// reached the embedding pipeline runs uncached.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger, Metrics: metrics.New()}

	logger.Info("Initializing store client...", zap.String("driver", cfg.Store.Driver), zap.String("table", cfg.Store.Table))
	if err := c.initRepository(); err != nil {
		c.Close()
		return nil, err
	}

	if cfg.Redis.Address != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("Redis unavailable, embeddings will not be cached", zap.Error(err))
		} else {
			c.Cache = adapter.NewRedisCacheAdapter(client)
			c.closers = append(c.closers, client.Close)
			logger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	embedder, err := embedding.NewFromConfig(cfg, c.Cache, logger)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to create embedding service: %w", err)
	}
	c.Embedder = embedder

	if cfg.Index.Driver == config.IndexDriverQdrant {
		idx, err := vectorindex.NewQdrantIndex(cfg.Index.Host, cfg.Index.Port, cfg.Index.Collection, logger)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.Index = idx
		c.closers = append(c.closers, idx.Close)
	}

	c.Ingest = service.NewIngestService(c.Repository, c.Embedder, c.Index, cfg.Ingest.OutputPath, logger, c.Metrics)
	c.Match = service.NewMatchService(c.Repository, c.Index, cfg.Match.TopK, logger, c.Metrics)
	c.Specialties = service.NewSpecialtyService(c.Repository, c.Embedder, c.Index, logger, c.Metrics)
	return c, nil
}

func (c *Container) initRepository() error {
	cfg := c.Config
	switch cfg.Store.Driver {
	case config.StoreDriverPostgREST:
		client, err := repository.NewPostgRESTClient(cfg.SupabaseRESTURL(), cfg.Store.Schema, cfg.SupabaseServiceKey)
		if err != nil {
			return err
		}
		repo, err := repository.NewSpecialtyRESTAdapter(client, cfg.Store.Table)
		if err != nil {
			return err
		}
		c.Repository = repo
	case config.StoreDriverPostgres:
		db, err := database.NewSQLXPostgresDB(cfg.Store.DSN)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, db.Close)
		repo, err := repository.NewSpecialtyDatabaseAdapter(db, cfg.Store.Table)
		if err != nil {
			return err
		}
		c.Repository = repo
	default:
		return fmt.Errorf("unsupported store driver: %q", cfg.Store.Driver)
	}
	return nil
}

// Health reports the state of the optional backing services.
func (c *Container) Health(ctx context.Context) map[string]string {
	checks := map[string]string{"store": c.Config.Store.Driver}
	if c.Cache != nil {
		if err := c.Cache.Ping(ctx); err != nil {
			checks["cache"] = "down: " + err.Error()
		} else {
			checks["cache"] = "ok"
		}
	}
	return checks
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
