package vectorindex

import (
	"context"
	"fmt"
	"io"
	"sync"

	"specialty-match/internal/domain"

	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

// qdrantAPI is the subset of *qdrant.Client the index uses.
type qdrantAPI interface {
	CollectionExists(ctx context.Context, collectionName string) (bool, error)
	CreateCollection(ctx context.Context, request *qdrant.CreateCollection) error
	Upsert(ctx context.Context, request *qdrant.UpsertPoints) (*qdrant.UpdateResult, error)
	Query(ctx context.Context, request *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error)
}

// QdrantIndex mirrors stored specialties into a Qdrant collection using cosine distance.
// Point IDs are the store's row IDs; the label travels in the "name" payload field.
type QdrantIndex struct {
	client     qdrantAPI
	collection string
	logger     *zap.Logger

	mu      sync.Mutex
	ensured bool
}

var _ domain.VectorIndex = (*QdrantIndex)(nil)

// NewQdrantIndex connects to Qdrant over gRPC.
func NewQdrantIndex(host string, port int, collection string, logger *zap.Logger) (*QdrantIndex, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("fail to create qdrant client: %w", err)
	}
	return newQdrantIndex(client, collection, logger), nil
}

func newQdrantIndex(client qdrantAPI, collection string, logger *zap.Logger) *QdrantIndex {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QdrantIndex{client: client, collection: collection, logger: logger}
}

func (q *QdrantIndex) ensureCollection(ctx context.Context, dimensions int) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ensured {
		return nil
	}

	exists, err := q.client.CollectionExists(ctx, q.collection)
	if err != nil {
		return fmt.Errorf("fail to check if collection %s exists: %w", q.collection, err)
	}
	if !exists {
		err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: q.collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(dimensions),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("fail to create collection: %w", err)
		}
		q.logger.Info("Created Qdrant collection", zap.String("collection", q.collection), zap.Int("dimensions", dimensions))
	}
	q.ensured = true
	return nil
}

// Upsert writes specialties as points. Rows without a stored ID are rejected.
func (q *QdrantIndex) Upsert(ctx context.Context, specialties []*domain.Specialty) error {
	if len(specialties) == 0 {
		return nil
	}
	if err := q.ensureCollection(ctx, len(specialties[0].Embedding)); err != nil {
		return err
	}

	points := make([]*qdrant.PointStruct, 0, len(specialties))
	for _, s := range specialties {
		if s.ID <= 0 {
			return fmt.Errorf("specialty %q has no stored id", s.Name)
		}
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(uint64(s.ID)),
			Vectors: qdrant.NewVectorsDense(s.Embedding),
			Payload: qdrant.NewValueMap(map[string]any{
				"name": s.Name,
			}),
		})
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collection,
		Wait:           qdrant.PtrOf(true),
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("fail to store qdrant points: %w", err)
	}
	return nil
}

// Search returns up to limit nearest points ordered by descending cosine score.
func (q *QdrantIndex) Search(ctx context.Context, vector []float32, limit int) ([]domain.Match, error) {
	if limit <= 0 {
		return []domain.Match{}, nil
	}
	if err := q.ensureCollection(ctx, len(vector)); err != nil {
		return nil, err
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collection,
		Query:          qdrant.NewQueryDense(vector),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to search qdrant: %w", err)
	}

	matches := make([]domain.Match, 0, len(points))
	for _, p := range points {
		name, ok := p.Payload["name"]
		if !ok {
			q.logger.Warn("Qdrant point without name payload", zap.Uint64("id", p.Id.GetNum()))
			continue
		}
		matches = append(matches, domain.Match{Name: name.GetStringValue(), Score: float64(p.Score)})
	}
	return matches, nil
}

// Close releases the gRPC connection when the index owns one.
func (q *QdrantIndex) Close() error {
	if c, ok := q.client.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
