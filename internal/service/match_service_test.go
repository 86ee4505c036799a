package service

import (
	"context"
	"errors"
	"testing"

	"specialty-match/internal/domain"
	"specialty-match/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func storeABC() []*domain.Specialty {
	return []*domain.Specialty{
		{ID: 1, Name: "A", Embedding: []float32{1, 0}},
		{ID: 2, Name: "B", Embedding: []float32{1, 0}},
		{ID: 3, Name: "C", Embedding: []float32{0, 1}},
	}
}

func TestMatchService_FindSimilar(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSpecialtyRepository)
	all := storeABC()
	repo.On("GetByName", ctx, "A").Return(all[:1], nil).Once()
	repo.On("GetAll", ctx).Return(all, nil).Once()

	svc := NewMatchService(repo, nil, 5, zap.NewNop(), metrics.New())
	matches, err := svc.FindSimilar(ctx, "A", 0)

	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "B", matches[0].Name)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
	assert.Equal(t, "C", matches[1].Name)
	assert.InDelta(t, 0.0, matches[1].Score, 1e-9)
	repo.AssertExpectations(t)
}

func TestMatchService_FindSimilar_NotFoundBeforeFullFetch(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSpecialtyRepository)
	repo.On("GetByName", ctx, "Space Law").Return([]*domain.Specialty{}, nil).Once()

	svc := NewMatchService(repo, nil, 5, zap.NewNop(), nil)
	_, err := svc.FindSimilar(ctx, "Space Law", 5)

	assert.EqualError(t, err, "no embedding found for specialty: Space Law")
	assert.True(t, domain.IsNotFound(err))
	repo.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestMatchService_FindSimilar_LimitsToK(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSpecialtyRepository)
	all := []*domain.Specialty{{Name: "Q", Embedding: []float32{1, 0}}}
	for _, n := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		all = append(all, &domain.Specialty{Name: n, Embedding: []float32{1, 0.1}})
	}
	repo.On("GetByName", ctx, "Q").Return(all[:1], nil)
	repo.On("GetAll", ctx).Return(all, nil)

	svc := NewMatchService(repo, nil, 0, zap.NewNop(), nil)

	matches, err := svc.FindSimilar(ctx, "Q", 0)
	require.NoError(t, err)
	assert.Len(t, matches, DefaultTopK)

	matches, err = svc.FindSimilar(ctx, "Q", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names(matches))
}

func TestMatchService_FindSimilar_DimensionMismatch(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSpecialtyRepository)
	query := &domain.Specialty{Name: "A", Embedding: []float32{1, 0}}
	repo.On("GetByName", ctx, "A").Return([]*domain.Specialty{query}, nil)
	repo.On("GetAll", ctx).Return([]*domain.Specialty{query, {Name: "B", Embedding: []float32{1, 0, 0}}}, nil)

	svc := NewMatchService(repo, nil, 5, zap.NewNop(), nil)
	_, err := svc.FindSimilar(ctx, "A", 5)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}

func TestMatchService_FindSimilar_StoreErrors(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("timeout")

	repo := new(MockSpecialtyRepository)
	repo.On("GetByName", ctx, "A").Return(nil, storeErr).Once()
	svc := NewMatchService(repo, nil, 5, zap.NewNop(), nil)
	_, err := svc.FindSimilar(ctx, "A", 5)
	assert.ErrorIs(t, err, storeErr)

	repo = new(MockSpecialtyRepository)
	repo.On("GetByName", ctx, "A").Return(storeABC()[:1], nil).Once()
	repo.On("GetAll", ctx).Return(nil, storeErr).Once()
	svc = NewMatchService(repo, nil, 5, zap.NewNop(), nil)
	_, err = svc.FindSimilar(ctx, "A", 5)
	assert.ErrorIs(t, err, storeErr)
}

func TestMatchService_FindSimilar_BlankLabel(t *testing.T) {
	repo := new(MockSpecialtyRepository)
	svc := NewMatchService(repo, nil, 5, zap.NewNop(), nil)

	_, err := svc.FindSimilar(context.Background(), "  ", 5)

	assert.EqualError(t, err, "input_name is required")
	repo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestMatchService_FindSimilar_UsesIndex(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSpecialtyRepository)
	index := new(MockVectorIndex)
	query := []float32{1, 0}
	repo.On("GetByName", ctx, "A").Return([]*domain.Specialty{{ID: 1, Name: "A", Embedding: query}}, nil).Once()
	index.On("Search", ctx, query, 3).Return([]domain.Match{
		{Name: "A", Score: 1},
		{Name: "B", Score: 0.99},
		{Name: "C", Score: 0.2},
	}, nil).Once()

	svc := NewMatchService(repo, index, 5, zap.NewNop(), nil)
	matches, err := svc.FindSimilar(ctx, "A", 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, names(matches))
	repo.AssertNotCalled(t, "GetAll", mock.Anything)
	index.AssertExpectations(t)
}

func names(matches []domain.Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Name
	}
	return out
}

func TestMatchService_FindSimilar_ShortIndexFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSpecialtyRepository)
	index := new(MockVectorIndex)
	all := storeABC()
	repo.On("GetByName", ctx, "A").Return(all[:1], nil).Once()
	repo.On("GetAll", ctx).Return(all, nil).Once()
	index.On("Search", ctx, all[0].Embedding, 6).Return([]domain.Match{{Name: "A", Score: 1}}, nil).Once()

	svc := NewMatchService(repo, index, 5, zap.NewNop(), nil)
	matches, err := svc.FindSimilar(ctx, "A", 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, names(matches))
	repo.AssertExpectations(t)
	index.AssertExpectations(t)
}
