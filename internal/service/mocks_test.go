package service

import (
	"context"

	"specialty-match/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockSpecialtyRepository ---
type MockSpecialtyRepository struct {
	mock.Mock
}

func (m *MockSpecialtyRepository) Insert(ctx context.Context, specialty *domain.Specialty) error {
	args := m.Called(ctx, specialty)
	return args.Error(0)
}

func (m *MockSpecialtyRepository) GetByName(ctx context.Context, name string) ([]*domain.Specialty, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) GetAll(ctx context.Context) ([]*domain.Specialty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) ListNames(ctx context.Context) ([]*domain.Specialty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Specialty), args.Error(1)
}

func (m *MockSpecialtyRepository) SearchByName(ctx context.Context, input string, limit int) ([]*domain.Specialty, error) {
	args := m.Called(ctx, input, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Specialty), args.Error(1)
}

// --- MockEmbeddingService ---
type MockEmbeddingService struct {
	mock.Mock
}

func (m *MockEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

func (m *MockEmbeddingService) GenerateBatch(ctx context.Context, texts []string) ([][]float32, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float32), args.Error(1)
}

// --- MockVectorIndex ---
type MockVectorIndex struct {
	mock.Mock
}

func (m *MockVectorIndex) Upsert(ctx context.Context, specialties []*domain.Specialty) error {
	args := m.Called(ctx, specialties)
	return args.Error(0)
}

func (m *MockVectorIndex) Search(ctx context.Context, vector []float32, limit int) ([]domain.Match, error) {
	args := m.Called(ctx, vector, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}
