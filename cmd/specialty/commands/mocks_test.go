package commands

import (
	"context"
	"testing"

	"specialty-match/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockIngestService struct {
	mock.Mock
}

func (m *MockIngestService) Ingest(ctx context.Context, labels []string) (*domain.IngestResult, error) {
	args := m.Called(ctx, labels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IngestResult), args.Error(1)
}

func (m *MockIngestService) Reindex(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) FindSimilar(ctx context.Context, label string, k int) ([]domain.Match, error) {
	args := m.Called(ctx, label, k)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Match), args.Error(1)
}

type MockSpecialtyService struct {
	mock.Mock
}

func (m *MockSpecialtyService) List(ctx context.Context) ([]*domain.Specialty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Specialty), args.Error(1)
}

func (m *MockSpecialtyService) Search(ctx context.Context, input string) ([]*domain.Specialty, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Specialty), args.Error(1)
}

func (m *MockSpecialtyService) Add(ctx context.Context, name string) (*domain.Specialty, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Specialty), args.Error(1)
}

// useServices installs s for the duration of the test so setup skips config loading.
func useServices(t *testing.T, s *services) {
	t.Helper()
	app = s
	t.Cleanup(func() { app = nil })
}
