package embedding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEmbedder is a mock type for the embeddings.Embedder interface
type MockEmbedder struct {
	mock.Mock
}

func (m *MockEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float32), args.Error(1)
}

func (m *MockEmbedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

func TestNewOllamaEmbeddingService(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		// Construction does not contact the server.
		svc, err := NewOllamaEmbeddingService("http://localhost:11434", DefaultOllamaModel)
		assert.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("empty server URL", func(t *testing.T) {
		_, err := NewOllamaEmbeddingService("", DefaultOllamaModel)
		assert.ErrorContains(t, err, "ollama server URL cannot be empty")
	})

	t.Run("empty model name", func(t *testing.T) {
		_, err := NewOllamaEmbeddingService("http://localhost:11434", "")
		assert.ErrorContains(t, err, "ollama model name cannot be empty")
	})
}

func TestOllamaEmbeddingService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockEmb := new(MockEmbedder)
		service := &OllamaEmbeddingService{embedder: mockEmb}
		mockEmb.On("EmbedQuery", ctx, "Tax Law").Return([]float32{0.1, 0.2, 0.3}, nil).Once()

		result, err := service.Generate(ctx, "Tax Law")

		assert.NoError(t, err)
		assert.Equal(t, []float32{0.1, 0.2, 0.3}, result)
		mockEmb.AssertExpectations(t)
	})

	t.Run("empty text", func(t *testing.T) {
		mockEmb := new(MockEmbedder)
		service := &OllamaEmbeddingService{embedder: mockEmb}
		_, err := service.Generate(ctx, "")
		assert.ErrorContains(t, err, "input text cannot be empty")
		mockEmb.AssertNotCalled(t, "EmbedQuery", mock.Anything, mock.Anything)
	})

	t.Run("embedder error", func(t *testing.T) {
		mockEmb := new(MockEmbedder)
		service := &OllamaEmbeddingService{embedder: mockEmb}
		mockEmb.On("EmbedQuery", ctx, "Tax Law").Return(nil, errors.New("model not pulled")).Once()

		_, err := service.Generate(ctx, "Tax Law")

		assert.ErrorContains(t, err, "model not pulled")
		mockEmb.AssertExpectations(t)
	})

	t.Run("empty vector", func(t *testing.T) {
		mockEmb := new(MockEmbedder)
		service := &OllamaEmbeddingService{embedder: mockEmb}
		mockEmb.On("EmbedQuery", ctx, "Tax Law").Return([]float32{}, nil).Once()

		_, err := service.Generate(ctx, "Tax Law")

		assert.Error(t, err)
	})
}

func TestOllamaEmbeddingService_GenerateBatch(t *testing.T) {
	ctx := context.Background()
	labels := []string{"Tax Law", "Family Law"}

	t.Run("preserves order", func(t *testing.T) {
		mockEmb := new(MockEmbedder)
		service := &OllamaEmbeddingService{embedder: mockEmb}
		mockEmb.On("EmbedDocuments", ctx, labels).Return([][]float32{{1, 0}, {0, 1}}, nil).Once()

		result, err := service.GenerateBatch(ctx, labels)

		assert.NoError(t, err)
		assert.Equal(t, [][]float32{{1, 0}, {0, 1}}, result)
		mockEmb.AssertExpectations(t)
	})

	t.Run("count mismatch", func(t *testing.T) {
		mockEmb := new(MockEmbedder)
		service := &OllamaEmbeddingService{embedder: mockEmb}
		mockEmb.On("EmbedDocuments", ctx, labels).Return([][]float32{{1, 0}}, nil).Once()

		_, err := service.GenerateBatch(ctx, labels)

		assert.ErrorContains(t, err, "1 embeddings for 2 texts")
	})

	t.Run("empty input", func(t *testing.T) {
		service := &OllamaEmbeddingService{embedder: new(MockEmbedder)}
		result, err := service.GenerateBatch(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("blank label", func(t *testing.T) {
		service := &OllamaEmbeddingService{embedder: new(MockEmbedder)}
		_, err := service.GenerateBatch(ctx, []string{"Tax Law", ""})
		assert.ErrorContains(t, err, "input text 1")
	})
}
