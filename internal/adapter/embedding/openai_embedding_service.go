package embedding

import (
	"context"
	"fmt"
	"sort"

	"specialty-match/internal/domain"

	"github.com/sashabaranov/go-openai"
)

// OpenAIEmbeddingService implements the domain.EmbeddingService interface using the OpenAI embeddings API.
type OpenAIEmbeddingService struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dimensions int
}

var _ domain.EmbeddingService = (*OpenAIEmbeddingService)(nil)

// NewOpenAIEmbeddingService creates a new OpenAIEmbeddingService.
// dimensions <= 0 keeps the model's native size.
func NewOpenAIEmbeddingService(apiKey, modelName string, dimensions int) (*OpenAIEmbeddingService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	return NewOpenAIEmbeddingServiceWithClient(openai.NewClient(apiKey), modelName, dimensions), nil
}

// NewOpenAIEmbeddingServiceWithClient wraps an already configured client (custom base URL, proxies).
func NewOpenAIEmbeddingServiceWithClient(client *openai.Client, modelName string, dimensions int) *OpenAIEmbeddingService {
	if modelName == "" {
		modelName = string(openai.SmallEmbedding3)
	}
	return &OpenAIEmbeddingService{
		client:     client,
		model:      openai.EmbeddingModel(modelName),
		dimensions: dimensions,
	}
}

// Generate creates an embedding for the given text.
func (s *OpenAIEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("input text cannot be empty for embedding")
	}
	vectors, err := s.create(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// GenerateBatch embeds texts in one request, preserving order.
func (s *OpenAIEmbeddingService) GenerateBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	for i, text := range texts {
		if text == "" {
			return nil, fmt.Errorf("input text %d cannot be empty for embedding", i)
		}
	}
	return s.create(ctx, texts)
}

func (s *OpenAIEmbeddingService) create(ctx context.Context, texts []string) ([][]float32, error) {
	request := openai.EmbeddingRequest{
		Input: texts,
		Model: s.model,
	}
	if s.dimensions > 0 {
		request.Dimensions = s.dimensions
	}

	resp, err := s.client.CreateEmbeddings(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("openai returned %d embeddings for %d texts", len(resp.Data), len(texts))
	}

	data := resp.Data
	sort.SliceStable(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	vectors := make([][]float32, len(data))
	for i, item := range data {
		if len(item.Embedding) == 0 {
			return nil, fmt.Errorf("received empty embedding data from OpenAI for input %d", i)
		}
		vectors[i] = item.Embedding
	}
	return vectors, nil
}
