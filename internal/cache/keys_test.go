package cache

import (
	"strings"
	"testing"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "embedding",
			objectType:  "ollama",
			identifier:  "abc",
			expectedKey: "specialty:embedding:ollama:abc",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "embedding",
			objectType:  "ollama",
			identifier:  "abc",
			paramsKey:   []string{},
			expectedKey: "specialty:embedding:ollama:abc",
		},
		{
			name:        "with model param",
			serviceName: "embedding",
			objectType:  "openai",
			identifier:  "abc",
			paramsKey:   []string{"text-embedding-3-small"},
			expectedKey: "specialty:embedding:openai:abc:text-embedding-3-small",
		},
		{
			name:        "with multiple params",
			serviceName: "match",
			objectType:  "topk",
			identifier:  "Tax Law",
			paramsKey:   []string{"5", "v2"},
			expectedKey: "specialty:match:topk:Tax Law:5_v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if got != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", got, tt.expectedKey)
			}
		})
	}
}

func TestEmbeddingKey(t *testing.T) {
	a := EmbeddingKey("ollama", "all-minilm", 0, "Tax Law")
	b := EmbeddingKey("ollama", "all-minilm", 0, "Tax Law")
	if a != b {
		t.Errorf("EmbeddingKey not deterministic: %s != %s", a, b)
	}
	if !strings.HasPrefix(a, "specialty:embedding:ollama:") || !strings.HasSuffix(a, ":all-minilm_0") {
		t.Errorf("unexpected key layout: %s", a)
	}
	if strings.Contains(a, "Tax Law") {
		t.Errorf("key should not contain raw text: %s", a)
	}
	if EmbeddingKey("openai", "all-minilm", 0, "Tax Law") == a {
		t.Errorf("keys for different sources should differ")
	}
	if EmbeddingKey("ollama", "nomic-embed-text", 0, "Tax Law") == a {
		t.Errorf("keys for different models should differ")
	}
	if EmbeddingKey("ollama", "all-minilm", 256, "Tax Law") == a {
		t.Errorf("keys for different dimensions should differ")
	}
}
