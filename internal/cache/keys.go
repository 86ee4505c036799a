package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "specialty"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// EmbeddingKey addresses the cached vector of text for one embedding source, model and
// requested dimension count (0 when the model decides).
func EmbeddingKey(source, model string, dimensions int, text string) string {
	sum := sha256.Sum256([]byte(text))
	return GenerateCacheKey("embedding", source, hex.EncodeToString(sum[:]), model, strconv.Itoa(dimensions))
}
