package util

import (
	"fmt"
	"math"
	"sort"

	"specialty-match/internal/domain"
)

// CosineSimilarity calculates the cosine similarity between two float32 vectors.
// A zero-magnitude vector yields 0.
func CosineSimilarity(vec1 []float32, vec2 []float32) (float64, error) {
	if len(vec1) == 0 || len(vec2) == 0 {
		return 0, fmt.Errorf("input vectors cannot be empty")
	}
	if len(vec1) != len(vec2) {
		return 0, fmt.Errorf("vector dimensions do not match: %d vs %d", len(vec1), len(vec2))
	}

	var dotProduct float64
	var mag1Squared float64
	var mag2Squared float64

	for i := 0; i < len(vec1); i++ {
		a, b := float64(vec1[i]), float64(vec2[i])
		dotProduct += a * b
		mag1Squared += a * a
		mag2Squared += b * b
	}

	mag1 := math.Sqrt(mag1Squared)
	mag2 := math.Sqrt(mag2Squared)

	if mag1 == 0 || mag2 == 0 {
		return 0, nil
	}

	return dotProduct / (mag1 * mag2), nil
}

// RankBySimilarity scores every candidate against query, sorts by score descending
// (ties keep candidate order), drops candidates named exclude and keeps at most limit.
// limit <= 0 keeps everything.
func RankBySimilarity(query []float32, candidates []*domain.Specialty, exclude string, limit int) ([]domain.Match, error) {
	scored := make([]domain.Match, 0, len(candidates))
	for _, c := range candidates {
		sim, err := CosineSimilarity(query, c.Embedding)
		if err != nil {
			return nil, fmt.Errorf("failed to score specialty %q: %w", c.Name, err)
		}
		scored = append(scored, domain.Match{Name: c.Name, Score: sim})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	matches := make([]domain.Match, 0, len(scored))
	for _, m := range scored {
		if m.Name == exclude {
			continue
		}
		matches = append(matches, m)
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches, nil
}
