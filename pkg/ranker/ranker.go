package ranker

import (
	"math"
	"sort"

	"github.com/agora-ai/agora/internal/models"
)

// DefaultTopK is the number of records returned when the caller passes a
// non-positive topK.
const DefaultTopK = 3

// ScoredRecord pairs a stored record with its similarity to the query.
type ScoredRecord struct {
	models.EmbeddingRecord
	Score float64
}

// CosineSimilarity computes dot(a,b) / (|a|*|b|). Mismatched lengths and
// zero-norm vectors score 0 rather than erroring.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// Rank orders candidates by descending cosine similarity to the query
// vector and returns up to topK of them. Ties keep store order. An empty
// candidate set yields an empty result, not an error.
func Rank(query []float32, candidates []models.EmbeddingRecord, topK int) []ScoredRecord {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if len(candidates) == 0 {
		return nil
	}

	scored := make([]ScoredRecord, len(candidates))
	for i, c := range candidates {
		scored[i] = ScoredRecord{
			EmbeddingRecord: c,
			Score:           CosineSimilarity(query, c.Embedding),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK > len(scored) {
		topK = len(scored)
	}
	return scored[:topK]
}
