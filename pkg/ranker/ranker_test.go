package ranker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agora-ai/agora/internal/models"
	"github.com/agora-ai/agora/pkg/ranker"
)

func record(id string, vec []float32) models.EmbeddingRecord {
	return models.EmbeddingRecord{
		Chunk: models.Chunk{
			Content:       id,
			Source:        "test",
			PhilosopherID: "socrates",
		},
		Embedding: vec,
	}
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, ranker.CosineSimilarity([]float32{1, 0}, []float32{1, 0}), 1e-9)
	assert.InDelta(t, 0.0, ranker.CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, ranker.CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-9)
}

func TestCosineSimilarity_ZeroNorm(t *testing.T) {
	// Defined as 0, never NaN.
	assert.Equal(t, 0.0, ranker.CosineSimilarity([]float32{0, 0}, []float32{1, 2}))
	assert.Equal(t, 0.0, ranker.CosineSimilarity([]float32{0, 0}, []float32{0, 0}))
}

func TestCosineSimilarity_MismatchedLength(t *testing.T) {
	assert.Equal(t, 0.0, ranker.CosineSimilarity([]float32{1, 2, 3}, []float32{1, 2}))
}

func TestRank_IdenticalVectorScoresHighest(t *testing.T) {
	query := []float32{0.6, 0.8}
	candidates := []models.EmbeddingRecord{
		record("far", []float32{-0.6, -0.8}),
		record("exact", []float32{0.6, 0.8}),
		record("near", []float32{0.8, 0.6}),
	}

	ranked := ranker.Rank(query, candidates, 3)
	assert.Len(t, ranked, 3)
	assert.Equal(t, "exact", ranked[0].Content)
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-6)
	assert.Equal(t, "near", ranked[1].Content)
	assert.Equal(t, "far", ranked[2].Content)
}

func TestRank_StableOnTies(t *testing.T) {
	query := []float32{1, 0}
	// Equal scores must keep store order.
	candidates := []models.EmbeddingRecord{
		record("first", []float32{0, 1}),
		record("second", []float32{0, 1}),
		record("third", []float32{0, 1}),
	}

	ranked := ranker.Rank(query, candidates, 3)
	assert.Equal(t, "first", ranked[0].Content)
	assert.Equal(t, "second", ranked[1].Content)
	assert.Equal(t, "third", ranked[2].Content)
}

func TestRank_EmptyCandidates(t *testing.T) {
	ranked := ranker.Rank([]float32{1, 0}, nil, 3)
	assert.Empty(t, ranked)
}

func TestRank_TopKBounds(t *testing.T) {
	query := []float32{1, 0}
	candidates := []models.EmbeddingRecord{
		record("a", []float32{1, 0}),
		record("b", []float32{0.9, 0.1}),
	}

	assert.Len(t, ranker.Rank(query, candidates, 1), 1)
	assert.Len(t, ranker.Rank(query, candidates, 10), 2)
	// Non-positive topK falls back to the default.
	assert.Len(t, ranker.Rank(query, candidates, 0), 2)
}
