package types

import (
	"context"

	"github.com/agora-ai/agora/internal/models"
)

// Core interfaces
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type VectorStore interface {
	Put(ctx context.Context, chunk models.Chunk, embedding []float32) error
	GetAllForAuthor(ctx context.Context, philosopherID string) ([]models.EmbeddingRecord, error)
	Close()
}

// Generator produces styled text from a system prompt and a user prompt.
// The remote LLM is opaque behind this boundary.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error)
}
