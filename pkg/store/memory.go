package store

import (
	"context"
	"sync"

	"github.com/agora-ai/agora/internal/models"
)

// MemoryStore is an in-memory vector store useful for tests and local runs
// without Postgres. Records keep insertion order per philosopher.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]models.EmbeddingRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]models.EmbeddingRecord),
	}
}

func (m *MemoryStore) Put(_ context.Context, chunk models.Chunk, embedding []float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	vec := make([]float32, len(embedding))
	copy(vec, embedding)

	m.records[chunk.PhilosopherID] = append(m.records[chunk.PhilosopherID], models.EmbeddingRecord{
		Chunk:     chunk,
		Embedding: vec,
	})
	return nil
}

func (m *MemoryStore) GetAllForAuthor(_ context.Context, philosopherID string) ([]models.EmbeddingRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.records[philosopherID]
	out := make([]models.EmbeddingRecord, len(stored))
	copy(out, stored)
	return out, nil
}

func (m *MemoryStore) Close() {}
