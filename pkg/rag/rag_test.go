package rag_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-ai/agora/internal/models"
	"github.com/agora-ai/agora/pkg/rag"
	"github.com/agora-ai/agora/pkg/store"
)

type fakeEmbedder struct {
	vec []float32
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return f.vec, f.err
}

type failingStore struct{}

func (failingStore) Put(ctx context.Context, chunk models.Chunk, embedding []float32) error {
	return errors.New("store down")
}

func (failingStore) GetAllForAuthor(ctx context.Context, philosopherID string) ([]models.EmbeddingRecord, error) {
	return nil, errors.New("store down")
}

func (failingStore) Close() {}

func seedStore(t *testing.T, s *store.MemoryStore, philosopherID string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		chunk := models.Chunk{
			Content:       fmt.Sprintf("excerpt %d", i),
			Source:        fmt.Sprintf("source-%d.txt", i),
			ChunkIndex:    i,
			PhilosopherID: philosopherID,
		}
		require.NoError(t, s.Put(context.Background(), chunk, []float32{1, float32(i)}))
	}
}

func TestRetrieveForAuthor_NoRecordsForAuthor(t *testing.T) {
	mem := store.NewMemoryStore()
	seedStore(t, mem, "socrates", 5)

	o := rag.New(&fakeEmbedder{vec: []float32{1, 0}}, mem, 3)
	result := o.RetrieveForAuthor(context.Background(), "What is justice?", "plato", 3)

	assert.False(t, result.HasContext)
	assert.Empty(t, result.Context)
	assert.Empty(t, result.Sources)
}

func TestRetrieveForAuthor_BuildsNumberedContext(t *testing.T) {
	mem := store.NewMemoryStore()
	ctx := context.Background()

	put := func(content, source string, vec []float32) {
		chunk := models.Chunk{Content: content, Source: source, PhilosopherID: "socrates"}
		require.NoError(t, mem.Put(ctx, chunk, vec))
	}
	put("the unexamined life", "apology.txt", []float32{1, 0})
	put("know thyself", "apology.txt", []float32{0.9, 0.1})
	put("on courage", "laches.txt", []float32{0, 1})

	o := rag.New(&fakeEmbedder{vec: []float32{1, 0}}, mem, 2)
	result := o.RetrieveForAuthor(ctx, "How should one live?", "socrates", 2)

	require.True(t, result.HasContext)
	assert.Equal(t,
		"[1] From apology.txt:\nthe unexamined life\n\n[2] From apology.txt:\nknow thyself",
		result.Context)
	// Duplicate sources collapse.
	assert.Equal(t, []string{"apology.txt"}, result.Sources)
}

func TestRetrieveForAuthor_SourcesInRankedOrder(t *testing.T) {
	mem := store.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, mem.Put(ctx,
		models.Chunk{Content: "far", Source: "b.txt", PhilosopherID: "plato"}, []float32{0, 1}))
	require.NoError(t, mem.Put(ctx,
		models.Chunk{Content: "near", Source: "a.txt", PhilosopherID: "plato"}, []float32{1, 0}))

	o := rag.New(&fakeEmbedder{vec: []float32{1, 0}}, mem, 3)
	result := o.RetrieveForAuthor(ctx, "q", "plato", 3)

	assert.Equal(t, []string{"a.txt", "b.txt"}, result.Sources)
}

func TestRetrieveForAuthor_EmbedFailureDegrades(t *testing.T) {
	mem := store.NewMemoryStore()
	seedStore(t, mem, "socrates", 2)

	o := rag.New(&fakeEmbedder{err: errors.New("quota exceeded")}, mem, 3)
	result := o.RetrieveForAuthor(context.Background(), "q", "socrates", 3)

	assert.False(t, result.HasContext)
	assert.Empty(t, result.Sources)
}

func TestRetrieveForAuthor_EmptyEmbeddingDegrades(t *testing.T) {
	mem := store.NewMemoryStore()
	seedStore(t, mem, "socrates", 2)

	o := rag.New(&fakeEmbedder{vec: []float32{}}, mem, 3)
	result := o.RetrieveForAuthor(context.Background(), "q", "socrates", 3)

	assert.False(t, result.HasContext)
}

func TestRetrieveForAuthor_StoreFailureDegrades(t *testing.T) {
	o := rag.New(&fakeEmbedder{vec: []float32{1, 0}}, failingStore{}, 3)
	result := o.RetrieveForAuthor(context.Background(), "q", "socrates", 3)

	assert.False(t, result.HasContext)
	assert.Empty(t, result.Context)
}

func TestRetrieveForAuthor_TopKLimitsBlocks(t *testing.T) {
	mem := store.NewMemoryStore()
	seedStore(t, mem, "socrates", 6)

	o := rag.New(&fakeEmbedder{vec: []float32{1, 0}}, mem, 2)
	result := o.RetrieveForAuthor(context.Background(), "q", "socrates", 2)

	require.True(t, result.HasContext)
	assert.NotContains(t, result.Context, "[3]")
}

func TestBuildPanel_EthicsQuestion(t *testing.T) {
	o := rag.New(&fakeEmbedder{vec: []float32{1, 0}}, store.NewMemoryStore(), 3)

	detection, selection := o.BuildPanel("What is virtue and the good life?", "all", "all")

	themeNames := make([]string, 0, len(detection.Themes))
	for _, th := range detection.Themes {
		themeNames = append(themeNames, th.Name)
	}
	assert.Contains(t, themeNames, "ethics")
	assert.GreaterOrEqual(t, len(selection.PhilosopherIDs), 2)
	assert.LessOrEqual(t, len(selection.PhilosopherIDs), 6)
	assert.False(t, selection.FiltersExpanded)
}
