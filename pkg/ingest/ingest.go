package ingest

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/time/rate"

	"github.com/agora-ai/agora/internal/catalog"
	"github.com/agora-ai/agora/internal/models"
	"github.com/agora-ai/agora/internal/types"
	"github.com/agora-ai/agora/pkg/segmenter"
)

type IngestConfig struct {
	ChunkSize    int
	ChunkOverlap int
	RateLimit    float64 // embedding calls per second
	OnChunk      func(source string, index, total int)
}

// Ingestor turns source text files into stored embedding records. It is a
// long-running batch: chunks are processed sequentially under a rate
// limiter, and a chunk whose embedding keeps failing is skipped and logged
// rather than aborting the source.
type Ingestor struct {
	config   IngestConfig
	embedder types.Embedder
	store    types.VectorStore
	limiter  *rate.Limiter
}

func NewWithConfig(embedder types.Embedder, store types.VectorStore, config IngestConfig) *Ingestor {
	if config.ChunkSize == 0 {
		config.ChunkSize = 1000
	}
	if config.ChunkOverlap == 0 {
		config.ChunkOverlap = 100
	}
	if config.RateLimit == 0 {
		config.RateLimit = 2
	}

	return &Ingestor{
		config:   config,
		embedder: embedder,
		store:    store,
		limiter:  rate.NewLimiter(rate.Limit(config.RateLimit), 1),
	}
}

// FileResult summarizes one ingested source file.
type FileResult struct {
	Source  string
	Chunks  int
	Stored  int
	Skipped int
}

// IngestFile segments one work and stores a record per successfully
// embedded chunk. Chunk indexes are positional within the source and
// stable across runs.
func (ing *Ingestor) IngestFile(ctx context.Context, philosopherID, path string) (FileResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	source := strings.TrimSuffix(filepath.Base(path), ".txt")
	text := segmenter.StripGutenberg(string(raw))
	chunks := segmenter.Window(text, ing.config.ChunkSize, ing.config.ChunkOverlap)

	result := FileResult{Source: source, Chunks: len(chunks)}

	for i, content := range chunks {
		if err := ing.limiter.Wait(ctx); err != nil {
			return result, err
		}

		embedding, err := ing.embedder.Embed(ctx, content)
		if err != nil {
			log.Printf("warn: skipping chunk %d of %s: %v", i, source, err)
			result.Skipped++
			continue
		}

		chunk := models.Chunk{
			Content:       content,
			Source:        source,
			ChunkIndex:    i,
			PhilosopherID: philosopherID,
		}
		if err := ing.store.Put(ctx, chunk, embedding); err != nil {
			log.Printf("warn: failed to store chunk %d of %s: %v", i, source, err)
			result.Skipped++
			continue
		}

		result.Stored++
		if ing.config.OnChunk != nil {
			ing.config.OnChunk(source, i, len(chunks))
		}
	}

	return result, nil
}

// IngestDir walks a directory laid out as <dir>/<philosopherID>/<work>.txt
// and ingests every text file whose philosopher id appears in the catalog.
func (ing *Ingestor) IngestDir(ctx context.Context, dir string) ([]FileResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var results []FileResult
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		philosopherID := entry.Name()
		if _, ok := catalog.PhilosopherByID(philosopherID); !ok {
			log.Printf("warn: skipping %s: not in the philosopher catalog", philosopherID)
			continue
		}

		files, err := filepath.Glob(filepath.Join(dir, philosopherID, "*.txt"))
		if err != nil {
			return results, err
		}

		for _, path := range files {
			result, err := ing.IngestFile(ctx, philosopherID, path)
			if err != nil {
				return results, err
			}
			results = append(results, result)
		}
	}

	return results, nil
}
