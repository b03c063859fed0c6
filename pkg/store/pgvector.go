package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/agora-ai/agora/internal/models"
)

type VectorStoreConfig struct {
	ConnString string
	TableName  string
	VectorDim  int
}

// VectorStore persists chunks and their vectors in Postgres with pgvector.
// Writes are append-only.
type VectorStore struct {
	config VectorStoreConfig
	pool   *pgxpool.Pool
}

func NewWithConfig(ctx context.Context, config VectorStoreConfig) (*VectorStore, error) {
	if config.TableName == "" {
		config.TableName = "excerpts"
	}
	if config.VectorDim == 0 {
		config.VectorDim = 768 // text-embedding-004
	}

	pool, err := pgxpool.New(ctx, config.ConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	vs := &VectorStore{
		config: config,
		pool:   pool,
	}

	if err := vs.initialize(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return vs, nil
}

func (vs *VectorStore) initialize(ctx context.Context) error {
	_, err := vs.pool.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS vector")
	if err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}

	createTable := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			philosopher_id TEXT NOT NULL,
			source TEXT NOT NULL,
			chunk_index INTEGER NOT NULL,
			content TEXT NOT NULL,
			embedding vector(%d)
		)`, vs.config.TableName, vs.config.VectorDim)

	_, err = vs.pool.Exec(ctx, createTable)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	createAuthorIndex := fmt.Sprintf(`
		CREATE INDEX IF NOT EXISTS %s_philosopher_idx
		ON %s (philosopher_id)`,
		vs.config.TableName, vs.config.TableName)

	_, err = vs.pool.Exec(ctx, createAuthorIndex)
	if err != nil {
		return fmt.Errorf("failed to create philosopher index: %w", err)
	}

	createVectorIndex := fmt.Sprintf(`
		CREATE INDEX IF NOT EXISTS %s_embedding_idx
		ON %s
		USING ivfflat (embedding vector_cosine_ops)
		WITH (lists = 100)`,
		vs.config.TableName, vs.config.TableName)

	_, err = vs.pool.Exec(ctx, createVectorIndex)
	if err != nil {
		return fmt.Errorf("failed to create vector index: %w", err)
	}

	return nil
}

// Put appends one chunk with its vector.
func (vs *VectorStore) Put(ctx context.Context, chunk models.Chunk, embedding []float32) error {
	stmt := fmt.Sprintf(`
		INSERT INTO %s (id, philosopher_id, source, chunk_index, content, embedding)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		vs.config.TableName)

	_, err := vs.pool.Exec(ctx, stmt,
		uuid.NewString(),
		chunk.PhilosopherID,
		chunk.Source,
		chunk.ChunkIndex,
		chunk.Content,
		pgvector.NewVector(embedding),
	)
	if err != nil {
		return fmt.Errorf("failed to insert chunk: %w", err)
	}

	return nil
}

// GetAllForAuthor returns every stored record for one philosopher. No
// ordering is guaranteed; retrieval re-ranks.
func (vs *VectorStore) GetAllForAuthor(ctx context.Context, philosopherID string) ([]models.EmbeddingRecord, error) {
	query := fmt.Sprintf(`
		SELECT philosopher_id, source, chunk_index, content, embedding
		FROM %s
		WHERE philosopher_id = $1`,
		vs.config.TableName)

	rows, err := vs.pool.Query(ctx, query, philosopherID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}
	defer rows.Close()

	var records []models.EmbeddingRecord
	for rows.Next() {
		var rec models.EmbeddingRecord
		var vec pgvector.Vector
		err := rows.Scan(
			&rec.PhilosopherID,
			&rec.Source,
			&rec.ChunkIndex,
			&rec.Content,
			&vec,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		rec.Embedding = vec.Slice()
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (vs *VectorStore) Close() {
	if vs.pool != nil {
		vs.pool.Close()
	}
}
