package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates the PostgreSQL indexes Ent schemas cannot
// express: GIN full-text search on claim text, the pgvector embedding column
// with its ANN index, and the partial unique index backing task bus
// unique-key deduplication.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for claim text full-text search (Spanish configuration)
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_claims_text_gin
		ON claims USING gin(to_tsvector('spanish', text))`)
	if err != nil {
		return fmt.Errorf("failed to create claim text GIN index: %w", err)
	}

	// pgvector embedding column + ANN index. Embeddings are unit-norm, so
	// cosine distance and inner product rank identically.
	_, err = db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS vector`)
	if err != nil {
		return fmt.Errorf("failed to create pgvector extension: %w", err)
	}
	_, err = db.ExecContext(ctx,
		`ALTER TABLE claims ADD COLUMN IF NOT EXISTS embedding vector(768)`)
	if err != nil {
		return fmt.Errorf("failed to add embedding column: %w", err)
	}
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_claims_embedding
		ON claims USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100)`)
	if err != nil {
		return fmt.Errorf("failed to create embedding index: %w", err)
	}

	// Unique-key dedup for the task bus: only unfinished tasks participate.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS tasks_unique_key_unfinished
		ON tasks (unique_key)
		WHERE unique_key IS NOT NULL AND status IN ('pending', 'running')`)
	if err != nil {
		return fmt.Errorf("failed to create task unique-key index: %w", err)
	}

	return nil
}
