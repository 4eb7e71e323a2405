package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"robowarehouse/internal/labels"
)

var schema = []struct {
	name string
	sql  string
}{
	{"LABEL_ALIAS", `
		CREATE TABLE IF NOT EXISTS "LABEL_ALIAS" (
			"Token" VARCHAR(64) PRIMARY KEY,
			"CanonicalLabel" VARCHAR(64) NOT NULL,
			"CreatedAt" TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`},
	{"CATALOG_IMAGE", `
		CREATE TABLE IF NOT EXISTS "CATALOG_IMAGE" (
			"Label" VARCHAR(64) PRIMARY KEY,
			"ImageRef" TEXT NOT NULL,
			"CreatedAt" TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`},
}

// RunMigrations creates the label tables and seeds the bundled entries.
// Existing rows are left untouched.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt.sql); err != nil {
			return fmt.Errorf("failed to create %s table: %w", stmt.name, err)
		}
	}

	batch := &pgx.Batch{}
	for token, canonical := range labels.DefaultAliases() {
		batch.Queue(`
			INSERT INTO "LABEL_ALIAS" ("Token", "CanonicalLabel")
			VALUES ($1, $2)
			ON CONFLICT ("Token") DO NOTHING
		`, token, canonical)
	}
	for label, ref := range labels.DefaultCatalogImages() {
		batch.Queue(`
			INSERT INTO "CATALOG_IMAGE" ("Label", "ImageRef")
			VALUES ($1, $2)
			ON CONFLICT ("Label") DO NOTHING
		`, label, ref)
	}

	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to seed label tables: %w", err)
	}

	return nil
}
