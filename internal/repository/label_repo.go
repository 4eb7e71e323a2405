package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LabelRepo struct {
	db *pgxpool.Pool
}

func NewLabelRepo(db *pgxpool.Pool) *LabelRepo {
	return &LabelRepo{db: db}
}

// ListAliases returns every alias token with its canonical label
func (r *LabelRepo) ListAliases(ctx context.Context) (map[string]string, error) {
	query := `
		SELECT "Token", "CanonicalLabel"
		FROM "LABEL_ALIAS"
		ORDER BY "Token"
	`
	return r.loadPairs(ctx, query)
}

// ListCatalogImages returns every canonical label with its image reference
func (r *LabelRepo) ListCatalogImages(ctx context.Context) (map[string]string, error) {
	query := `
		SELECT "Label", "ImageRef"
		FROM "CATALOG_IMAGE"
		ORDER BY "Label"
	`
	return r.loadPairs(ctx, query)
}

func (r *LabelRepo) loadPairs(ctx context.Context, query string) (map[string]string, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query label table: %w", err)
	}
	defer rows.Close()

	pairs := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		pairs[key] = value
	}

	return pairs, rows.Err()
}
