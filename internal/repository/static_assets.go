package repository

import (
	"context"
	"errors"
	"fmt"

	"tftladder/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// StaticAssetRepository handles versioned reference data operations
type StaticAssetRepository struct {
	db *Database
}

// UpsertBatch inserts or updates assets keyed by (asset_id, category,
// version) inside one transaction. Rows from older versions are never
// deleted, so asset metadata coexists across game patches.
func (r *StaticAssetRepository) UpsertBatch(ctx context.Context, assets []models.StaticAsset) error {
	if len(assets) == 0 {
		return nil
	}

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin static asset transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO static_asset (
			asset_id, category, version, name, description, image_url,
			tier, cost, traits, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (asset_id, category, version) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			image_url = EXCLUDED.image_url,
			tier = EXCLUDED.tier,
			cost = EXCLUDED.cost,
			traits = EXCLUDED.traits,
			updated_at = EXCLUDED.updated_at
	`

	for _, a := range assets {
		_, err := tx.Exec(ctx, query,
			a.AssetID, a.Category, a.Version, a.Name, a.Description,
			a.ImageURL, a.Tier, a.Cost, a.Traits, a.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert asset %s/%s: %w", a.Category, a.AssetID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit static assets: %w", err)
	}

	log.Info().
		Str("category", string(assets[0].Category)).
		Str("version", assets[0].Version).
		Int("count", len(assets)).
		Msg("Static assets upserted")

	return nil
}

// Get retrieves one asset by its natural key
func (r *StaticAssetRepository) Get(ctx context.Context, assetID string, category models.AssetCategory, version string) (*models.StaticAsset, error) {
	query := `
		SELECT asset_id, category, version, name, description, image_url,
		       tier, cost, traits, updated_at
		FROM static_asset
		WHERE asset_id = $1 AND category = $2 AND version = $3
	`

	var asset models.StaticAsset
	err := r.db.Pool.QueryRow(ctx, query, assetID, category, version).Scan(
		&asset.AssetID, &asset.Category, &asset.Version, &asset.Name,
		&asset.Description, &asset.ImageURL, &asset.Tier, &asset.Cost,
		&asset.Traits, &asset.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("asset not found: %s/%s@%s", category, assetID, version)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return &asset, nil
}

// ListVersions returns every distinct version stored for a category
func (r *StaticAssetRepository) ListVersions(ctx context.Context, category models.AssetCategory) ([]string, error) {
	query := `
		SELECT DISTINCT version
		FROM static_asset
		WHERE category = $1
		ORDER BY version DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	defer rows.Close()

	var versions []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		versions = append(versions, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating versions: %w", err)
	}

	return versions, nil
}

// CountByVersion returns the number of assets for a category and version
func (r *StaticAssetRepository) CountByVersion(ctx context.Context, category models.AssetCategory, version string) (int, error) {
	query := `SELECT COUNT(*) FROM static_asset WHERE category = $1 AND version = $2`

	var count int
	err := r.db.Pool.QueryRow(ctx, query, category, version).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}

	return count, nil
}
