package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tftladder/ingestion/internal/client"
	"tftladder/ingestion/internal/metrics"
	"tftladder/ingestion/internal/models"
	"tftladder/ingestion/internal/normalize"

	"github.com/rs/zerolog/log"
)

// lastStaticVersionKey caches the last fully ingested catalog version so an
// unchanged patch skips the whole flow
const lastStaticVersionKey = "static:last_version"

// RefreshStaticData ingests the versioned asset catalogs (champions, items,
// traits, augments, tacticians) for the current game version. Assets are
// upserted under their version and never deleted, so older patches remain
// queryable. The version marker is only recorded after every category
// succeeded; a partial run retries in full on the next tick.
func (s *Scheduler) RefreshStaticData(ctx context.Context) error {
	version, err := s.client.FetchLatestVersion(ctx)
	if err != nil {
		return fmt.Errorf("static refresh aborted: %w", err)
	}

	if cached, err := s.cache.Get(ctx, lastStaticVersionKey); err == nil && cached == version {
		log.Info().Str("version", version).Msg("Static data unchanged, skipping refresh")
		return nil
	}

	now := time.Now().UTC()
	failures := 0
	for _, category := range models.AssetCategories {
		catalog, err := s.client.FetchStaticCatalog(ctx, category, version)
		if errors.Is(err, client.ErrNotFound) {
			// Not every category ships with every version; augments in
			// particular come and go between sets
			log.Debug().
				Str("category", string(category)).
				Str("version", version).
				Msg("Catalog absent for this version")
			continue
		}
		if err != nil {
			log.Error().Err(err).Str("category", string(category)).Msg("Catalog fetch failed")
			metrics.ErrorsTotal.WithLabelValues("client", "catalog").Inc()
			failures++
			continue
		}

		assets := normalize.Catalog(catalog, category, version, s.client.BaseURL(), now)
		if err := s.db.StaticAssets.UpsertBatch(ctx, assets); err != nil {
			log.Error().Err(err).Str("category", string(category)).Msg("Catalog upsert failed")
			metrics.ErrorsTotal.WithLabelValues("repository", "catalog").Inc()
			failures++
			continue
		}

		metrics.StaticAssetsIngested.WithLabelValues(string(category)).Add(float64(len(assets)))
	}

	if failures > 0 {
		return fmt.Errorf("static refresh incomplete for version %s: %d categories failed", version, failures)
	}

	if err := s.cache.Set(ctx, lastStaticVersionKey, version, 0); err != nil {
		log.Warn().Err(err).Msg("Failed to record static data version")
	}

	log.Info().Str("version", version).Msg("Static data refreshed")
	return nil
}
