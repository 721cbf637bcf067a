package scheduler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"tftladder/ingestion/internal/client"
	"tftladder/ingestion/internal/config"
	"tftladder/ingestion/internal/metrics"
	"tftladder/ingestion/internal/models"
	"tftladder/ingestion/internal/normalize"

	"github.com/rs/zerolog/log"
)

// RefreshPlayers ingests the tracked players: one profile fetch per player,
// normalized into player, match, participation, unit-pick and rank-history
// rows, followed by best-effort companion enrichment from match details.
// A failing player is logged and skipped so one bad account cannot starve
// the rest; a rate-limit response aborts the cycle since further calls would
// only burn the quota.
func (s *Scheduler) RefreshPlayers(ctx context.Context) error {
	tracked := s.cfg.TrackedPlayers
	if len(tracked) == 0 {
		log.Warn().Msg("No tracked players configured, skipping player refresh")
		return nil
	}

	opts := client.ProfileOptions{
		Region: strings.ToUpper(s.cfg.RiotRegion),
		Source: s.cfg.ProfileSource,
		Set:    s.cfg.GameSet,
	}

	failures := 0
	for _, riotID := range tracked {
		if riotID == "" {
			continue
		}

		name, tag, err := config.SplitRiotID(riotID)
		if err != nil {
			log.Error().Err(err).Str("riot_id", riotID).Msg("Skipping invalid tracked player")
			failures++
			continue
		}

		plog := log.With().Str("riot_id", riotID).Logger()

		resp, err := s.client.FetchProfile(ctx, name, tag, opts)
		if errors.Is(err, client.ErrRateLimited) {
			return fmt.Errorf("player refresh aborted at %s: %w", riotID, err)
		}
		if errors.Is(err, client.ErrNotFound) {
			plog.Warn().Msg("Profile not found, skipping player")
			metrics.ErrorsTotal.WithLabelValues("client", "not_found").Inc()
			failures++
			continue
		}
		if err != nil {
			plog.Error().Err(err).Msg("Profile fetch failed, skipping player")
			metrics.ErrorsTotal.WithLabelValues("client", "fetch").Inc()
			failures++
			continue
		}

		records, err := normalize.Profile(resp, name, tag, s.cfg.MatchWindow)
		if err != nil {
			plog.Error().Err(err).Msg("Profile normalization failed, skipping player")
			metrics.ErrorsTotal.WithLabelValues("normalize", "malformed").Inc()
			failures++
			continue
		}

		if err := s.storePlayer(ctx, records); err != nil {
			plog.Error().Err(err).Msg("Failed to store player records")
			metrics.ErrorsTotal.WithLabelValues("repository", "upsert").Inc()
			failures++
			continue
		}

		// Companion data only exists in the match detail endpoint; failures
		// here never fail the player, the profile rows are already committed
		if err := s.ingestCompanions(ctx, records.Player.PUUID); err != nil {
			if errors.Is(err, client.ErrRateLimited) {
				return fmt.Errorf("player refresh aborted at %s: %w", riotID, err)
			}
			plog.Warn().Err(err).Msg("Companion enrichment failed")
		}

		plog.Info().
			Str("tier", records.Player.Tier).
			Int("lp", records.Player.LeaguePoints).
			Int("matches", len(records.Matches)).
			Msg("Player refreshed")
	}

	s.updateIngestionGauges(ctx)

	if failures > 0 {
		return fmt.Errorf("player refresh finished with %d of %d players failed", failures, len(tracked))
	}
	return nil
}

// storePlayer writes one player's normalized records in dependency order:
// matches and the player row first, then the rows that reference them.
func (s *Scheduler) storePlayer(ctx context.Context, records *normalize.ProfileRecords) error {
	for i := range records.Matches {
		if err := s.db.Matches.Upsert(ctx, &records.Matches[i]); err != nil {
			return err
		}
	}

	if err := s.db.Players.Upsert(ctx, &records.Player); err != nil {
		return err
	}

	for i := range records.Participations {
		if err := s.db.Participations.Upsert(ctx, &records.Participations[i]); err != nil {
			return err
		}
	}

	for i := range records.UnitPicks {
		if err := s.db.UnitPicks.Upsert(ctx, &records.UnitPicks[i]); err != nil {
			return err
		}
	}

	return s.db.RankHistory.Append(ctx, records.RankHistory)
}

// ingestCompanions fetches a player's recent match details and stores the
// cosmetic companion rows. Details also carry the authoritative game length,
// which is backfilled onto matches the profile import left without one.
func (s *Scheduler) ingestCompanions(ctx context.Context, puuid string) error {
	ids, err := s.client.FetchMatchIDs(ctx, puuid, s.cfg.MatchWindow)
	if err != nil {
		return err
	}

	for _, id := range ids {
		// Only enrich matches the profile import created; detail payloads
		// for unknown matches would orphan companion rows
		if _, err := s.db.Matches.GetByMatchID(ctx, id); err != nil {
			continue
		}

		detail, err := s.client.FetchMatchDetail(ctx, id)
		if errors.Is(err, client.ErrRateLimited) {
			return err
		}
		if err != nil {
			log.Warn().Err(err).Str("match_id", id).Msg("Match detail fetch failed")
			continue
		}

		if detail.Info.GameLength > 0 {
			err := s.db.Matches.Upsert(ctx, &models.Match{
				MatchID:    id,
				GameLength: sql.NullFloat64{Float64: detail.Info.GameLength, Valid: true},
				EndedAt:    time.UnixMilli(detail.Info.GameDatetime).UTC(),
			})
			if err != nil {
				log.Warn().Err(err).Str("match_id", id).Msg("Game length backfill failed")
			}
		}

		for _, companion := range normalize.Companions(detail) {
			c := companion
			if err := s.db.Companions.Upsert(ctx, &c); err != nil {
				log.Warn().Err(err).Str("match_id", id).Msg("Companion upsert failed")
			}
		}
	}

	return nil
}

func (s *Scheduler) updateIngestionGauges(ctx context.Context) {
	if count, err := s.db.Players.Count(ctx); err == nil {
		metrics.PlayersTracked.Set(float64(count))
	}
	if count, err := s.db.Matches.Count(ctx); err == nil {
		metrics.MatchesIngested.Set(float64(count))
	}
}
