package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tftladder/ingestion/internal/metrics"
	"tftladder/ingestion/internal/models"
	"tftladder/ingestion/internal/normalize"

	"github.com/rs/zerolog/log"
)

// RefreshLeaderboard rebuilds the ladder snapshot. All three apex tiers must
// fetch successfully before anything is written: rank positions are a running
// counter across tiers, so a partial snapshot would shift every position
// below the gap. Riot-ID resolution is best-effort per entry; an unresolved
// entry keeps its opaque summoner id as the display name.
func (s *Scheduler) RefreshLeaderboard(ctx context.Context) error {
	lists := make([]*models.LeagueListResponse, 0, len(models.LeaderboardTiers))
	for _, tier := range models.LeaderboardTiers {
		list, err := s.client.FetchLeagueTier(ctx, tier)
		if err != nil {
			return fmt.Errorf("leaderboard refresh aborted: %w", err)
		}

		log.Debug().
			Str("tier", tier).
			Int("entries", len(list.Entries)).
			Msg("League tier fetched")

		lists = append(lists, list)
	}

	s.resolveRiotIDs(ctx, lists)

	entries := normalize.Leaderboard(lists, strings.ToUpper(s.cfg.RiotRegion), time.Now().UTC())
	if err := s.db.Leaderboard.ReplaceSnapshot(ctx, entries); err != nil {
		return fmt.Errorf("leaderboard refresh failed: %w", err)
	}

	metrics.LeaderboardSize.Set(float64(len(entries)))
	return nil
}

// resolveRiotIDs fills in game name and tag line for league entries via the
// account endpoint. Lookup failures are logged and left empty.
func (s *Scheduler) resolveRiotIDs(ctx context.Context, lists []*models.LeagueListResponse) {
	resolved, failed := 0, 0

	for _, list := range lists {
		if list == nil {
			continue
		}
		for i := range list.Entries {
			entry := &list.Entries[i]
			if entry.PUUID == "" {
				continue
			}

			account, err := s.client.FetchAccountByPUUID(ctx, entry.PUUID)
			if err != nil {
				log.Debug().Err(err).Str("puuid", entry.PUUID).Msg("Account lookup failed")
				metrics.ErrorsTotal.WithLabelValues("client", "account_lookup").Inc()
				failed++
				continue
			}

			entry.GameName = account.GameName
			entry.TagLine = account.TagLine
			resolved++
		}
	}

	log.Info().
		Int("resolved", resolved).
		Int("failed", failed).
		Msg("Leaderboard riot IDs resolved")
}
