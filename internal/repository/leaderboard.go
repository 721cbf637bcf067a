package repository

import (
	"context"
	"fmt"

	"tftladder/ingestion/internal/models"

	"github.com/rs/zerolog/log"
)

// LeaderboardRepository handles leaderboard snapshot database operations
type LeaderboardRepository struct {
	db *Database
}

// ReplaceSnapshot replaces the whole leaderboard with a new snapshot in one
// transaction. This is a full replace, not an upsert: rank positions must
// reflect exactly one coherent fetch, so stale rows cannot be left behind.
func (r *LeaderboardRepository) ReplaceSnapshot(ctx context.Context, entries []models.LeaderboardEntry) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin leaderboard transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM leaderboard_entry`); err != nil {
		return fmt.Errorf("failed to clear leaderboard: %w", err)
	}

	query := `
		INSERT INTO leaderboard_entry (
			player_name, tag_line, region, tier, division, league_points,
			wins, losses, games_played, average_placement, win_rate,
			rank_position, fetched_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	for _, e := range entries {
		_, err := tx.Exec(ctx, query,
			e.PlayerName, e.TagLine, e.Region, e.Tier, e.Division,
			e.LeaguePoints, e.Wins, e.Losses, e.GamesPlayed,
			e.AveragePlacement, e.WinRate, e.RankPosition, e.FetchedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert leaderboard entry %d: %w", e.RankPosition, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit leaderboard snapshot: %w", err)
	}

	log.Info().Int("count", len(entries)).Msg("Leaderboard snapshot replaced")
	return nil
}

// List retrieves the current snapshot in rank order
func (r *LeaderboardRepository) List(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	query := `
		SELECT id, player_name, tag_line, region, tier, division,
		       league_points, wins, losses, games_played, average_placement,
		       win_rate, rank_position, fetched_at
		FROM leaderboard_entry
		ORDER BY rank_position
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		err := rows.Scan(
			&e.ID, &e.PlayerName, &e.TagLine, &e.Region, &e.Tier, &e.Division,
			&e.LeaguePoints, &e.Wins, &e.Losses, &e.GamesPlayed,
			&e.AveragePlacement, &e.WinRate, &e.RankPosition, &e.FetchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leaderboard: %w", err)
	}

	return entries, nil
}

// Count returns the number of rows in the current snapshot
func (r *LeaderboardRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM leaderboard_entry`

	var count int
	err := r.db.Pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leaderboard entries: %w", err)
	}

	return count, nil
}
