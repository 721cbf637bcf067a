package repository

import (
	"context"
	"fmt"

	"tftladder/ingestion/internal/models"

	"github.com/rs/zerolog/log"
)

// RankHistoryRepository handles append-only LP history operations
type RankHistoryRepository struct {
	db *Database
}

// Append inserts new history points. The table carries an idempotency key on
// (puuid, match_id): re-importing a match the history already covers is a
// no-op, so re-running the player flow never double-appends.
func (r *RankHistoryRepository) Append(ctx context.Context, points []models.RankHistoryPoint) error {
	if len(points) == 0 {
		return nil
	}

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin rank history transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO rank_history (puuid, match_id, league_points, tier, division, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (puuid, match_id) DO NOTHING
	`

	inserted := 0
	for _, p := range points {
		tag, err := tx.Exec(ctx, query,
			p.PUUID, p.MatchID, p.LeaguePoints, p.Tier, p.Division, p.RecordedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to append rank history for %s/%s: %w", p.PUUID, p.MatchID, err)
		}
		inserted += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rank history: %w", err)
	}

	log.Debug().
		Int("offered", len(points)).
		Int("inserted", inserted).
		Msg("Rank history appended")

	return nil
}

// ListByPlayer retrieves a player's history in chronological order
func (r *RankHistoryRepository) ListByPlayer(ctx context.Context, puuid string) ([]*models.RankHistoryPoint, error) {
	query := `
		SELECT puuid, match_id, league_points, tier, division, recorded_at
		FROM rank_history
		WHERE puuid = $1
		ORDER BY recorded_at
	`

	rows, err := r.db.Pool.Query(ctx, query, puuid)
	if err != nil {
		return nil, fmt.Errorf("failed to list rank history: %w", err)
	}
	defer rows.Close()

	var points []*models.RankHistoryPoint
	for rows.Next() {
		var p models.RankHistoryPoint
		err := rows.Scan(&p.PUUID, &p.MatchID, &p.LeaguePoints, &p.Tier, &p.Division, &p.RecordedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rank history point: %w", err)
		}
		points = append(points, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rank history: %w", err)
	}

	return points, nil
}

// CountByPlayer returns the number of history points for a player
func (r *RankHistoryRepository) CountByPlayer(ctx context.Context, puuid string) (int, error) {
	query := `SELECT COUNT(*) FROM rank_history WHERE puuid = $1`

	var count int
	err := r.db.Pool.QueryRow(ctx, query, puuid).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count rank history: %w", err)
	}

	return count, nil
}
