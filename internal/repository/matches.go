package repository

import (
	"context"
	"errors"
	"fmt"

	"tftladder/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// MatchRepository handles match database operations
type MatchRepository struct {
	db *Database
}

// Upsert inserts a match if unseen. Matches are immutable once created; the
// only column a conflict may touch is a previously missing game length,
// which later imports are allowed to backfill.
func (r *MatchRepository) Upsert(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO match (match_id, game_length, ended_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (match_id) DO UPDATE SET
			game_length = COALESCE(match.game_length, EXCLUDED.game_length)
		RETURNING created_at
	`

	err := r.db.Pool.QueryRow(
		ctx, query,
		match.MatchID, match.GameLength, match.EndedAt,
	).Scan(&match.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert match: %w", err)
	}

	return nil
}

// GetByMatchID retrieves a match by its external id
func (r *MatchRepository) GetByMatchID(ctx context.Context, matchID string) (*models.Match, error) {
	query := `
		SELECT match_id, game_length, ended_at, created_at
		FROM match
		WHERE match_id = $1
	`

	var match models.Match
	err := r.db.Pool.QueryRow(ctx, query, matchID).Scan(
		&match.MatchID, &match.GameLength, &match.EndedAt, &match.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("match not found: match_id=%s", matchID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return &match, nil
}

// Count returns the total number of matches
func (r *MatchRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM match`

	var count int
	err := r.db.Pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}

	return count, nil
}

// ParticipationRepository handles match participation database operations
type ParticipationRepository struct {
	db *Database
}

// Upsert inserts or overwrites a participation keyed by (match_id, puuid).
// Re-importing the same match overwrites with identical values, so the
// operation is idempotent.
func (r *ParticipationRepository) Upsert(ctx context.Context, p *models.MatchParticipation) error {
	query := `
		INSERT INTO match_participation (match_id, puuid, placement, league_points)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (match_id, puuid) DO UPDATE SET
			placement = EXCLUDED.placement,
			league_points = EXCLUDED.league_points
	`

	_, err := r.db.Pool.Exec(ctx, query, p.MatchID, p.PUUID, p.Placement, p.LeaguePoints)
	if err != nil {
		return fmt.Errorf("failed to upsert participation: %w", err)
	}

	return nil
}

// ListByPlayer retrieves a player's participations, newest match first
func (r *ParticipationRepository) ListByPlayer(ctx context.Context, puuid string) ([]*models.MatchParticipation, error) {
	query := `
		SELECT mp.match_id, mp.puuid, mp.placement, mp.league_points
		FROM match_participation mp
		JOIN match m ON m.match_id = mp.match_id
		WHERE mp.puuid = $1
		ORDER BY m.ended_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, puuid)
	if err != nil {
		return nil, fmt.Errorf("failed to list participations: %w", err)
	}
	defer rows.Close()

	var participations []*models.MatchParticipation
	for rows.Next() {
		var p models.MatchParticipation
		if err := rows.Scan(&p.MatchID, &p.PUUID, &p.Placement, &p.LeaguePoints); err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		participations = append(participations, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participations: %w", err)
	}

	return participations, nil
}

// UnitPickRepository handles unit pick database operations
type UnitPickRepository struct {
	db *Database
}

// Upsert inserts or overwrites a unit pick keyed by (match_id, puuid, unit_id)
func (r *UnitPickRepository) Upsert(ctx context.Context, u *models.UnitPick) error {
	query := `
		INSERT INTO unit_pick (match_id, puuid, unit_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (match_id, puuid, unit_id) DO UPDATE SET
			quantity = EXCLUDED.quantity
	`

	_, err := r.db.Pool.Exec(ctx, query, u.MatchID, u.PUUID, u.UnitID, u.Quantity)
	if err != nil {
		return fmt.Errorf("failed to upsert unit pick: %w", err)
	}

	return nil
}

// ListByMatch retrieves every unit pick recorded for a match
func (r *UnitPickRepository) ListByMatch(ctx context.Context, matchID string) ([]*models.UnitPick, error) {
	query := `
		SELECT match_id, puuid, unit_id, quantity
		FROM unit_pick
		WHERE match_id = $1
		ORDER BY puuid, unit_id
	`

	rows, err := r.db.Pool.Query(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unit picks: %w", err)
	}
	defer rows.Close()

	var picks []*models.UnitPick
	for rows.Next() {
		var u models.UnitPick
		if err := rows.Scan(&u.MatchID, &u.PUUID, &u.UnitID, &u.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan unit pick: %w", err)
		}
		picks = append(picks, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unit picks: %w", err)
	}

	return picks, nil
}

// CompanionRepository handles match companion database operations
type CompanionRepository struct {
	db *Database
}

// Upsert inserts or overwrites a companion row keyed by (match_id, puuid)
func (r *CompanionRepository) Upsert(ctx context.Context, c *models.MatchCompanion) error {
	query := `
		INSERT INTO match_companion (match_id, puuid, content_id, skin_id, placement)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (match_id, puuid) DO UPDATE SET
			content_id = EXCLUDED.content_id,
			skin_id = EXCLUDED.skin_id,
			placement = EXCLUDED.placement
	`

	_, err := r.db.Pool.Exec(ctx, query, c.MatchID, c.PUUID, c.ContentID, c.SkinID, c.Placement)
	if err != nil {
		return fmt.Errorf("failed to upsert companion: %w", err)
	}

	log.Debug().
		Str("match_id", c.MatchID).
		Str("puuid", c.PUUID).
		Str("content_id", c.ContentID).
		Msg("Companion upserted")

	return nil
}
