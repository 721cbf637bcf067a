package repository

import (
	"context"
	"errors"
	"fmt"

	"tftladder/ingestion/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// PlayerRepository handles player database operations
type PlayerRepository struct {
	db *Database
}

// Upsert inserts or updates a player keyed by puuid. Every mutable column is
// overwritten with the incoming value (last-write-wins); the pipeline runs
// serially so there is no concurrent writer to race with.
func (r *PlayerRepository) Upsert(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO player (
			puuid, game_name, tag_line, tier, division, league_points,
			games_played, wins, losses, average_placement, top_four_rate
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (puuid) DO UPDATE SET
			game_name = EXCLUDED.game_name,
			tag_line = EXCLUDED.tag_line,
			tier = EXCLUDED.tier,
			division = EXCLUDED.division,
			league_points = EXCLUDED.league_points,
			games_played = EXCLUDED.games_played,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			average_placement = EXCLUDED.average_placement,
			top_four_rate = EXCLUDED.top_four_rate,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := r.db.Pool.QueryRow(
		ctx, query,
		player.PUUID, player.GameName, player.TagLine, player.Tier,
		player.Division, player.LeaguePoints, player.GamesPlayed,
		player.Wins, player.Losses, player.AveragePlacement, player.TopFourRate,
	).Scan(&player.CreatedAt, &player.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert player: %w", err)
	}

	log.Debug().
		Str("puuid", player.PUUID).
		Str("riot_id", player.GameName+"#"+player.TagLine).
		Str("tier", player.Tier).
		Int("lp", player.LeaguePoints).
		Msg("Player upserted")

	return nil
}

// GetByPUUID retrieves a player by puuid
func (r *PlayerRepository) GetByPUUID(ctx context.Context, puuid string) (*models.Player, error) {
	query := `
		SELECT puuid, game_name, tag_line, tier, division, league_points,
		       games_played, wins, losses, average_placement, top_four_rate,
		       created_at, updated_at
		FROM player
		WHERE puuid = $1
	`

	var player models.Player
	err := r.db.Pool.QueryRow(ctx, query, puuid).Scan(
		&player.PUUID, &player.GameName, &player.TagLine, &player.Tier,
		&player.Division, &player.LeaguePoints, &player.GamesPlayed,
		&player.Wins, &player.Losses, &player.AveragePlacement,
		&player.TopFourRate, &player.CreatedAt, &player.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("player not found: puuid=%s", puuid)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &player, nil
}

// GetByRiotID retrieves a player by display name and tag
func (r *PlayerRepository) GetByRiotID(ctx context.Context, gameName, tagLine string) (*models.Player, error) {
	query := `
		SELECT puuid, game_name, tag_line, tier, division, league_points,
		       games_played, wins, losses, average_placement, top_four_rate,
		       created_at, updated_at
		FROM player
		WHERE game_name = $1 AND tag_line = $2
	`

	var player models.Player
	err := r.db.Pool.QueryRow(ctx, query, gameName, tagLine).Scan(
		&player.PUUID, &player.GameName, &player.TagLine, &player.Tier,
		&player.Division, &player.LeaguePoints, &player.GamesPlayed,
		&player.Wins, &player.Losses, &player.AveragePlacement,
		&player.TopFourRate, &player.CreatedAt, &player.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("player not found: %s#%s", gameName, tagLine)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &player, nil
}

// List retrieves all tracked players
func (r *PlayerRepository) List(ctx context.Context) ([]*models.Player, error) {
	query := `
		SELECT puuid, game_name, tag_line, tier, division, league_points,
		       games_played, wins, losses, average_placement, top_four_rate,
		       created_at, updated_at
		FROM player
		ORDER BY league_points DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		var player models.Player
		err := rows.Scan(
			&player.PUUID, &player.GameName, &player.TagLine, &player.Tier,
			&player.Division, &player.LeaguePoints, &player.GamesPlayed,
			&player.Wins, &player.Losses, &player.AveragePlacement,
			&player.TopFourRate, &player.CreatedAt, &player.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, &player)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating players: %w", err)
	}

	return players, nil
}

// Count returns the total number of players
func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM player`

	var count int
	err := r.db.Pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}

	return count, nil
}
