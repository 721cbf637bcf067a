package models

import (
	"database/sql"
	"time"
)

// Ladder tiers served by the per-tier league endpoints, in leaderboard order
const (
	TierChallenger  = "CHALLENGER"
	TierGrandmaster = "GRANDMASTER"
	TierMaster      = "MASTER"
	TierUnranked    = "UNRANKED"
)

// LeaderboardTiers is the fixed fetch/processing order. Rank positions are
// assigned as a running counter across tiers in exactly this order.
var LeaderboardTiers = []string{TierChallenger, TierGrandmaster, TierMaster}

// LeaderboardEntry is one row of the ladder snapshot. The table holds exactly
// one snapshot at a time; each refresh replaces it wholesale so positions
// always reflect a single coherent fetch.
type LeaderboardEntry struct {
	ID           int            `db:"id"`
	PlayerName   string         `db:"player_name"`
	TagLine      string         `db:"tag_line"`
	Region       string         `db:"region"`
	Tier         string         `db:"tier"`
	Division     sql.NullString `db:"division"`
	LeaguePoints int            `db:"league_points"`
	Wins         int            `db:"wins"`
	Losses       int            `db:"losses"`
	GamesPlayed  int            `db:"games_played"`

	// AveragePlacement is estimated from win rate, not measured; the league
	// endpoints carry no per-match data
	AveragePlacement float64 `db:"average_placement"`
	WinRate          float64 `db:"win_rate"`
	RankPosition     int     `db:"rank_position"`

	FetchedAt time.Time `db:"fetched_at"`
}

// LeagueListResponse is the raw shape of a per-tier league endpoint
type LeagueListResponse struct {
	Tier    string       `json:"tier"`
	Entries []LeagueItem `json:"entries"`
}

// LeagueItem is one player's entry in a league list
type LeagueItem struct {
	SummonerID   string `json:"summonerId"`
	PUUID        string `json:"puuid"`
	Rank         string `json:"rank"` // division numeral, "I".."IV"
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`

	// Resolved via account lookup after the league fetch; empty when the
	// lookup failed for this entry
	GameName string `json:"-"`
	TagLine  string `json:"-"`
}
