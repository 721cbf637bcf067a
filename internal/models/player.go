package models

import (
	"database/sql"
	"time"
)

// Player represents a tracked ladder player
type Player struct {
	PUUID        string         `db:"puuid"`
	GameName     string         `db:"game_name"`
	TagLine      string         `db:"tag_line"`
	Tier         string         `db:"tier"`
	Division     sql.NullString `db:"division"`
	LeaguePoints int            `db:"league_points"`
	GamesPlayed  int            `db:"games_played"`
	Wins         int            `db:"wins"`
	Losses       int            `db:"losses"`

	// Computed over the most recent match window
	AveragePlacement sql.NullFloat64 `db:"average_placement"`
	TopFourRate      sql.NullFloat64 `db:"top_four_rate"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RankHistoryPoint is one append-only LP observation, keyed by (puuid, match_id)
type RankHistoryPoint struct {
	PUUID        string         `db:"puuid"`
	MatchID      string         `db:"match_id"`
	LeaguePoints int            `db:"league_points"`
	Tier         string         `db:"tier"`
	Division     sql.NullString `db:"division"`
	RecordedAt   time.Time      `db:"recorded_at"`
}

// ProfileResponse is the raw shape returned by the profile lookup endpoint
type ProfileResponse struct {
	Summoner ProfileSummoner `json:"summoner"`
	Ranked   ProfileRanked   `json:"ranked"`
	Matches  []ProfileMatch  `json:"matches"`
}

// ProfileSummoner identifies the player inside a profile response
type ProfileSummoner struct {
	PUUID string `json:"puuid"`
}

// ProfileRanked carries the free-text rank line ("DIAMOND II 55 LP") and
// the lifetime game count
type ProfileRanked struct {
	RatingText string `json:"rating_text"`
	NumGames   int    `json:"num_games"`
}

// ProfileMatch is one entry of the profile's recent-match list
type ProfileMatch struct {
	RiotMatchID    string              `json:"riot_match_id"`
	MatchTimestamp int64               `json:"match_timestamp"` // unix millis
	GameLength     *float64            `json:"game_length,omitempty"`
	Placement      int                 `json:"placement"`
	Summary        ProfileMatchSummary `json:"summary"`
}

// ProfileMatchSummary holds the per-player summary embedded in a profile match
type ProfileMatchSummary struct {
	PlayerRating string        `json:"player_rating"`
	Units        []ProfileUnit `json:"units"`
}

// ProfileUnit is one fielded unit in a match summary
type ProfileUnit struct {
	CharacterID string `json:"character_id"`
}

// AccountResponse is the account lookup shape used to resolve riot IDs
type AccountResponse struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}
