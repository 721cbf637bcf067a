package models

import (
	"database/sql"
	"time"
)

// Match represents a single game, shared by up to 8 participants.
// Immutable once created, except that a missing game length may be
// backfilled by a later import.
type Match struct {
	MatchID    string          `db:"match_id"`
	GameLength sql.NullFloat64 `db:"game_length"`
	EndedAt    time.Time       `db:"ended_at"`
	CreatedAt  time.Time       `db:"created_at"`
}

// MatchParticipation links a player to a match, keyed by (match_id, puuid)
type MatchParticipation struct {
	MatchID      string `db:"match_id"`
	PUUID        string `db:"puuid"`
	Placement    int    `db:"placement"`
	LeaguePoints int    `db:"league_points"`
}

// IsWin reports whether the placement counts as a win (top-half convention)
func (p *MatchParticipation) IsWin() bool {
	return p.Placement <= 4
}

// UnitPick records how many copies of one unit a player fielded in a match,
// keyed by (match_id, puuid, unit_id). Quantity is always >= 1; units with
// zero observed count are omitted, not stored.
type UnitPick struct {
	MatchID  string `db:"match_id"`
	PUUID    string `db:"puuid"`
	UnitID   string `db:"unit_id"`
	Quantity int    `db:"quantity"`
}

// MatchCompanion records the cosmetic companion a player brought to a match,
// keyed by (match_id, puuid)
type MatchCompanion struct {
	MatchID   string `db:"match_id"`
	PUUID     string `db:"puuid"`
	ContentID string `db:"content_id"`
	SkinID    int    `db:"skin_id"`
	Placement int    `db:"placement"`
}

// MatchIDsResponse is the raw shape of the match-ids-by-player endpoint
type MatchIDsResponse []string

// MatchDetailResponse is the raw shape of the match detail endpoint
type MatchDetailResponse struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata identifies the match inside a detail response
type MatchMetadata struct {
	MatchID string `json:"match_id"`
}

// MatchInfo carries match-level fields and the participant list
type MatchInfo struct {
	GameLength   float64            `json:"game_length"`
	GameDatetime int64              `json:"game_datetime"` // unix millis
	Participants []MatchParticipant `json:"participants"`
}

// MatchParticipant is one player's slice of a match detail payload
type MatchParticipant struct {
	PUUID     string         `json:"puuid"`
	Placement int            `json:"placement"`
	Companion *CompanionInfo `json:"companion,omitempty"`
}

// CompanionInfo is the cosmetic sub-object; absent for some players
type CompanionInfo struct {
	ContentID string `json:"content_ID"`
	SkinID    int    `json:"skin_ID"`
}
