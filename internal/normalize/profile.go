package normalize

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"tftladder/ingestion/internal/models"
)

// ProfileRecords is everything extracted from one profile fetch
type ProfileRecords struct {
	Player         models.Player
	Matches        []models.Match
	Participations []models.MatchParticipation
	UnitPicks      []models.UnitPick
	RankHistory    []models.RankHistoryPoint
}

// Profile maps a raw profile response to database records. At most window
// matches are taken from the head of the match list. Win/loss, average
// placement and top-four rate are plain arithmetic over that window, no
// weighting. Duplicate unit ids within one match aggregate into a single
// UnitPick with the summed quantity.
func Profile(resp *models.ProfileResponse, gameName, tagLine string, window int) (*ProfileRecords, error) {
	if resp == nil || resp.Summoner.PUUID == "" {
		return nil, fmt.Errorf("profile for %s#%s: %w", gameName, tagLine, ErrMalformedData)
	}

	puuid := resp.Summoner.PUUID
	rank := ParseRankText(resp.Ranked.RatingText)

	out := &ProfileRecords{
		Player: models.Player{
			PUUID:        puuid,
			GameName:     gameName,
			TagLine:      tagLine,
			Tier:         rank.Tier,
			Division:     nullString(rank.Division),
			LeaguePoints: rank.LeaguePoints,
			GamesPlayed:  resp.Ranked.NumGames,
		},
	}

	matches := resp.Matches
	if len(matches) > window {
		matches = matches[:window]
	}

	wins := 0
	placementSum := 0
	for _, m := range matches {
		endedAt := time.UnixMilli(m.MatchTimestamp).UTC()

		match := models.Match{
			MatchID: m.RiotMatchID,
			EndedAt: endedAt,
		}
		if m.GameLength != nil {
			match.GameLength = sql.NullFloat64{Float64: *m.GameLength, Valid: true}
		}
		out.Matches = append(out.Matches, match)

		matchRank := ParseRankText(m.Summary.PlayerRating)
		out.Participations = append(out.Participations, models.MatchParticipation{
			MatchID:      m.RiotMatchID,
			PUUID:        puuid,
			Placement:    m.Placement,
			LeaguePoints: matchRank.LeaguePoints,
		})

		out.RankHistory = append(out.RankHistory, models.RankHistoryPoint{
			PUUID:        puuid,
			MatchID:      m.RiotMatchID,
			LeaguePoints: matchRank.LeaguePoints,
			Tier:         matchRank.Tier,
			Division:     nullString(matchRank.Division),
			RecordedAt:   endedAt,
		})

		out.UnitPicks = append(out.UnitPicks, unitPicks(puuid, m.RiotMatchID, m.Summary.Units)...)

		if m.Placement <= 4 {
			wins++
		}
		placementSum += m.Placement
	}

	out.Player.Wins = wins
	out.Player.Losses = len(matches) - wins
	if len(matches) > 0 {
		out.Player.AveragePlacement = sql.NullFloat64{
			Float64: float64(placementSum) / float64(len(matches)),
			Valid:   true,
		}
		out.Player.TopFourRate = sql.NullFloat64{
			Float64: float64(wins) / float64(len(matches)),
			Valid:   true,
		}
	}

	return out, nil
}

// unitPicks aggregates duplicate unit ids into per-unit counts
func unitPicks(puuid, matchID string, units []models.ProfileUnit) []models.UnitPick {
	counts := make(map[string]int)
	for _, u := range units {
		if u.CharacterID == "" {
			continue
		}
		counts[u.CharacterID]++
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	picks := make([]models.UnitPick, 0, len(ids))
	for _, id := range ids {
		picks = append(picks, models.UnitPick{
			MatchID:  matchID,
			PUUID:    puuid,
			UnitID:   id,
			Quantity: counts[id],
		})
	}
	return picks
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
