package normalize

import (
	"testing"
	"time"

	"tftladder/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_PositionsSpanTiers(t *testing.T) {
	fetchedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	lists := []*models.LeagueListResponse{
		{
			Tier: models.TierChallenger,
			Entries: []models.LeagueItem{
				{SummonerID: "s1", PUUID: "p1", Rank: "I", LeaguePoints: 1200, Wins: 80, Losses: 40, GameName: "Alpha", TagLine: "VN2"},
				{SummonerID: "s2", PUUID: "p2", Rank: "I", LeaguePoints: 1500, Wins: 120, Losses: 60, GameName: "Beta", TagLine: "VN2"},
			},
		},
		{
			Tier: models.TierGrandmaster,
			Entries: []models.LeagueItem{
				{SummonerID: "s3", PUUID: "p3", Rank: "I", LeaguePoints: 800, Wins: 50, Losses: 50, GameName: "Gamma", TagLine: "VN2"},
			},
		},
		{
			Tier: models.TierMaster,
			Entries: []models.LeagueItem{
				{SummonerID: "s4", PUUID: "p4", Rank: "I", LeaguePoints: 400, Wins: 30, Losses: 70},
			},
		},
	}

	entries := Leaderboard(lists, "VN2", fetchedAt)
	require.Len(t, entries, 4)

	// Within a tier, LP descending; positions run 1..N across tiers
	assert.Equal(t, "Beta", entries[0].PlayerName)
	assert.Equal(t, 1, entries[0].RankPosition)
	assert.Equal(t, "Alpha", entries[1].PlayerName)
	assert.Equal(t, 2, entries[1].RankPosition)
	assert.Equal(t, models.TierGrandmaster, entries[2].Tier)
	assert.Equal(t, 3, entries[2].RankPosition)
	assert.Equal(t, 4, entries[3].RankPosition)

	// Entry without a resolved riot ID keeps the opaque summoner id
	assert.Equal(t, "s4", entries[3].PlayerName)

	for _, e := range entries {
		assert.Equal(t, "VN2", e.Region)
		assert.Equal(t, fetchedAt, e.FetchedAt)
		assert.Equal(t, e.Wins+e.Losses, e.GamesPlayed)
	}
}

func TestLeaderboard_WinRateAndEstimate(t *testing.T) {
	lists := []*models.LeagueListResponse{
		{
			Tier: models.TierChallenger,
			Entries: []models.LeagueItem{
				{SummonerID: "s1", LeaguePoints: 1000, Wins: 70, Losses: 30},
				{SummonerID: "s2", LeaguePoints: 900, Wins: 0, Losses: 0},
			},
		},
	}

	entries := Leaderboard(lists, "VN2", time.Now())
	require.Len(t, entries, 2)

	assert.InDelta(t, 0.7, entries[0].WinRate, 0.001)
	assert.InDelta(t, 3.0, entries[0].AveragePlacement, 0.001)

	// Zero games never divides by zero
	assert.Zero(t, entries[1].WinRate)
	assert.InDelta(t, 5.0, entries[1].AveragePlacement, 0.001)
}

func TestLeaderboard_SkipsNilLists(t *testing.T) {
	lists := []*models.LeagueListResponse{
		nil,
		{
			Tier:    models.TierMaster,
			Entries: []models.LeagueItem{{SummonerID: "s1", LeaguePoints: 100, Wins: 10, Losses: 10}},
		},
	}

	entries := Leaderboard(lists, "VN2", time.Now())
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].RankPosition)
}

func TestEstimatePlacement(t *testing.T) {
	tests := []struct {
		winRate  float64
		expected float64
	}{
		{0.80, 3.0},
		{0.70, 3.0},
		{0.65, 3.4},
		{0.55, 3.7},
		{0.50, 4.0},
		{0.47, 4.2},
		{0.42, 4.5},
		{0.30, 5.0},
		{0.00, 5.0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, EstimatePlacement(tt.winRate), 0.001,
			"win rate %.2f", tt.winRate)
	}
}
