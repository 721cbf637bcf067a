package repository

import (
	"database/sql"
	"testing"
	"time"

	"tftladder/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankHistoryRepository_AppendIdempotent(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	err := db.Players.Upsert(ctx, &models.Player{PUUID: "hist-puuid", GameName: "H", TagLine: "T1", Tier: "DIAMOND"})
	require.NoError(t, err)
	err = db.Matches.Upsert(ctx, &models.Match{MatchID: "hist-match-1", EndedAt: time.Now().UTC()})
	require.NoError(t, err)
	err = db.Matches.Upsert(ctx, &models.Match{MatchID: "hist-match-2", EndedAt: time.Now().UTC()})
	require.NoError(t, err)

	points := []models.RankHistoryPoint{
		{
			PUUID:        "hist-puuid",
			MatchID:      "hist-match-1",
			LeaguePoints: 40,
			Tier:         "DIAMOND",
			Division:     sql.NullString{String: "II", Valid: true},
			RecordedAt:   time.Date(2026, 7, 31, 10, 0, 0, 0, time.UTC),
		},
		{
			PUUID:        "hist-puuid",
			MatchID:      "hist-match-2",
			LeaguePoints: 55,
			Tier:         "DIAMOND",
			Division:     sql.NullString{String: "II", Valid: true},
			RecordedAt:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, db.RankHistory.Append(ctx, points))

	count, err := db.RankHistory.CountByPlayer(ctx, "hist-puuid")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Re-importing the same matches must not double-append
	require.NoError(t, db.RankHistory.Append(ctx, points))

	count, err = db.RankHistory.CountByPlayer(ctx, "hist-puuid")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "Duplicate append should be a no-op")

	list, err := db.RankHistory.ListByPlayer(ctx, "hist-puuid")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "hist-match-1", list[0].MatchID, "History should be chronological")
	assert.Equal(t, 55, list[1].LeaguePoints)
}

func TestRankHistoryRepository_AppendEmpty(t *testing.T) {
	db, ctx := setupTestDB(t)
	defer teardownTestDB(t, db)

	assert.NoError(t, db.RankHistory.Append(ctx, nil))
}
