package normalize

import (
	"sort"
	"time"

	"tftladder/ingestion/internal/models"
)

// placementEstimates maps a win rate band to an estimated average placement.
// League endpoints carry no per-match data, so this is an approximation and
// stored as such; it must not be mistaken for a measurement.
var placementEstimates = []struct {
	minWinRate float64
	placement  float64
}{
	{0.70, 3.0},
	{0.60, 3.4},
	{0.55, 3.7},
	{0.50, 4.0},
	{0.45, 4.2},
	{0.40, 4.5},
	{0.00, 5.0},
}

// EstimatePlacement returns the estimated average placement for a win rate
func EstimatePlacement(winRate float64) float64 {
	for _, band := range placementEstimates {
		if winRate >= band.minWinRate {
			return band.placement
		}
	}
	return placementEstimates[len(placementEstimates)-1].placement
}

// Leaderboard flattens per-tier league lists into one snapshot. Lists must be
// given in ladder order (challenger, grandmaster, master); entries within a
// tier are ordered by league points descending, and rank positions are a
// single running counter across all tiers starting at 1.
func Leaderboard(lists []*models.LeagueListResponse, region string, fetchedAt time.Time) []models.LeaderboardEntry {
	var entries []models.LeaderboardEntry
	position := 0

	for _, list := range lists {
		if list == nil {
			continue
		}

		items := make([]models.LeagueItem, len(list.Entries))
		copy(items, list.Entries)
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].LeaguePoints > items[j].LeaguePoints
		})

		for _, item := range items {
			position++

			winRate := 0.0
			if total := item.Wins + item.Losses; total > 0 {
				winRate = float64(item.Wins) / float64(total)
			}

			name := item.GameName
			if name == "" {
				// Account lookup failed for this entry; fall back to the
				// opaque summoner id rather than dropping the row
				name = item.SummonerID
			}

			entries = append(entries, models.LeaderboardEntry{
				PlayerName:       name,
				TagLine:          item.TagLine,
				Region:           region,
				Tier:             list.Tier,
				Division:         nullString(item.Rank),
				LeaguePoints:     item.LeaguePoints,
				Wins:             item.Wins,
				Losses:           item.Losses,
				GamesPlayed:      item.Wins + item.Losses,
				AveragePlacement: EstimatePlacement(winRate),
				WinRate:          winRate,
				RankPosition:     position,
				FetchedAt:        fetchedAt,
			})
		}
	}

	return entries
}
