package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tftladder/ingestion/internal/models"
)

// FetchLeagueTier fetches one apex-tier league list (challenger, grandmaster
// or master). The endpoint path is the lower-cased tier name.
func (c *Client) FetchLeagueTier(ctx context.Context, tier string) (*models.LeagueListResponse, error) {
	path := strings.ToLower(tier)
	u := fmt.Sprintf("%s/tft/league/v1/%s", c.riotBaseURL, path)

	body, err := c.get(ctx, "league_"+path, u, nil, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s league: %w", path, err)
	}

	var list models.LeagueListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s league: %w", path, err)
	}

	// The endpoint omits the tier on some shards; pin it so downstream
	// processing never depends on upstream filling it in
	if list.Tier == "" {
		list.Tier = strings.ToUpper(tier)
	}

	return &list, nil
}

// FetchMatchIDs fetches the ids of a player's most recent matches
func (c *Client) FetchMatchIDs(ctx context.Context, puuid string, count int) ([]string, error) {
	u := fmt.Sprintf("%s/tft/match/v1/matches/by-puuid/%s/ids", c.riotBaseURL, puuid)

	params := map[string]string{"count": fmt.Sprintf("%d", count)}
	body, err := c.get(ctx, "match_ids", u, params, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match ids for %s: %w", puuid, err)
	}

	var ids models.MatchIDsResponse
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match ids: %w", err)
	}

	return ids, nil
}

// FetchMatchDetail fetches the full detail blob for one match, including
// per-participant companion data
func (c *Client) FetchMatchDetail(ctx context.Context, matchID string) (*models.MatchDetailResponse, error) {
	u := fmt.Sprintf("%s/tft/match/v1/matches/%s", c.riotBaseURL, matchID)

	body, err := c.get(ctx, "match_detail", u, nil, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match %s: %w", matchID, err)
	}

	var detail models.MatchDetailResponse
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchID, err)
	}

	return &detail, nil
}
