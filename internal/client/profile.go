package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"tftladder/ingestion/internal/models"
)

// ProfileOptions carry the query parameters of the profile lookup endpoint
type ProfileOptions struct {
	Region string // platform region path segment, e.g. "VN2"
	Source string // data-source flag, e.g. "full_profile"
	Set    string // game-version tag, e.g. "TFTSet14"
}

// FetchProfile fetches a player's full profile (rank text, lifetime games,
// recent matches with unit summaries) by riot ID
func (c *Client) FetchProfile(ctx context.Context, name, tag string, opts ProfileOptions) (*models.ProfileResponse, error) {
	u := fmt.Sprintf("%s/profile/lookup_by_riotid/%s/%s/%s",
		c.profileBaseURL, opts.Region, url.PathEscape(name), url.PathEscape(tag))

	params := map[string]string{
		"source":                  opts.Source,
		"tft_set":                 opts.Set,
		"include_revival_matches": "true",
	}

	body, err := c.get(ctx, "profile_lookup", u, params, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for %s#%s: %w", name, tag, err)
	}

	var profile models.ProfileResponse
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// FetchAccountByPUUID resolves a puuid to its riot ID (game name + tag line)
func (c *Client) FetchAccountByPUUID(ctx context.Context, puuid string) (*models.AccountResponse, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-puuid/%s", c.riotBaseURL, puuid)

	body, err := c.get(ctx, "account_by_puuid", u, nil, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account for puuid %s: %w", puuid, err)
	}

	var account models.AccountResponse
	if err := json.Unmarshal(body, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &account, nil
}
