package client

import (
	"context"
	"encoding/json"
	"fmt"

	"tftladder/ingestion/internal/models"
)

// FetchLatestVersion fetches the current static-data version. The versions
// endpoint returns a list with the newest entry first.
func (c *Client) FetchLatestVersion(ctx context.Context) (string, error) {
	u := fmt.Sprintf("%s/api/versions.json", c.ddragonBaseURL)

	body, err := c.get(ctx, "versions", u, nil, false)
	if err != nil {
		return "", fmt.Errorf("failed to fetch versions: %w", err)
	}

	var versions []string
	if err := json.Unmarshal(body, &versions); err != nil {
		return "", fmt.Errorf("failed to unmarshal versions: %w", err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("versions list is empty")
	}

	return versions[0], nil
}

// FetchStaticCatalog fetches one versioned catalog file (champions, items,
// traits, augments or tacticians)
func (c *Client) FetchStaticCatalog(ctx context.Context, category models.AssetCategory, version string) (*models.CatalogResponse, error) {
	u := fmt.Sprintf("%s/cdn/%s/data/en_US/%s.json", c.ddragonBaseURL, version, category)

	body, err := c.get(ctx, "catalog_"+string(category), u, nil, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s catalog: %w", category, err)
	}

	var catalog models.CatalogResponse
	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s catalog: %w", category, err)
	}

	return &catalog, nil
}

// BaseURL returns the CDN base, used by the normalizer to build image URLs
func (c *Client) BaseURL() string {
	return c.ddragonBaseURL
}
