package models

import (
	"database/sql"
	"time"
)

// AssetCategory names one static-catalog file published per game patch
type AssetCategory string

const (
	CategoryChampions  AssetCategory = "tft-champion"
	CategoryItems      AssetCategory = "tft-item"
	CategoryTraits     AssetCategory = "tft-trait"
	CategoryAugments   AssetCategory = "tft-augment"
	CategoryTacticians AssetCategory = "tft-tactician"
)

// AssetCategories is every catalog category refreshed by the static flow.
// Augments are not published for every patch; a missing file is skipped.
var AssetCategories = []AssetCategory{
	CategoryChampions,
	CategoryItems,
	CategoryTraits,
	CategoryAugments,
	CategoryTacticians,
}

// StaticAsset is versioned reference data, keyed by (asset_id, category,
// version). Old versions are never deleted so asset metadata survives across
// game patches.
type StaticAsset struct {
	AssetID     string         `db:"asset_id"`
	Category    AssetCategory  `db:"category"`
	Version     string         `db:"version"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	ImageURL    string         `db:"image_url"`
	Tier        sql.NullInt32  `db:"tier"`
	Cost        sql.NullInt32  `db:"cost"`
	Traits      sql.NullString `db:"traits"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// CatalogResponse is the raw shape of one static-catalog CDN file
type CatalogResponse struct {
	Type string                  `json:"type"`
	Data map[string]CatalogEntry `json:"data"`
}

// CatalogEntry is one asset inside a catalog file. Fields vary by category;
// absent ones decode to zero values.
type CatalogEntry struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Tier        int           `json:"tier"`
	Traits      []string      `json:"traits"`
	Species     string        `json:"species"`
	Level       int           `json:"level"`
	Image       *CatalogImage `json:"image,omitempty"`
}

// CatalogImage carries the image filename used to build the CDN URL
type CatalogImage struct {
	Full string `json:"full"`
}
