package normalize

import (
	"testing"
	"time"

	"tftladder/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cdnBase = "https://ddragon.leagueoflegends.com"

func TestCatalog_Champions(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	resp := &models.CatalogResponse{
		Type: "tft-champion",
		Data: map[string]models.CatalogEntry{
			"TFT14_Jinx": {
				Name:   "Jinx",
				Tier:   4,
				Traits: []string{"Rebel", "Sniper"},
				Image:  &models.CatalogImage{Full: "TFT14_Jinx.png"},
			},
			"TFT14_Vi": {
				Name: "Vi",
				Tier: 2,
			},
		},
	}

	assets := Catalog(resp, models.CategoryChampions, "14.1.1", cdnBase, now)
	require.Len(t, assets, 2)

	// Sorted by asset id
	jinx := assets[0]
	assert.Equal(t, "TFT14_Jinx", jinx.AssetID)
	assert.Equal(t, models.CategoryChampions, jinx.Category)
	assert.Equal(t, "14.1.1", jinx.Version)
	assert.Equal(t, int32(4), jinx.Tier.Int32)
	assert.Equal(t, int32(4), jinx.Cost.Int32)
	assert.Equal(t, "Rebel, Sniper", jinx.Traits.String)
	assert.Equal(t,
		"https://ddragon.leagueoflegends.com/cdn/14.1.1/img/tft-champion/TFT14_Jinx.png",
		jinx.ImageURL)
	assert.Equal(t, now, jinx.UpdatedAt)

	// Missing image sub-object yields an empty URL, missing traits stay null
	vi := assets[1]
	assert.Empty(t, vi.ImageURL)
	assert.False(t, vi.Traits.Valid)
}

func TestCatalog_Tacticians(t *testing.T) {
	resp := &models.CatalogResponse{
		Data: map[string]models.CatalogEntry{
			"pet-1": {
				Name:    "River Sprite",
				Species: "Sprite",
				Level:   3,
				Image:   &models.CatalogImage{Full: "sprite.png"},
			},
		},
	}

	assets := Catalog(resp, models.CategoryTacticians, "14.1.1", cdnBase, time.Now())
	require.Len(t, assets, 1)

	assert.Equal(t, int32(3), assets[0].Tier.Int32)
	// Species fills in for a missing description
	assert.Equal(t, "Sprite", assets[0].Description)
	assert.False(t, assets[0].Cost.Valid)
}

func TestCatalog_Augments(t *testing.T) {
	resp := &models.CatalogResponse{
		Data: map[string]models.CatalogEntry{
			"aug-silver": {Name: "Cybernetic Uplink", Description: "Gain mana", Tier: 1},
		},
	}

	assets := Catalog(resp, models.CategoryAugments, "14.1.1", cdnBase, time.Now())
	require.Len(t, assets, 1)
	assert.Equal(t, int32(1), assets[0].Tier.Int32)
	assert.Equal(t, "Gain mana", assets[0].Description)
}

func TestCatalog_Empty(t *testing.T) {
	assert.Nil(t, Catalog(nil, models.CategoryItems, "14.1.1", cdnBase, time.Now()))
	assert.Nil(t, Catalog(&models.CatalogResponse{}, models.CategoryItems, "14.1.1", cdnBase, time.Now()))
}
