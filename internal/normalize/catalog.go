package normalize

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"tftladder/ingestion/internal/models"
)

// Catalog maps one static-catalog file to versioned asset rows. Image URLs
// are built from the CDN base, the version and the asset's image filename;
// a missing image sub-object yields an empty URL. Entries are returned in
// asset-id order.
func Catalog(resp *models.CatalogResponse, category models.AssetCategory, version, cdnBaseURL string, now time.Time) []models.StaticAsset {
	if resp == nil || len(resp.Data) == 0 {
		return nil
	}

	ids := make([]string, 0, len(resp.Data))
	for id := range resp.Data {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	assets := make([]models.StaticAsset, 0, len(ids))
	for _, id := range ids {
		entry := resp.Data[id]

		asset := models.StaticAsset{
			AssetID:     id,
			Category:    category,
			Version:     version,
			Name:        entry.Name,
			Description: entry.Description,
			ImageURL:    imageURL(cdnBaseURL, category, version, entry.Image),
			UpdatedAt:   now,
		}

		switch category {
		case models.CategoryChampions:
			// Cost equals tier for champions
			asset.Tier = sql.NullInt32{Int32: int32(entry.Tier), Valid: true}
			asset.Cost = sql.NullInt32{Int32: int32(entry.Tier), Valid: true}
			asset.Traits = nullString(strings.Join(entry.Traits, ", "))
		case models.CategoryAugments:
			asset.Tier = sql.NullInt32{Int32: int32(entry.Tier), Valid: true}
		case models.CategoryTacticians:
			asset.Tier = sql.NullInt32{Int32: int32(entry.Level), Valid: true}
			if asset.Description == "" {
				asset.Description = entry.Species
			}
		}

		assets = append(assets, asset)
	}

	return assets
}

func imageURL(cdnBaseURL string, category models.AssetCategory, version string, image *models.CatalogImage) string {
	if image == nil || image.Full == "" {
		return ""
	}
	return fmt.Sprintf("%s/cdn/%s/img/%s/%s", cdnBaseURL, version, category, image.Full)
}
