package normalize

import (
	"tftladder/ingestion/internal/models"
)

// Companions extracts per-player cosmetic companions from a match detail
// blob. Participants without a companion sub-object are skipped silently.
func Companions(detail *models.MatchDetailResponse) []models.MatchCompanion {
	if detail == nil || detail.Metadata.MatchID == "" {
		return nil
	}

	var companions []models.MatchCompanion
	for _, p := range detail.Info.Participants {
		if p.Companion == nil || p.Companion.ContentID == "" {
			continue
		}
		companions = append(companions, models.MatchCompanion{
			MatchID:   detail.Metadata.MatchID,
			PUUID:     p.PUUID,
			ContentID: p.Companion.ContentID,
			SkinID:    p.Companion.SkinID,
			Placement: p.Placement,
		})
	}

	return companions
}
