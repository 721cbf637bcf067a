package normalize

import (
	"testing"

	"tftladder/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanions(t *testing.T) {
	detail := &models.MatchDetailResponse{
		Metadata: models.MatchMetadata{MatchID: "VN2_100"},
		Info: models.MatchInfo{
			Participants: []models.MatchParticipant{
				{
					PUUID:     "p1",
					Placement: 1,
					Companion: &models.CompanionInfo{ContentID: "c-abc", SkinID: 5},
				},
				{
					PUUID:     "p2",
					Placement: 8,
					// No companion sub-object
				},
				{
					PUUID:     "p3",
					Placement: 4,
					Companion: &models.CompanionInfo{SkinID: 2}, // empty content id
				},
			},
		},
	}

	companions := Companions(detail)
	require.Len(t, companions, 1)
	assert.Equal(t, "VN2_100", companions[0].MatchID)
	assert.Equal(t, "p1", companions[0].PUUID)
	assert.Equal(t, "c-abc", companions[0].ContentID)
	assert.Equal(t, 5, companions[0].SkinID)
	assert.Equal(t, 1, companions[0].Placement)
}

func TestCompanions_MissingMatchID(t *testing.T) {
	assert.Nil(t, Companions(nil))
	assert.Nil(t, Companions(&models.MatchDetailResponse{}))
}
