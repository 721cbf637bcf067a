package normalize

import (
	"testing"

	"tftladder/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseRankText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ParsedRank
	}{
		{
			name:     "tier with division",
			input:    "DIAMOND II 55 LP",
			expected: ParsedRank{Tier: "DIAMOND", Division: "II", LeaguePoints: 55},
		},
		{
			name:     "apex tier without division",
			input:    "CHALLENGER 1942 LP",
			expected: ParsedRank{Tier: "CHALLENGER", LeaguePoints: 1942},
		},
		{
			name:     "lower case tier is normalized",
			input:    "gold IV 12 LP",
			expected: ParsedRank{Tier: "GOLD", Division: "IV", LeaguePoints: 12},
		},
		{
			name:     "empty text is unranked",
			input:    "",
			expected: ParsedRank{Tier: models.TierUnranked},
		},
		{
			name:     "single token is unranked",
			input:    "MASTER",
			expected: ParsedRank{Tier: models.TierUnranked},
		},
		{
			name:     "junk after tier yields zero LP",
			input:    "PLATINUM garbage",
			expected: ParsedRank{Tier: "PLATINUM"},
		},
		{
			name:     "division without LP",
			input:    "SILVER III",
			expected: ParsedRank{Tier: "SILVER", Division: "III"},
		},
		{
			name:     "negative LP clamps to zero",
			input:    "BRONZE I -5 LP",
			expected: ParsedRank{Tier: "BRONZE", Division: "I"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRankText(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}
