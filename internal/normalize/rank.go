// Package normalize maps raw upstream JSON shapes into database records.
// Every function is pure: no I/O, no clocks, no globals.
package normalize

import (
	"errors"
	"strconv"
	"strings"

	"tftladder/ingestion/internal/models"
)

// ErrMalformedData means a response decoded fine but is missing fields the
// pipeline cannot proceed without
var ErrMalformedData = errors.New("response missing expected fields")

// ParsedRank is the result of parsing a free-text rank line
type ParsedRank struct {
	Tier         string
	Division     string
	LeaguePoints int
}

var divisionNumerals = map[string]bool{
	"I": true, "II": true, "III": true, "IV": true,
}

// ParseRankText parses rank text of the form "<TIER> [<DIVISION>] <LP> LP",
// e.g. "CHALLENGER 1942 LP" or "DIAMOND II 55 LP". Tokens are taken
// positionally: the optional division numeral sits between tier and points.
// Fewer than two tokens, or unparseable points, fall back to
// UNRANKED / empty / 0. Points are clamped non-negative.
func ParseRankText(text string) ParsedRank {
	tokens := strings.Fields(text)
	if len(tokens) < 2 {
		return ParsedRank{Tier: models.TierUnranked}
	}

	parsed := ParsedRank{Tier: strings.ToUpper(tokens[0])}
	rest := tokens[1:]

	if numeral := strings.ToUpper(rest[0]); divisionNumerals[numeral] {
		parsed.Division = numeral
		rest = rest[1:]
	}

	if len(rest) > 0 {
		if lp, err := strconv.Atoi(rest[0]); err == nil && lp > 0 {
			parsed.LeaguePoints = lp
		}
	}

	return parsed
}
