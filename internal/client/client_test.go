package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tftladder/ingestion/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(Options{
		RiotBaseURL:    server.URL,
		ProfileBaseURL: server.URL,
		DDragonBaseURL: server.URL,
		APIKey:         "test-key",
		Timeout:        5 * time.Second,
	})
}

func TestFetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profile/lookup_by_riotid/VN2/Faker/KR1", r.URL.Path)
		assert.Equal(t, "full_profile", r.URL.Query().Get("source"))
		assert.Equal(t, "TFTSet14", r.URL.Query().Get("tft_set"))
		assert.Equal(t, "true", r.URL.Query().Get("include_revival_matches"))
		// Profile endpoint is unauthenticated
		assert.Empty(t, r.Header.Get("X-Riot-Token"))

		w.Write([]byte(`{"summoner":{"puuid":"puuid-abc"},"ranked":{"rating_text":"MASTER 120 LP","num_games":300}}`))
	}))
	defer server.Close()

	c := newTestClient(server)
	profile, err := c.FetchProfile(context.Background(), "Faker", "KR1", ProfileOptions{
		Region: "VN2",
		Source: "full_profile",
		Set:    "TFTSet14",
	})

	require.NoError(t, err)
	assert.Equal(t, "puuid-abc", profile.Summoner.PUUID)
	assert.Equal(t, "MASTER 120 LP", profile.Ranked.RatingText)
	assert.Equal(t, 300, profile.Ranked.NumGames)
}

func TestFetchLeagueTier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tft/league/v1/challenger", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Riot-Token"))

		// Tier deliberately absent to exercise the pinning fallback
		w.Write([]byte(`{"entries":[{"summonerId":"s1","puuid":"p1","rank":"I","leaguePoints":1200,"wins":80,"losses":40}]}`))
	}))
	defer server.Close()

	c := newTestClient(server)
	list, err := c.FetchLeagueTier(context.Background(), models.TierChallenger)

	require.NoError(t, err)
	assert.Equal(t, models.TierChallenger, list.Tier)
	require.Len(t, list.Entries, 1)
	assert.Equal(t, 1200, list.Entries[0].LeaguePoints)
}

func TestFetchNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := newTestClient(server)
	_, err := c.FetchProfile(context.Background(), "Ghost", "EU1", ProfileOptions{Region: "VN2"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := newTestClient(server)
	_, err := c.FetchMatchIDs(context.Background(), "puuid-abc", 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestFetchRetriesTransientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`["14.1.1","13.24.1"]`))
	}))
	defer server.Close()

	c := newTestClient(server)
	version, err := c.FetchLatestVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "14.1.1", version)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchRateLimitedThenRecovers(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`["VN2_100","VN2_99"]`))
	}))
	defer server.Close()

	c := newTestClient(server)
	ids, err := c.FetchMatchIDs(context.Background(), "puuid-abc", 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"VN2_100", "VN2_99"}, []string(ids))
}

func TestFetchStaticCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cdn/14.1.1/data/en_US/tft-champion.json", r.URL.Path)
		w.Write([]byte(`{"type":"tft-champion","data":{"TFT14_Jinx":{"name":"Jinx","tier":4}}}`))
	}))
	defer server.Close()

	c := newTestClient(server)
	catalog, err := c.FetchStaticCatalog(context.Background(), models.CategoryChampions, "14.1.1")

	require.NoError(t, err)
	require.Contains(t, catalog.Data, "TFT14_Jinx")
	assert.Equal(t, 4, catalog.Data["TFT14_Jinx"].Tier)
}

func TestFetchLatestVersion_EmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := newTestClient(server)
	_, err := c.FetchLatestVersion(context.Background())
	assert.Error(t, err)
}
