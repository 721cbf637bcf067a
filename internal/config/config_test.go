package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRiotID(t *testing.T) {
	tests := []struct {
		input   string
		name    string
		tag     string
		wantErr bool
	}{
		{input: "Faker#KR1", name: "Faker", tag: "KR1"},
		{input: "Name With Spaces#VN2", name: "Name With Spaces", tag: "VN2"},
		{input: "Hash#In#Name", name: "Hash#In", tag: "Name"},
		{input: "NoTag", wantErr: true},
		{input: "#OnlyTag", wantErr: true},
		{input: "NoTagEnd#", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, tag, err := SplitRiotID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.tag, tag)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("TRACKED_PLAYERS", "Faker#KR1,Beta#VN2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "RGAPI-test", cfg.RiotAPIKey)
	assert.Equal(t, []string{"Faker#KR1", "Beta#VN2"}, cfg.TrackedPlayers)

	// Defaults
	assert.Equal(t, "vn2", cfg.RiotRegion)
	assert.Equal(t, "TFTSet14", cfg.GameSet)
	assert.Equal(t, 5, cfg.MatchWindow)
	assert.Equal(t, "0 */6 * * *", cfg.LeaderboardCron)
	assert.True(t, cfg.EnableScheduler)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_InvalidTrackedPlayer(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("DATABASE_PASSWORD", "secret")
	t.Setenv("TRACKED_PLAYERS", "MissingTag")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_MatchWindow(t *testing.T) {
	cfg := &Config{
		RiotAPIKey:       "RGAPI-test",
		DatabasePassword: "secret",
		MatchWindow:      0,
	}

	err := cfg.Validate()
	assert.Error(t, err)
}

func TestConnectionStrings(t *testing.T) {
	cfg := &Config{
		DatabaseHost:     "db.internal",
		DatabasePort:     5433,
		DatabaseUser:     "tft_user",
		DatabasePassword: "pw",
		DatabaseName:     "tftladder",
		DatabaseSSLMode:  "require",
		RedisHost:        "redis.internal",
		RedisPort:        6380,
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=tft_user password=pw dbname=tftladder sslmode=require",
		cfg.DatabaseDSN())
	assert.Equal(t, "redis.internal:6380", cfg.RedisAddr())
}
