package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, []string{"rpsls"}, cfg.RuleSets)
	assert.Equal(t, 3, cfg.RoundsToWin)
	assert.Equal(t, "random", cfg.Strategy)
	assert.Equal(t, "house", cfg.Draws)
	assert.Equal(t, "game_history.txt", cfg.HistoryFile)
	assert.True(t, cfg.HistoryPerSession)
	assert.Equal(t, "console", cfg.UI)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("RPS_RULES", "rpsls,rps")
	t.Setenv("RPS_ROUNDS_TO_WIN", "5")
	t.Setenv("RPS_STRATEGY", "counter")
	t.Setenv("RPS_DRAWS", "replay")
	t.Setenv("RPS_SEED", "99")
	t.Setenv("RPS_HISTORY_PER_SESSION", "false")
	t.Setenv("RPS_UI", "tui")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, []string{"rpsls", "rps"}, cfg.RuleSets)
	assert.Equal(t, 5, cfg.RoundsToWin)
	assert.Equal(t, "counter", cfg.Strategy)
	assert.Equal(t, "replay", cfg.Draws)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.False(t, cfg.HistoryPerSession)
	assert.Equal(t, "tui", cfg.UI)
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"RPS_ROUNDS_TO_WIN": "0",
		"RPS_STRATEGY":      "psychic",
		"RPS_DRAWS":         "coinflip",
		"RPS_UI":            "web",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Parse()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}

	t.Run("not a number", func(t *testing.T) {
		t.Setenv("RPS_ROUNDS_TO_WIN", "three")
		_, err := Parse()
		require.Error(t, err)
	})
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RPS_HISTORY_DIR=saves\n"), 0644))
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("RPS_HISTORY_DIR") })

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "saves", cfg.HistoryDir)
}

func TestLoadConfigWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.HistoryDir)
}
