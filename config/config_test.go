package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLocalFile(t *testing.T) {
	cfg, err := Load(envLocal)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.GetWindowWidth())
	assert.Equal(t, 768, cfg.GetWindowHeight())
	assert.Equal(t, "Zombie Conga", cfg.GetWindowTitle())
	assert.False(t, cfg.GetWon())
	assert.Equal(t, 3*time.Second, cfg.GetGameOverDuration())
	assert.Equal(t, int64(0), cfg.GetRandomSeed())
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("WINDOW_WIDTH", "640")
	t.Setenv("WINDOW_TITLE", "Conga Line")
	t.Setenv("WON", "true")
	t.Setenv("GAME_OVER_SECONDS", "1.5")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(envLocal)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.GetWindowWidth())
	assert.Equal(t, 768, cfg.GetWindowHeight())
	assert.Equal(t, "Conga Line", cfg.GetWindowTitle())
	assert.True(t, cfg.GetWon())
	assert.Equal(t, 1500*time.Millisecond, cfg.GetGameOverDuration())
	assert.Equal(t, int64(42), cfg.GetRandomSeed())
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestWonCanBeForcedOffByEnvironment(t *testing.T) {
	t.Setenv("WON", "false")

	cfg, err := Load(envLocal)
	require.NoError(t, err)

	assert.False(t, cfg.GetWon())
}

func TestMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist")
	require.NoError(t, err)

	assert.Equal(t, defaultWindowWidth, cfg.GetWindowWidth())
	assert.Equal(t, defaultWindowHeight, cfg.GetWindowHeight())
	assert.Equal(t, defaultWindowTitle, cfg.GetWindowTitle())
	assert.Equal(t, defaultGameOverSeconds*time.Second, cfg.GetGameOverDuration())
	assert.False(t, cfg.GetWon())
}

func TestEnvSelectsFile(t *testing.T) {
	t.Setenv(keyEnv, envLocal)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Zombie Conga", cfg.GetWindowTitle())
}
