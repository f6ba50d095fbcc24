package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.StartingMoney)
	assert.Equal(t, 10, cfg.MinimumBet)
	assert.Equal(t, 10, cfg.BetStep)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
starting_money = 500
minimum_bet = 25
bet_step = 5
currency = "$"
no_color = true
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.StartingMoney)
	assert.Equal(t, 25, cfg.MinimumBet)
	assert.Equal(t, 5, cfg.BetStep)
	assert.Equal(t, "$", cfg.Currency)
	assert.True(t, cfg.NoColor)
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `starting_money = 250`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.StartingMoney)
	assert.Equal(t, 10, cfg.MinimumBet)
	assert.Equal(t, "€", cfg.Currency)
}

func TestLoadFileRejectsBadValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "zero bankroll", contents: `starting_money = 0`},
		{name: "negative minimum bet", contents: `minimum_bet = -10`},
		{name: "zero bet step", contents: `bet_step = 0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadCreatesDefaultConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// The file must now exist and round-trip
	path := filepath.Join(home, "croupier", "config.toml")
	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
