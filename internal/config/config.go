package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	StartingMoney int    `toml:"starting_money"`
	MinimumBet    int    `toml:"minimum_bet"`
	BetStep       int    `toml:"bet_step"`
	Currency      string `toml:"currency"`
	NoColor       bool   `toml:"no_color"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		StartingMoney: 100,
		MinimumBet:    10,
		BetStep:       10,
		Currency:      "€",
		NoColor:       false,
	}
}

// Validate checks that the numeric settings make sense for a table
func (c *Config) Validate() error {
	if c.StartingMoney <= 0 {
		return fmt.Errorf("starting_money must be positive, got %d", c.StartingMoney)
	}
	if c.MinimumBet <= 0 {
		return fmt.Errorf("minimum_bet must be positive, got %d", c.MinimumBet)
	}
	if c.BetStep <= 0 {
		return fmt.Errorf("bet_step must be positive, got %d", c.BetStep)
	}
	return nil
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "croupier", "config.toml")
}

// Load loads the config file, creating one with defaults on first run
func Load() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	return LoadFile(configPath)
}

// LoadFile loads and validates the config at the given path
func LoadFile(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %v", path, err)
	}

	return config, nil
}

// createDefaultConfig writes the default config file
func createDefaultConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := Default()

	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %v", err)
	}

	return config, nil
}
