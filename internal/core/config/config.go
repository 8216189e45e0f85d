// Package config handles configuration loading and validation for todoprog.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/todoprog/internal/core/program"
	"github.com/colonyops/todoprog/internal/core/styles"
)

// DefaultProgramSeed is the seed the default program ID is derived from.
const DefaultProgramSeed = "todoprog"

const (
	defaultAccountSpace = 10 * 1024
	defaultAccountName  = "default"
	defaultBusyTimeout  = 5000
	defaultMaxOpenConns = 1
)

// Config holds the application configuration.
type Config struct {
	// ProgramID is the hex encoded identity the local host invokes the
	// program as. Empty means the ID derived from DefaultProgramSeed.
	ProgramID string         `yaml:"program_id"`
	Accounts  AccountsConfig `yaml:"accounts"`
	Database  DatabaseConfig `yaml:"database"`
	Theme     string         `yaml:"theme"`
	DataDir   string         `yaml:"-"` // set by caller, not from config file

	programID program.Pubkey
}

// AccountsConfig controls defaults for storage accounts created from the CLI.
type AccountsConfig struct {
	DefaultSpace int    `yaml:"default_space"` // bytes allocated to new accounts
	DefaultName  string `yaml:"default_name"`  // account used when --account is not given
}

// DatabaseConfig holds SQLite connection settings.
type DatabaseConfig struct {
	BusyTimeout  int `yaml:"busy_timeout"` // milliseconds
	MaxOpenConns int `yaml:"max_open_conns"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Accounts: AccountsConfig{
			DefaultSpace: defaultAccountSpace,
			DefaultName:  defaultAccountName,
		},
		Database: DatabaseConfig{
			BusyTimeout:  defaultBusyTimeout,
			MaxOpenConns: defaultMaxOpenConns,
		},
		Theme: styles.DefaultTheme,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.DataDir = dataDir
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Accounts.DefaultSpace == 0 {
		c.Accounts.DefaultSpace = defaults.Accounts.DefaultSpace
	}
	if c.Accounts.DefaultName == "" {
		c.Accounts.DefaultName = defaults.Accounts.DefaultName
	}
	if c.Database.BusyTimeout == 0 {
		c.Database.BusyTimeout = defaults.Database.BusyTimeout
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaults.Database.MaxOpenConns
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// Program returns the program ID resolved by Validate.
func (c *Config) Program() program.Pubkey {
	return c.programID
}
