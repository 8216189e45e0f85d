package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/todoprog/internal/core/program"
	"github.com/colonyops/todoprog/internal/core/styles"
)

// MaxAccountSpace is the largest buffer a storage account may be created with.
const MaxAccountSpace = 10 * 1024 * 1024

// Validate checks that the configuration is valid and resolves the program ID.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	return criterio.ValidateStruct(
		criterio.Run("program_id", c.ProgramID, c.resolveProgramID),
		criterio.Run("accounts.default_space", c.Accounts.DefaultSpace, validSpace),
		criterio.Run("accounts.default_name", c.Accounts.DefaultName, notEmpty),
		criterio.Run("database.busy_timeout", c.Database.BusyTimeout, nonNegative),
		criterio.Run("database.max_open_conns", c.Database.MaxOpenConns, positive),
		criterio.Run("theme", c.Theme, knownTheme),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
	)
}

// ValidateSpace checks a --space value given on the command line.
func ValidateSpace(n int) error {
	return criterio.Run("space", n, validSpace)
}

func (c *Config) resolveProgramID(s string) error {
	if s == "" {
		c.programID = program.KeyFromSeed(DefaultProgramSeed)
		return nil
	}
	pk, err := program.ParsePubkey(s)
	if err != nil {
		return err
	}
	c.programID = pk
	return nil
}

func validSpace(n int) error {
	if n < 1 || n > MaxAccountSpace {
		return fmt.Errorf("must be between 1 and %d bytes", MaxAccountSpace)
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func notEmpty(s string) error {
	if s == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

func nonNegative(n int) error {
	if n < 0 {
		return errors.New("cannot be negative")
	}
	return nil
}

func positive(n int) error {
	if n < 1 {
		return errors.New("must be at least 1")
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}
