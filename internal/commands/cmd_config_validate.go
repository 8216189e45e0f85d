package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todoprog/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "todoprog config validate [options]",
				Description: "Loads and validates the configuration file and prints the resolved settings.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// ResolvedConfig is the effective configuration after defaults are applied.
type ResolvedConfig struct {
	Valid        bool   `json:"valid"`
	ConfigPath   string `json:"config_path"`
	DataDir      string `json:"data_dir"`
	ProgramID    string `json:"program_id"`
	DefaultName  string `json:"default_account"`
	DefaultSpace int    `json:"default_space"`
	Theme        string `json:"theme"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	if cfg == nil {
		return fmt.Errorf("config not loaded")
	}

	// Load already rejected invalid files; this reports what was resolved.
	out := ResolvedConfig{
		Valid:        true,
		ConfigPath:   cmd.flags.ConfigPath,
		DataDir:      cfg.DataDir,
		ProgramID:    cfg.Program().String(),
		DefaultName:  cfg.Accounts.DefaultName,
		DefaultSpace: cfg.Accounts.DefaultSpace,
		Theme:        cfg.Theme,
	}

	w := c.Root().Writer
	if cmd.format == "json" {
		return iojson.Write(w, out)
	}

	_, _ = fmt.Fprintln(w, "config is valid")
	_, _ = fmt.Fprintf(w, "  config:          %s\n", out.ConfigPath)
	_, _ = fmt.Fprintf(w, "  data dir:        %s\n", out.DataDir)
	_, _ = fmt.Fprintf(w, "  program id:      %s\n", out.ProgramID)
	_, _ = fmt.Fprintf(w, "  default account: %s (%d bytes)\n", out.DefaultName, out.DefaultSpace)
	_, _ = fmt.Fprintf(w, "  theme:           %s\n", out.Theme)
	return nil
}
