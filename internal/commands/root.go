package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todoprog/internal/host"
)

// NewRoot builds the full todoprog command tree bound to flags and app.
// The caller sets Before and After, which populate app.
func NewRoot(flags *Flags, app *host.App) *cli.Command {
	root := &cli.Command{
		Name:      "todoprog",
		Usage:     "Run the todo list program against local storage accounts",
		UsageText: "todoprog [global options] command [command options]",
		Description: `todoprog hosts a small on-chain style program that keeps a task list
inside a fixed size storage account.

Every change is an instruction submitted to the program. The program checks
that it owns the account, decodes the instruction, applies it to the stored
list and writes the list back. Failed instructions leave the account as it was.

Run 'todoprog account create' once, then 'todoprog add <task>'.`,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TODOPROG_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("TODOPROG_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TODOPROG_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TODOPROG_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
	}

	root = NewAccountCmd(flags, app).Register(root)
	root = NewTaskCmd(flags, app).Register(root)
	root = NewExecCmd(flags, app).Register(root)
	root = NewBatchCmd(flags, app).Register(root)
	root = NewTxCmd(flags, app).Register(root)
	root = NewConfigValidateCmd(flags).Register(root)

	return root
}
