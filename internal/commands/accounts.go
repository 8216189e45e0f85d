package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/todoprog/internal/client"
	"github.com/colonyops/todoprog/internal/core/ledger"
	"github.com/colonyops/todoprog/internal/host"
)

// accountFlag binds the --account flag shared by the task commands.
func accountFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "account",
		Aliases:     []string{"a"},
		Usage:       "storage account name (defaults to accounts.default_name)",
		Destination: dest,
	}
}

// accountName returns name, or the configured default when name is empty.
func accountName(app *host.App, name string) string {
	if name == "" {
		return app.Config.Accounts.DefaultName
	}
	return name
}

// clientFor returns a client for the named account.
func clientFor(app *host.App, name string) *client.Client {
	return client.New(app.Runtime, app.Config.Program(), ledger.AccountKey(accountName(app, name)))
}

// explainAccountErr adds a hint when the account has not been created yet.
func explainAccountErr(name string, err error) error {
	if errors.Is(err, ledger.ErrNotFound) {
		return fmt.Errorf("account %q does not exist, create it with 'todoprog account create %s': %w", name, name, err)
	}
	return err
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// AccountNameCompleter suggests account names as positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func AccountNameCompleter(app *host.App) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		accounts, err := app.Runtime.Accounts(ctx)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, a := range accounts {
			_, _ = fmt.Fprintln(w, a.Name)
		}
	}
}
