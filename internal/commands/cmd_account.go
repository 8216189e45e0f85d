package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todoprog/internal/core/codec"
	"github.com/colonyops/todoprog/internal/core/config"
	"github.com/colonyops/todoprog/internal/core/ledger"
	"github.com/colonyops/todoprog/internal/core/program"
	"github.com/colonyops/todoprog/internal/core/validate"
	"github.com/colonyops/todoprog/internal/host"
	"github.com/colonyops/todoprog/pkg/iojson"
)

// AccountCmd implements the todoprog account command group.
type AccountCmd struct {
	flags *Flags
	app   *host.App

	// create flags
	createSpace int
	createOwner string

	// ls flags
	listJSON bool

	// show flags
	showAll bool
}

// NewAccountCmd creates a new account command.
func NewAccountCmd(flags *Flags, app *host.App) *AccountCmd {
	return &AccountCmd{flags: flags, app: app}
}

// Register adds the account command to the application.
func (cmd *AccountCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "account",
		Usage: "Manage storage accounts",
		Description: `Storage accounts hold the serialized task list.

An account has a fixed amount of space chosen at creation and an owner.
Only accounts owned by the program ID can be changed by task commands.

Examples:
  todoprog account create                  # create the default account
  todoprog account create work --space 512
  todoprog account ls
  todoprog account show work`,
		Commands: []*cli.Command{
			cmd.createCmd(),
			cmd.listCmd(),
			cmd.showCmd(),
		},
	})

	return app
}

func (cmd *AccountCmd) createCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a storage account",
		UsageText: "todoprog account create [name] [--space <bytes>] [--owner <hex>]",
		Description: `Allocates a zero-filled account owned by the program ID.

Use --owner to create an account owned by a different program; task
commands against it are rejected.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "space",
				Aliases:     []string{"s"},
				Usage:       "bytes to allocate (defaults to accounts.default_space)",
				Destination: &cmd.createSpace,
			},
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "hex encoded owner (defaults to the program ID)",
				Destination: &cmd.createOwner,
			},
		},
		Action: cmd.runCreate,
	}
}

func (cmd *AccountCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List storage accounts",
		UsageText: "todoprog account ls [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.listJSON,
			},
		},
		Action: cmd.runList,
	}
}

func (cmd *AccountCmd) showCmd() *cli.Command {
	return &cli.Command{
		Name:          "show",
		Usage:         "Hex dump an account's data",
		UsageText:     "todoprog account show [name] [--all]",
		Description:   "Prints account metadata and a hex dump of the encoded task list. Use --all to include padding.",
		ShellComplete: AccountNameCompleter(cmd.app),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "dump the whole buffer including padding",
				Destination: &cmd.showAll,
			},
		},
		Action: cmd.runShow,
	}
}

// AccountInfo is the JSON shape of an account in command output.
type AccountInfo struct {
	Name      string    `json:"name"`
	Key       string    `json:"key"`
	Owner     string    `json:"owner"`
	Space     int       `json:"space"`
	Owned     bool      `json:"owned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (cmd *AccountCmd) info(a ledger.Account) AccountInfo {
	return AccountInfo{
		Name:      a.Name,
		Key:       a.Key.String(),
		Owner:     a.Owner.String(),
		Space:     a.Space(),
		Owned:     a.Owner == cmd.app.Config.Program(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (cmd *AccountCmd) runCreate(ctx context.Context, c *cli.Command) error {
	name := accountName(cmd.app, c.Args().First())
	if err := validate.AccountName(name); err != nil {
		return err
	}

	space := cmd.createSpace
	if space == 0 {
		space = cmd.app.Config.Accounts.DefaultSpace
	}
	if err := config.ValidateSpace(space); err != nil {
		return err
	}

	owner := cmd.app.Config.Program()
	if cmd.createOwner != "" {
		pk, err := program.ParsePubkey(cmd.createOwner)
		if err != nil {
			return fmt.Errorf("invalid --owner: %w", err)
		}
		owner = pk
	}

	acct, err := cmd.app.Runtime.CreateAccount(ctx, name, owner, space)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	return iojson.WriteLine(c.Root().Writer, cmd.info(acct))
}

func (cmd *AccountCmd) runList(ctx context.Context, c *cli.Command) error {
	accounts, err := cmd.app.Runtime.Accounts(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	out := c.Root().Writer
	if cmd.listJSON {
		for _, a := range accounts {
			if err := iojson.WriteLine(out, cmd.info(a)); err != nil {
				return err
			}
		}
		return nil
	}

	if len(accounts) == 0 {
		_, _ = fmt.Fprintln(out, "no accounts")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tKEY\tOWNER\tSPACE\tOWNED")
	for _, a := range accounts {
		info := cmd.info(a)
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%t\n", info.Name, a.Key.Short(), a.Owner.Short(), info.Space, info.Owned)
	}
	return w.Flush()
}

func (cmd *AccountCmd) runShow(ctx context.Context, c *cli.Command) error {
	name := accountName(cmd.app, c.Args().First())

	acct, err := cmd.app.Runtime.Account(ctx, ledger.AccountKey(name))
	if err != nil {
		return explainAccountErr(name, err)
	}

	out := c.Root().Writer
	info := cmd.info(acct)
	_, _ = fmt.Fprintf(out, "name:  %s\nkey:   %s\nowner: %s\nspace: %d\n", info.Name, info.Key, info.Owner, info.Space)

	data := acct.Data
	if !cmd.showAll {
		l, err := codec.DecodeList(acct.Data)
		if err != nil {
			_, _ = fmt.Fprintf(out, "data:  undecodable (%v)\n", err)
		} else {
			used := min(codec.EncodedSize(l), len(acct.Data))
			_, _ = fmt.Fprintf(out, "used:  %d (%d tasks, last id %d)\n", used, len(l.Items), l.LastID)
			data = acct.Data[:used]
		}
	}

	_, _ = fmt.Fprint(out, hex.Dump(data))
	return nil
}
