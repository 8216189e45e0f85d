package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todoprog/internal/host"
	"github.com/colonyops/todoprog/pkg/iojson"
)

// ExecCmd submits raw instruction bytes.
type ExecCmd struct {
	flags   *Flags
	app     *host.App
	account string
}

// NewExecCmd creates a new exec command.
func NewExecCmd(flags *Flags, app *host.App) *ExecCmd {
	return &ExecCmd{flags: flags, app: app}
}

// Register adds the exec command to the application.
func (cmd *ExecCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "exec",
		Usage:     "Submit a hex encoded instruction",
		UsageText: "todoprog exec [--account <name>] <hex>",
		Description: `Submits raw instruction bytes to the program, bypassing the task commands.

Instruction layout (little endian):
  00 <u32 len> <utf-8>   insert
  01 <u64 id>            remove
  02 <u64 id>            toggle

Examples:
  todoprog exec 0003000000616263        # insert "abc"
  todoprog exec 020100000000000000      # toggle 1`,
		Flags:  []cli.Flag{accountFlag(&cmd.account)},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExecCmd) run(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: todoprog exec <hex>")
	}

	data, err := hex.DecodeString(strings.Join(c.Args().Slice(), ""))
	if err != nil {
		return fmt.Errorf("invalid hex instruction: %w", err)
	}

	name := accountName(cmd.app, cmd.account)
	receipt, err := clientFor(cmd.app, name).ExecuteRaw(ctx, data)
	if err != nil {
		return explainAccountErr(name, err)
	}

	return iojson.WriteLine(c.Root().Writer, receipt)
}
