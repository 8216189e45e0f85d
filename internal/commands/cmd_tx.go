package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todoprog/internal/core/codec"
	"github.com/colonyops/todoprog/internal/core/ledger"
	"github.com/colonyops/todoprog/internal/core/todo"
	"github.com/colonyops/todoprog/internal/host"
	"github.com/colonyops/todoprog/pkg/iojson"
)

// TxCmd implements the todoprog tx command group.
type TxCmd struct {
	flags *Flags
	app   *host.App

	limit int
}

// NewTxCmd creates a new tx command.
func NewTxCmd(flags *Flags, app *host.App) *TxCmd {
	return &TxCmd{flags: flags, app: app}
}

// Register adds the tx command to the application.
func (cmd *TxCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "tx",
		Usage: "Inspect the transaction log",
		Commands: []*cli.Command{
			{
				Name:        "list",
				Aliases:     []string{"ls"},
				Usage:       "List transactions, newest first",
				UsageText:   "todoprog tx ls [--limit <n>]",
				Description: "Lists submitted transactions as JSON lines, including failed ones.",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "limit",
						Aliases:     []string{"n"},
						Usage:       "maximum transactions to show (0 for all)",
						Value:       20,
						Destination: &cmd.limit,
					},
				},
				Action: cmd.runList,
			},
		},
	})

	return app
}

// TxInfo is the JSON shape of a transaction in command output.
type TxInfo struct {
	ID          string          `json:"id"`
	Status      ledger.TxStatus `json:"status"`
	Account     string          `json:"account"`
	ProgramID   string          `json:"program_id"`
	Instruction string          `json:"instruction"`
	Command     string          `json:"command"`
	Error       string          `json:"error,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (cmd *TxCmd) runList(ctx context.Context, c *cli.Command) error {
	txs, err := cmd.app.Runtime.Transactions(ctx, cmd.limit)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	for _, tx := range txs {
		info := TxInfo{
			ID:          tx.ID,
			Status:      tx.Status,
			Account:     tx.Account.String(),
			ProgramID:   tx.ProgramID.String(),
			Instruction: hex.EncodeToString(tx.Instruction),
			Command:     describeInstruction(tx.Instruction),
			Error:       tx.Error,
			CreatedAt:   tx.CreatedAt,
		}
		if err := iojson.WriteLine(c.Root().Writer, info); err != nil {
			return err
		}
	}
	return nil
}

// describeInstruction renders instruction bytes as a short human summary.
func describeInstruction(data []byte) string {
	cmd, err := codec.DecodeCommand(data)
	if err != nil {
		return "invalid"
	}

	switch v := cmd.(type) {
	case todo.Insert:
		return fmt.Sprintf("insert %q", v.Content)
	case todo.Remove:
		return fmt.Sprintf("remove %d", v.ID)
	case todo.Toggle:
		return fmt.Sprintf("toggle %d", v.ID)
	default:
		return cmd.Tag().String()
	}
}
