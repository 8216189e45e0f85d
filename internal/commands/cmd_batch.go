package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/todoprog/internal/core/ledger"
	"github.com/colonyops/todoprog/internal/core/todo"
	"github.com/colonyops/todoprog/internal/core/validate"
	"github.com/colonyops/todoprog/internal/host"
	"github.com/colonyops/todoprog/pkg/iojson"
)

// BatchCmd applies a list of task operations read as JSON.
type BatchCmd struct {
	flags *Flags
	app   *host.App
	fr    *iojson.FileReader[BatchInput]
}

func NewBatchCmd(flags *Flags, app *host.App) *BatchCmd {
	return &BatchCmd{
		flags: flags,
		app:   app,
		fr:    &iojson.FileReader[BatchInput]{},
	}
}

func (cmd *BatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "batch",
		Usage: "Apply task operations from JSON input",
		UsageText: `todoprog batch [options]

Read from stdin:
  echo '{"ops":[{"op":"add","content":"buy milk"}]}' | todoprog batch

Read from file:
  todoprog batch -f ops.json`,
		Description: `Submits each operation as its own transaction, in order.

Processing stops at the first failed operation. Operations not attempted
are marked as skipped.

Input JSON schema:
  {
    "account": "optional account name",
    "ops": [
      {"op": "add", "content": "task text"},
      {"op": "toggle", "id": 1},
      {"op": "rm", "id": 2}
    ]
  }

Output is JSON with the result of each operation.`,
		Flags:  []cli.Flag{cmd.fr.Flag()},
		Action: cmd.run,
	})

	return app
}

// BatchInput is the JSON document read by the batch command.
type BatchInput struct {
	Account string    `json:"account,omitempty"`
	Ops     []BatchOp `json:"ops"`
}

// BatchOp is a single task operation.
type BatchOp struct {
	Op      string `json:"op"`
	Content string `json:"content,omitempty"`
	ID      uint64 `json:"id,omitempty"`
}

// Command converts the operation to a todo command.
func (o BatchOp) Command() (todo.Command, error) {
	switch o.Op {
	case "add":
		return todo.Insert{Content: o.Content}, nil
	case "rm":
		return todo.Remove{ID: o.ID}, nil
	case "toggle":
		return todo.Toggle{ID: o.ID}, nil
	default:
		return nil, fmt.Errorf("unknown op %q (expected add, rm or toggle)", o.Op)
	}
}

// Validate checks the batch input for errors using criterio.
func (b BatchInput) Validate() error {
	if len(b.Ops) == 0 {
		return criterio.NewFieldErrors("ops", fmt.Errorf("array is empty"))
	}

	var errs criterio.FieldErrorsBuilder
	if b.Account != "" {
		if err := validate.AccountName(b.Account); err != nil {
			errs = errs.Append("account", err)
		}
	}

	for i, op := range b.Ops {
		field := fmt.Sprintf("ops[%d]", i)

		if _, err := op.Command(); err != nil {
			errs = errs.Append(field+".op", err)
			continue
		}

		switch op.Op {
		case "add":
			if strings.TrimSpace(op.Content) == "" {
				errs = errs.Append(field+".content", fmt.Errorf("cannot be empty"))
			}
		default:
			if op.ID == 0 {
				errs = errs.Append(field+".id", fmt.Errorf("is required"))
			}
		}
	}

	return errs.ToError()
}

// BatchResult is the output for a single operation.
type BatchResult struct {
	Index  int    `json:"index"`
	Op     string `json:"op"`
	Status string `json:"status"`
	TxID   string `json:"tx_id,omitempty"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusApplied = "applied"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// BatchOutput is the JSON output of the batch command.
type BatchOutput struct {
	Account string        `json:"account"`
	Results []BatchResult `json:"results"`
}

func (cmd *BatchCmd) run(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer

	input, err := cmd.fr.Read()
	if err != nil {
		return iojson.WriteError(w, fmt.Sprintf("read input: %s", err), nil)
	}

	if err := input.Validate(); err != nil {
		return iojson.WriteError(w, fmt.Sprintf("invalid input: %s", err), nil)
	}

	name := accountName(cmd.app, input.Account)
	if _, err := cmd.app.Runtime.Account(ctx, ledger.AccountKey(name)); err != nil {
		return iojson.WriteError(w, explainAccountErr(name, err).Error(), nil)
	}

	return iojson.Write(w, cmd.apply(ctx, name, input.Ops))
}

func (cmd *BatchCmd) apply(ctx context.Context, name string, ops []BatchOp) BatchOutput {
	cl := clientFor(cmd.app, name)
	output := BatchOutput{
		Account: name,
		Results: make([]BatchResult, 0, len(ops)),
	}

	failed := false
	for i, op := range ops {
		res := BatchResult{Index: i, Op: op.Op}

		if failed {
			res.Status = StatusSkipped
			output.Results = append(output.Results, res)
			continue
		}

		command, _ := op.Command()
		receipt, err := cl.Execute(ctx, command)
		if err != nil {
			res.Status = StatusFailed
			res.Error = err.Error()
			failed = true
		} else {
			res.Status = StatusApplied
			res.TxID = receipt.TxID
		}
		output.Results = append(output.Results, res)
	}

	return output
}
