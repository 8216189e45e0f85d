package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todoprog/internal/core/styles"
	"github.com/colonyops/todoprog/internal/core/todo"
	"github.com/colonyops/todoprog/internal/host"
	"github.com/colonyops/todoprog/pkg/iojson"
)

// TaskCmd implements the add, rm, toggle and ls commands.
type TaskCmd struct {
	flags *Flags
	app   *host.App

	account    string
	jsonOutput bool
}

// NewTaskCmd creates the task commands.
func NewTaskCmd(flags *Flags, app *host.App) *TaskCmd {
	return &TaskCmd{flags: flags, app: app}
}

// Register adds the task commands to the application.
func (cmd *TaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		cmd.addCmd(),
		cmd.removeCmd(),
		cmd.toggleCmd(),
		cmd.listCmd(),
	)
	return app
}

func (cmd *TaskCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a task",
		UsageText: "todoprog add [--account <name>] <content...>",
		Description: `Appends a task. The new task gets the next id after the highest id
ever assigned in the account.

Examples:
  todoprog add buy milk
  todoprog add -a work "review the release notes"`,
		Flags:  []cli.Flag{accountFlag(&cmd.account)},
		Action: cmd.runAdd,
	}
}

func (cmd *TaskCmd) removeCmd() *cli.Command {
	return &cli.Command{
		Name:        "rm",
		Aliases:     []string{"delete"},
		Usage:       "Delete a task",
		UsageText:   "todoprog rm [--account <name>] <id>",
		Description: "Deletes the task with the given id. Unknown ids leave the list unchanged.",
		Flags:       []cli.Flag{accountFlag(&cmd.account)},
		Action:      cmd.runRemove,
	}
}

func (cmd *TaskCmd) toggleCmd() *cli.Command {
	return &cli.Command{
		Name:        "toggle",
		Usage:       "Toggle a task's completed flag",
		UsageText:   "todoprog toggle [--account <name>] <id>",
		Description: "Flips the completed flag of the task with the given id. Unknown ids leave the list unchanged.",
		Flags:       []cli.Flag{accountFlag(&cmd.account)},
		Action:      cmd.runToggle,
	}
}

func (cmd *TaskCmd) listCmd() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List tasks",
		UsageText: "todoprog ls [--account <name>] [--json]",
		Description: `Lists tasks in insertion order.

Output is a checklist on a terminal and JSON lines otherwise or with --json.`,
		Flags: []cli.Flag{
			accountFlag(&cmd.account),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.runList,
	}
}

// TaskResult is printed after a task command is committed.
type TaskResult struct {
	TxID    string `json:"tx_id"`
	Account string `json:"account"`
	ID      uint64 `json:"id"`
	Changed bool   `json:"changed"`
}

func (cmd *TaskCmd) runAdd(ctx context.Context, c *cli.Command) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: todoprog add <content...>")
	}
	return cmd.submit(ctx, c, todo.Insert{Content: strings.Join(c.Args().Slice(), " ")})
}

func (cmd *TaskCmd) runRemove(ctx context.Context, c *cli.Command) error {
	id, err := parseID(c, "rm")
	if err != nil {
		return err
	}
	return cmd.submit(ctx, c, todo.Remove{ID: id})
}

func (cmd *TaskCmd) runToggle(ctx context.Context, c *cli.Command) error {
	id, err := parseID(c, "toggle")
	if err != nil {
		return err
	}
	return cmd.submit(ctx, c, todo.Toggle{ID: id})
}

// submit runs command against the account. The outcome is computed by
// applying command to the list read just before submitting.
func (cmd *TaskCmd) submit(ctx context.Context, c *cli.Command, command todo.Command) error {
	name := accountName(cmd.app, cmd.account)
	cl := clientFor(cmd.app, name)

	before, err := cl.List(ctx)
	if err != nil {
		return explainAccountErr(name, err)
	}

	receipt, err := cl.Execute(ctx, command)
	if err != nil {
		return err
	}

	_, out := todo.Apply(before, command)

	return iojson.WriteLine(c.Root().Writer, TaskResult{
		TxID:    receipt.TxID,
		Account: name,
		ID:      out.ID,
		Changed: out.Applied,
	})
}

func (cmd *TaskCmd) runList(ctx context.Context, c *cli.Command) error {
	name := accountName(cmd.app, cmd.account)

	l, err := clientFor(cmd.app, name).List(ctx)
	if err != nil {
		return explainAccountErr(name, err)
	}

	out := c.Root().Writer
	if !cmd.jsonOutput && isTerminal(out) {
		_, err := fmt.Fprint(out, styles.RenderTasks(name, l))
		return err
	}

	for _, it := range l.Items {
		if err := iojson.WriteLine(out, it); err != nil {
			return err
		}
	}
	return nil
}

func parseID(c *cli.Command, name string) (uint64, error) {
	if c.NArg() < 1 {
		return 0, fmt.Errorf("usage: todoprog %s <id>", name)
	}
	id, err := strconv.ParseUint(c.Args().First(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", c.Args().First(), err)
	}
	return id, nil
}
