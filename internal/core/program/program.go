// Package program is the entry point invoked by a host with a program ID,
// the accounts of a transaction and the raw instruction bytes.
package program

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/todoprog/internal/core/codec"
	"github.com/colonyops/todoprog/internal/core/logging"
	"github.com/colonyops/todoprog/internal/core/todo"
)

var (
	// ErrUnauthorized is returned when the storage account is not owned by the invoking program.
	ErrUnauthorized = errors.New("account not owned by program")
	// ErrMissingAccount is returned when no storage account is supplied.
	ErrMissingAccount = errors.New("missing storage account")
)

// Processor runs instructions against a storage account.
type Processor struct {
	log zerolog.Logger
}

// NewProcessor creates a Processor that logs through l.
func NewProcessor(l zerolog.Logger) *Processor {
	return &Processor{log: l}
}

// Process decodes data, applies it to the task list held by accounts[0]
// and writes the result back into that account's buffer.
//
// The ownership check runs before anything else is read. On any error the
// account buffer is left exactly as it was.
func (p *Processor) Process(ctx context.Context, programID Pubkey, accounts []*Account, data []byte) error {
	ctx = logging.WithProgramID(ctx, programID.String())

	if len(accounts) == 0 || accounts[0] == nil {
		return ErrMissingAccount
	}
	acct := accounts[0]
	ctx = logging.WithAccount(ctx, acct.Key.String())

	if acct.Owner != programID {
		p.log.Warn().Ctx(ctx).Str("owner", acct.Owner.String()).Msg("rejecting account owned by another program")
		return fmt.Errorf("%w: owner %s", ErrUnauthorized, acct.Owner)
	}

	cmd, err := codec.DecodeCommand(data)
	if err != nil {
		return fmt.Errorf("decode instruction: %w", err)
	}
	p.log.Debug().Ctx(ctx).Stringer("cmd", cmd.Tag()).Int("len", len(data)).Msg("decoded instruction")

	list, err := codec.DecodeList(acct.Data)
	if err != nil {
		return fmt.Errorf("decode account data: %w", err)
	}

	next, out := todo.Apply(list, cmd)

	if err := codec.WriteList(next, acct.Data); err != nil {
		return fmt.Errorf("write account data: %w", err)
	}

	p.logOutcome(ctx, cmd, out, len(next.Items))
	return nil
}

func (p *Processor) logOutcome(ctx context.Context, cmd todo.Command, out todo.Outcome, count int) {
	if !out.Applied {
		p.log.Debug().Ctx(ctx).Stringer("cmd", cmd.Tag()).Uint64("id", out.ID).Msg("no task with id, nothing changed")
		return
	}

	msg := "task added"
	switch cmd.(type) {
	case todo.Remove:
		msg = "task deleted"
	case todo.Toggle:
		msg = "task toggled"
	}
	p.log.Info().Ctx(ctx).Uint64("id", out.ID).Int("tasks", count).Msg(msg)
}
