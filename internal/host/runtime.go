// Package host runs the program against accounts kept in a ledger store,
// playing the part of the runtime that owns account buffers.
package host

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/todoprog/internal/core/ledger"
	"github.com/colonyops/todoprog/internal/core/logging"
	"github.com/colonyops/todoprog/internal/core/program"
)

// ErrInvalidSpace is returned when an account is created without any space.
var ErrInvalidSpace = errors.New("account space must be positive")

// Processor executes one instruction against the supplied accounts.
type Processor interface {
	Process(ctx context.Context, programID program.Pubkey, accounts []*program.Account, data []byte) error
}

// Receipt identifies a committed transaction.
type Receipt struct {
	TxID string `json:"tx_id"`
}

// Runtime serializes instruction execution and commits account data only
// when the program returns without error.
type Runtime struct {
	mu       sync.Mutex
	accounts ledger.AccountStore
	txlog    ledger.TxLog
	proc     Processor
	log      zerolog.Logger
	newID    func() string
}

// NewRuntime creates a Runtime.
func NewRuntime(accounts ledger.AccountStore, txlog ledger.TxLog, proc Processor, log zerolog.Logger) *Runtime {
	return &Runtime{
		accounts: accounts,
		txlog:    txlog,
		proc:     proc,
		log:      log,
		newID:    uuid.NewString,
	}
}

// CreateAccount allocates a zero-filled account of space bytes owned by owner.
func (r *Runtime) CreateAccount(ctx context.Context, name string, owner program.Pubkey, space int) (ledger.Account, error) {
	if space <= 0 {
		return ledger.Account{}, fmt.Errorf("%w: got %d", ErrInvalidSpace, space)
	}

	acct := ledger.NewAccount(name, owner, space)
	if err := r.accounts.Create(ctx, acct); err != nil {
		return ledger.Account{}, err
	}

	r.log.Info().
		Str("name", name).
		Str("key", acct.Key.String()).
		Str("owner", owner.String()).
		Int("space", space).
		Msg("account created")

	return acct, nil
}

// Account returns the account with key.
func (r *Runtime) Account(ctx context.Context, key program.Pubkey) (ledger.Account, error) {
	return r.accounts.Get(ctx, key)
}

// Accounts returns every account.
func (r *Runtime) Accounts(ctx context.Context) ([]ledger.Account, error) {
	return r.accounts.List(ctx)
}

// Transactions returns up to limit recorded transactions, newest first.
func (r *Runtime) Transactions(ctx context.Context, limit int) ([]ledger.Tx, error) {
	return r.txlog.List(ctx, limit)
}

// Submit runs data as programID against the accounts named by keys.
//
// The program sees copies of the account buffers. Changed buffers are
// written back only after the program succeeds, so a failed instruction
// leaves every account as it was. Each call is recorded in the transaction
// log whether it succeeds or not.
func (r *Runtime) Submit(ctx context.Context, programID program.Pubkey, keys []program.Pubkey, data []byte) (Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := ledger.Tx{
		ID:          r.newID(),
		ProgramID:   programID,
		Instruction: bytes.Clone(data),
		CreatedAt:   time.Now(),
	}
	if len(keys) > 0 {
		tx.Account = keys[0]
	}
	ctx = logging.WithTxID(ctx, tx.ID)

	err := r.execute(ctx, programID, keys, data)
	if err != nil {
		tx.Status = ledger.TxStatusFailed
		tx.Error = err.Error()
	} else {
		tx.Status = ledger.TxStatusOK
	}

	if logErr := r.txlog.Record(ctx, tx); logErr != nil {
		r.log.Error().Ctx(ctx).Err(logErr).Msg("failed to record transaction")
	}

	if err != nil {
		r.log.Warn().Ctx(ctx).Err(err).Msg("transaction failed")
		return Receipt{}, fmt.Errorf("transaction %s: %w", tx.ID, err)
	}

	r.log.Debug().Ctx(ctx).Msg("transaction committed")
	return Receipt{TxID: tx.ID}, nil
}

func (r *Runtime) execute(ctx context.Context, programID program.Pubkey, keys []program.Pubkey, data []byte) error {
	stored := make([]ledger.Account, 0, len(keys))
	working := make([]*program.Account, 0, len(keys))
	for _, key := range keys {
		acct, err := r.accounts.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("load account: %w", err)
		}
		stored = append(stored, acct)
		working = append(working, &program.Account{
			Key:   acct.Key,
			Owner: acct.Owner,
			Data:  bytes.Clone(acct.Data),
		})
	}

	if err := r.proc.Process(ctx, programID, working, data); err != nil {
		return err
	}

	for i, acct := range working {
		if bytes.Equal(acct.Data, stored[i].Data) {
			continue
		}
		if err := r.accounts.UpdateData(ctx, acct.Key, acct.Data); err != nil {
			return fmt.Errorf("commit account %s: %w", acct.Key.Short(), err)
		}
	}

	return nil
}
