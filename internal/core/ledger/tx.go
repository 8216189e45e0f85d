package ledger

import (
	"context"
	"time"

	"github.com/colonyops/todoprog/internal/core/program"
)

// TxStatus is the result of a submitted transaction.
type TxStatus string

const (
	TxStatusOK     TxStatus = "ok"
	TxStatusFailed TxStatus = "failed"
)

// Tx records one instruction submitted to the host.
type Tx struct {
	ID          string         `json:"id"`
	ProgramID   program.Pubkey `json:"program_id"`
	Account     program.Pubkey `json:"account"`
	Instruction []byte         `json:"instruction"`
	Status      TxStatus       `json:"status"`
	Error       string         `json:"error,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// TxLog persists submitted transactions.
type TxLog interface {
	// Record appends tx to the log.
	Record(ctx context.Context, tx Tx) error

	// List returns up to limit transactions, newest first. A limit of 0 means no limit.
	List(ctx context.Context, limit int) ([]Tx, error)
}
