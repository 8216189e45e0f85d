package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/colonyops/todoprog/internal/core/ledger"
	"github.com/colonyops/todoprog/internal/core/program"
	"github.com/colonyops/todoprog/internal/data/db"
)

// TxStore implements ledger.TxLog using SQLite.
type TxStore struct {
	db *db.DB
}

var _ ledger.TxLog = (*TxStore)(nil)

// NewTxStore creates a new SQLite-backed transaction log.
func NewTxStore(db *db.DB) *TxStore {
	return &TxStore{db: db}
}

// Record appends tx to the log.
func (s *TxStore) Record(ctx context.Context, tx ledger.Tx) error {
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	_, err := s.db.Conn().ExecContext(ctx,
		`INSERT INTO transactions (id, seq, program_id, account, instruction, status, error, created_at)
		 VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM transactions), ?, ?, ?, ?, ?, ?)`,
		tx.ID,
		tx.ProgramID.String(),
		tx.Account.String(),
		tx.Instruction,
		string(tx.Status),
		toNullString(tx.Error),
		tx.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("record transaction: %w", err)
	}
	return nil
}

// List returns up to limit transactions, newest first.
func (s *TxStore) List(ctx context.Context, limit int) ([]ledger.Tx, error) {
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}

	rows, err := s.db.Conn().QueryContext(ctx,
		`SELECT id, program_id, account, instruction, status, error, created_at
		 FROM transactions ORDER BY seq DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	txs := []ledger.Tx{}
	for rows.Next() {
		var (
			tx                 ledger.Tx
			programID, account string
			status             string
			errMsg             sql.NullString
			createdAt          int64
		)
		if err := rows.Scan(&tx.ID, &programID, &account, &tx.Instruction, &status, &errMsg, &createdAt); err != nil {
			return nil, fmt.Errorf("list transactions: %w", err)
		}

		if tx.ProgramID, err = program.ParsePubkey(programID); err != nil {
			return nil, fmt.Errorf("transaction %s program id: %w", tx.ID, err)
		}
		if tx.Account, err = program.ParsePubkey(account); err != nil {
			return nil, fmt.Errorf("transaction %s account: %w", tx.ID, err)
		}
		tx.Status = ledger.TxStatus(status)
		tx.Error = fromNullString(errMsg)
		tx.CreatedAt = time.Unix(0, createdAt)

		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return txs, nil
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func fromNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
