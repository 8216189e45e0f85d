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

// AccountStore implements ledger.AccountStore using SQLite.
type AccountStore struct {
	db *db.DB
}

var _ ledger.AccountStore = (*AccountStore)(nil)

// NewAccountStore creates a new SQLite-backed account store.
func NewAccountStore(db *db.DB) *AccountStore {
	return &AccountStore{db: db}
}

// Create persists a new account.
func (s *AccountStore) Create(ctx context.Context, acct ledger.Account) error {
	_, err := s.db.Conn().ExecContext(ctx,
		`INSERT INTO accounts (key, name, owner, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		acct.Key.String(),
		acct.Name,
		acct.Owner.String(),
		acct.Data,
		acct.CreatedAt.UnixNano(),
		acct.UpdatedAt.UnixNano(),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: %s", ledger.ErrExists, acct.Name)
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// Get returns the account with key.
func (s *AccountStore) Get(ctx context.Context, key program.Pubkey) (ledger.Account, error) {
	row := s.db.Conn().QueryRowContext(ctx,
		`SELECT key, name, owner, data, created_at, updated_at FROM accounts WHERE key = ?`,
		key.String(),
	)

	acct, err := scanAccount(row)
	if err != nil {
		if IsNotFoundError(err) {
			return ledger.Account{}, fmt.Errorf("%w: %s", ledger.ErrNotFound, key)
		}
		return ledger.Account{}, fmt.Errorf("get account: %w", err)
	}
	return acct, nil
}

// List returns all accounts ordered by name.
func (s *AccountStore) List(ctx context.Context) ([]ledger.Account, error) {
	rows, err := s.db.Conn().QueryContext(ctx,
		`SELECT key, name, owner, data, created_at, updated_at FROM accounts ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	accounts := []ledger.Account{}
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("list accounts: %w", err)
		}
		accounts = append(accounts, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	return accounts, nil
}

// UpdateData replaces the account's data. The size is checked against the
// stored buffer inside the same transaction as the write.
func (s *AccountStore) UpdateData(ctx context.Context, key program.Pubkey, data []byte) error {
	return s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var space int
		err := tx.QueryRowContext(ctx, `SELECT length(data) FROM accounts WHERE key = ?`, key.String()).Scan(&space)
		if err != nil {
			if IsNotFoundError(err) {
				return fmt.Errorf("%w: %s", ledger.ErrNotFound, key)
			}
			return fmt.Errorf("update account data: %w", err)
		}

		if space != len(data) {
			return fmt.Errorf("%w: have %d bytes, got %d", ledger.ErrSpaceMismatch, space, len(data))
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE accounts SET data = ?, updated_at = ? WHERE key = ?`,
			data, time.Now().UnixNano(), key.String(),
		)
		if err != nil {
			return fmt.Errorf("update account data: %w", err)
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (ledger.Account, error) {
	var (
		key, name, owner     string
		data                 []byte
		createdAt, updatedAt int64
	)
	if err := row.Scan(&key, &name, &owner, &data, &createdAt, &updatedAt); err != nil {
		return ledger.Account{}, err
	}

	acct := ledger.Account{
		Name:      name,
		Data:      data,
		CreatedAt: time.Unix(0, createdAt),
		UpdatedAt: time.Unix(0, updatedAt),
	}

	var err error
	if acct.Key, err = program.ParsePubkey(key); err != nil {
		return ledger.Account{}, fmt.Errorf("account key: %w", err)
	}
	if acct.Owner, err = program.ParsePubkey(owner); err != nil {
		return ledger.Account{}, fmt.Errorf("account owner: %w", err)
	}
	if acct.Data == nil {
		acct.Data = []byte{}
	}

	return acct, nil
}
