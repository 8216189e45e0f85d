// Package ledger defines the storage accounts and transaction records kept
// by the local host that runs the program.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/colonyops/todoprog/internal/core/program"
)

var (
	// ErrNotFound is returned when an account does not exist.
	ErrNotFound = errors.New("account not found")
	// ErrExists is returned when creating an account whose name or key is taken.
	ErrExists = errors.New("account already exists")
	// ErrSpaceMismatch is returned when account data would change size.
	ErrSpaceMismatch = errors.New("account data size cannot change")
)

// Account is a storage account as persisted by the host.
type Account struct {
	Name      string         `json:"name"`
	Key       program.Pubkey `json:"key"`
	Owner     program.Pubkey `json:"owner"`
	Data      []byte         `json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Space returns the fixed capacity of the account's data buffer.
func (a Account) Space() int {
	return len(a.Data)
}

// NewAccount returns an account named name with a zero-filled buffer of
// space bytes owned by owner. The key is derived from the name.
func NewAccount(name string, owner program.Pubkey, space int) Account {
	now := time.Now()
	return Account{
		Name:      name,
		Key:       AccountKey(name),
		Owner:     owner,
		Data:      make([]byte, space),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AccountKey derives the key of a named account.
func AccountKey(name string) program.Pubkey {
	return program.KeyFromSeed("account:" + name)
}

// AccountStore persists storage accounts.
type AccountStore interface {
	// Create persists a new account. Returns ErrExists if the name or key is taken.
	Create(ctx context.Context, acct Account) error

	// Get returns the account with key. Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, key program.Pubkey) (Account, error)

	// List returns all accounts ordered by name.
	List(ctx context.Context) ([]Account, error)

	// UpdateData replaces the data of the account with key.
	// Returns ErrNotFound if it does not exist and ErrSpaceMismatch if
	// len(data) differs from the account's space.
	UpdateData(ctx context.Context, key program.Pubkey, data []byte) error
}
