package host

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/colonyops/todoprog/internal/core/ledger"
	"github.com/colonyops/todoprog/internal/core/program"
	"github.com/colonyops/todoprog/pkg/kv"
)

// MemoryAccounts is an in-process ledger.AccountStore.
type MemoryAccounts struct {
	byKey  *kv.Store[string, ledger.Account]
	byName *kv.Store[string, string]
}

var _ ledger.AccountStore = (*MemoryAccounts)(nil)

// NewMemoryAccounts creates an empty MemoryAccounts.
func NewMemoryAccounts() *MemoryAccounts {
	return &MemoryAccounts{
		byKey:  kv.New[string, ledger.Account](),
		byName: kv.New[string, string](),
	}
}

func (m *MemoryAccounts) Create(_ context.Context, acct ledger.Account) error {
	key := acct.Key.String()
	if !m.byName.SetIfAbsent(acct.Name, key) {
		return fmt.Errorf("%w: %s", ledger.ErrExists, acct.Name)
	}

	acct.Data = bytes.Clone(acct.Data)
	if !m.byKey.SetIfAbsent(key, acct) {
		m.byName.Delete(acct.Name)
		return fmt.Errorf("%w: %s", ledger.ErrExists, key)
	}
	return nil
}

func (m *MemoryAccounts) Get(_ context.Context, key program.Pubkey) (ledger.Account, error) {
	acct, ok := m.byKey.Get(key.String())
	if !ok {
		return ledger.Account{}, fmt.Errorf("%w: %s", ledger.ErrNotFound, key)
	}
	acct.Data = bytes.Clone(acct.Data)
	return acct, nil
}

func (m *MemoryAccounts) List(ctx context.Context) ([]ledger.Account, error) {
	names := m.byName.Keys()
	accounts := make([]ledger.Account, 0, len(names))
	for _, name := range names {
		key, ok := m.byName.Get(name)
		if !ok {
			continue
		}
		pk, err := program.ParsePubkey(key)
		if err != nil {
			return nil, err
		}
		acct, err := m.Get(ctx, pk)
		if err != nil {
			continue
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

func (m *MemoryAccounts) UpdateData(_ context.Context, key program.Pubkey, data []byte) error {
	var sizeErr error
	ok := m.byKey.Update(key.String(), func(acct ledger.Account) (ledger.Account, bool) {
		if len(acct.Data) != len(data) {
			sizeErr = fmt.Errorf("%w: have %d bytes, got %d", ledger.ErrSpaceMismatch, len(acct.Data), len(data))
			return acct, false
		}
		acct.Data = bytes.Clone(data)
		acct.UpdatedAt = time.Now()
		return acct, true
	})
	if sizeErr != nil {
		return sizeErr
	}
	if !ok {
		return fmt.Errorf("%w: %s", ledger.ErrNotFound, key)
	}
	return nil
}

// MemoryTxLog is an in-process ledger.TxLog.
type MemoryTxLog struct {
	mu  sync.Mutex
	txs []ledger.Tx
}

var _ ledger.TxLog = (*MemoryTxLog)(nil)

func (m *MemoryTxLog) Record(_ context.Context, tx ledger.Tx) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs = append(m.txs, tx)
	return nil
}

func (m *MemoryTxLog) List(_ context.Context, limit int) ([]ledger.Tx, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ledger.Tx, 0, len(m.txs))
	for i := len(m.txs) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, m.txs[i])
	}
	return out, nil
}
