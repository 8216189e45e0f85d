package stores

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todoprog/internal/core/ledger"
	"github.com/colonyops/todoprog/internal/core/program"
)

func TestTxStore(t *testing.T) {
	ctx := context.Background()
	prog := program.KeyFromSeed("prog")
	acct := ledger.AccountKey("a")

	t.Run("record and list newest first", func(t *testing.T) {
		store := NewTxStore(openTestDB(t))

		ids := []string{uuid.NewString(), uuid.NewString(), uuid.NewString()}
		for i, id := range ids {
			tx := ledger.Tx{
				ID:          id,
				ProgramID:   prog,
				Account:     acct,
				Instruction: []byte{1, byte(i), 0, 0, 0, 0, 0, 0, 0},
				Status:      ledger.TxStatusOK,
			}
			require.NoError(t, store.Record(ctx, tx))
		}

		txs, err := store.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, txs, 3)
		assert.Equal(t, ids[2], txs[0].ID)
		assert.Equal(t, ids[0], txs[2].ID)
		assert.Equal(t, prog, txs[0].ProgramID)
		assert.Equal(t, acct, txs[0].Account)
		assert.Equal(t, []byte{1, 2, 0, 0, 0, 0, 0, 0, 0}, txs[0].Instruction)
		assert.False(t, txs[0].CreatedAt.IsZero())

		limited, err := store.List(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("failed transaction keeps error", func(t *testing.T) {
		store := NewTxStore(openTestDB(t))

		require.NoError(t, store.Record(ctx, ledger.Tx{
			ID:        uuid.NewString(),
			ProgramID: prog,
			Account:   acct,
			Status:    ledger.TxStatusFailed,
			Error:     "decode error: unknown command tag 9",
		}))

		txs, err := store.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, ledger.TxStatusFailed, txs[0].Status)
		assert.Equal(t, "decode error: unknown command tag 9", txs[0].Error)
		assert.Empty(t, txs[0].Instruction)
	})

	t.Run("duplicate id", func(t *testing.T) {
		store := NewTxStore(openTestDB(t))
		tx := ledger.Tx{ID: "same", ProgramID: prog, Account: acct, Status: ledger.TxStatusOK}

		require.NoError(t, store.Record(ctx, tx))
		assert.Error(t, store.Record(ctx, tx))
	})
}
