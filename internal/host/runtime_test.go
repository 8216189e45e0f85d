package host

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todoprog/internal/core/codec"
	"github.com/colonyops/todoprog/internal/core/ledger"
	"github.com/colonyops/todoprog/internal/core/program"
	"github.com/colonyops/todoprog/internal/core/todo"
	"github.com/colonyops/todoprog/internal/data/db"
	"github.com/colonyops/todoprog/internal/data/stores"
)

var progID = program.KeyFromSeed("test-program")

func newMemoryRuntime() *Runtime {
	return NewRuntime(NewMemoryAccounts(), &MemoryTxLog{}, program.NewProcessor(zerolog.Nop()), zerolog.Nop())
}

func newSQLiteRuntime(t *testing.T) *Runtime {
	t.Helper()
	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	return NewRuntime(
		stores.NewAccountStore(database),
		stores.NewTxStore(database),
		program.NewProcessor(zerolog.Nop()),
		zerolog.Nop(),
	)
}

func listOf(t *testing.T, rt *Runtime, key program.Pubkey) todo.List {
	t.Helper()
	acct, err := rt.Account(context.Background(), key)
	require.NoError(t, err)
	l, err := codec.DecodeList(acct.Data)
	require.NoError(t, err)
	return l
}

func TestRuntime(t *testing.T) {
	runtimes := map[string]func(t *testing.T) *Runtime{
		"memory": func(*testing.T) *Runtime { return newMemoryRuntime() },
		"sqlite": newSQLiteRuntime,
	}

	for name, newRuntime := range runtimes {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("submit commits on success", func(t *testing.T) {
				rt := newRuntime(t)
				acct, err := rt.CreateAccount(ctx, "tasks", progID, 256)
				require.NoError(t, err)

				receipt, err := rt.Submit(ctx, progID, []program.Pubkey{acct.Key},
					codec.EncodeCommand(todo.Insert{Content: "milk"}))
				require.NoError(t, err)
				assert.NotEmpty(t, receipt.TxID)

				l := listOf(t, rt, acct.Key)
				assert.Equal(t, []todo.Item{{ID: 1, Content: "milk"}}, l.Items)
				assert.Equal(t, uint64(1), l.LastID)

				txs, err := rt.Transactions(ctx, 0)
				require.NoError(t, err)
				require.Len(t, txs, 1)
				assert.Equal(t, receipt.TxID, txs[0].ID)
				assert.Equal(t, ledger.TxStatusOK, txs[0].Status)
				assert.Equal(t, acct.Key, txs[0].Account)
			})

			t.Run("unauthorized leaves account untouched", func(t *testing.T) {
				rt := newRuntime(t)
				other := program.KeyFromSeed("someone-else")
				acct, err := rt.CreateAccount(ctx, "foreign", other, 64)
				require.NoError(t, err)

				_, err = rt.Submit(ctx, progID, []program.Pubkey{acct.Key},
					codec.EncodeCommand(todo.Insert{Content: "x"}))
				require.ErrorIs(t, err, program.ErrUnauthorized)

				got, err := rt.Account(ctx, acct.Key)
				require.NoError(t, err)
				assert.Equal(t, make([]byte, 64), got.Data)

				txs, err := rt.Transactions(ctx, 0)
				require.NoError(t, err)
				require.Len(t, txs, 1)
				assert.Equal(t, ledger.TxStatusFailed, txs[0].Status)
				assert.Contains(t, txs[0].Error, "not owned")
			})

			t.Run("buffer too small is not committed", func(t *testing.T) {
				rt := newRuntime(t)
				acct, err := rt.CreateAccount(ctx, "tiny", progID, 16)
				require.NoError(t, err)

				_, err = rt.Submit(ctx, progID, []program.Pubkey{acct.Key},
					codec.EncodeCommand(todo.Insert{Content: "does not fit"}))
				require.ErrorIs(t, err, codec.ErrBufferTooSmall)

				got, err := rt.Account(ctx, acct.Key)
				require.NoError(t, err)
				assert.Equal(t, make([]byte, 16), got.Data)
			})

			t.Run("unknown account", func(t *testing.T) {
				rt := newRuntime(t)

				_, err := rt.Submit(ctx, progID, []program.Pubkey{ledger.AccountKey("ghost")},
					codec.EncodeCommand(todo.Toggle{ID: 1}))
				require.ErrorIs(t, err, ledger.ErrNotFound)
			})

			t.Run("no accounts", func(t *testing.T) {
				rt := newRuntime(t)

				_, err := rt.Submit(ctx, progID, nil, codec.EncodeCommand(todo.Toggle{ID: 1}))
				require.ErrorIs(t, err, program.ErrMissingAccount)
			})

			t.Run("sequence of instructions", func(t *testing.T) {
				rt := newRuntime(t)
				acct, err := rt.CreateAccount(ctx, "seq", progID, 512)
				require.NoError(t, err)
				keys := []program.Pubkey{acct.Key}

				for _, cmd := range []todo.Command{
					todo.Insert{Content: "a"},
					todo.Insert{Content: "b"},
					todo.Insert{Content: "c"},
					todo.Remove{ID: 2},
					todo.Toggle{ID: 3},
					todo.Insert{Content: "d"},
				} {
					_, err := rt.Submit(ctx, progID, keys, codec.EncodeCommand(cmd))
					require.NoError(t, err)
				}

				l := listOf(t, rt, acct.Key)
				assert.Equal(t, []todo.Item{
					{ID: 1, Content: "a"},
					{ID: 3, Content: "c", Completed: true},
					{ID: 4, Content: "d"},
				}, l.Items)
				assert.Equal(t, uint64(4), l.LastID)

				txs, err := rt.Transactions(ctx, 2)
				require.NoError(t, err)
				require.Len(t, txs, 2)
				assert.Equal(t, codec.EncodeCommand(todo.Insert{Content: "d"}), txs[0].Instruction)
			})
		})
	}
}

func TestRuntime_CreateAccount(t *testing.T) {
	ctx := context.Background()
	rt := newMemoryRuntime()

	_, err := rt.CreateAccount(ctx, "zero", progID, 0)
	require.ErrorIs(t, err, ErrInvalidSpace)

	acct, err := rt.CreateAccount(ctx, "one", progID, 10)
	require.NoError(t, err)
	assert.Equal(t, ledger.AccountKey("one"), acct.Key)
	assert.Equal(t, 10, acct.Space())

	_, err = rt.CreateAccount(ctx, "one", progID, 10)
	require.ErrorIs(t, err, ledger.ErrExists)

	accounts, err := rt.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "one", accounts[0].Name)
}

type failingProcessor struct{ err error }

func (f failingProcessor) Process(_ context.Context, _ program.Pubkey, accounts []*program.Account, _ []byte) error {
	// Scribble on the copy before failing; the runtime must not commit it.
	for i := range accounts[0].Data {
		accounts[0].Data[i] = 0xff
	}
	return f.err
}

func TestRuntime_FailedProcessorDoesNotCommit(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	accounts := NewMemoryAccounts()
	rt := NewRuntime(accounts, &MemoryTxLog{}, failingProcessor{err: boom}, zerolog.Nop())

	acct, err := rt.CreateAccount(ctx, "a", progID, 8)
	require.NoError(t, err)

	_, err = rt.Submit(ctx, progID, []program.Pubkey{acct.Key}, []byte{0})
	require.ErrorIs(t, err, boom)

	got, err := accounts.Get(ctx, acct.Key)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 8), got.Data)
}
