package client

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todoprog/internal/core/codec"
	"github.com/colonyops/todoprog/internal/core/program"
	"github.com/colonyops/todoprog/internal/core/todo"
	"github.com/colonyops/todoprog/internal/host"
)

func newClient(t *testing.T, space int) *Client {
	t.Helper()
	progID := program.KeyFromSeed("client-test")
	rt := host.NewRuntime(host.NewMemoryAccounts(), &host.MemoryTxLog{}, program.NewProcessor(zerolog.Nop()), zerolog.Nop())

	acct, err := rt.CreateAccount(context.Background(), "tasks", progID, space)
	require.NoError(t, err)
	return New(rt, progID, acct.Key)
}

func TestClient_Lifecycle(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, 1024)

	l, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, l.Items)

	_, err = c.AddTask(ctx, "write report")
	require.NoError(t, err)
	_, err = c.AddTask(ctx, "send report")
	require.NoError(t, err)
	_, err = c.ToggleTask(ctx, 1)
	require.NoError(t, err)
	_, err = c.DeleteTask(ctx, 2)
	require.NoError(t, err)

	l, err = c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []todo.Item{{ID: 1, Content: "write report", Completed: true}}, l.Items)
	assert.Equal(t, uint64(2), l.LastID)
}

func TestClient_DeleteUnknownIsNoop(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, 128)

	_, err := c.AddTask(ctx, "keep")
	require.NoError(t, err)

	before, err := c.List(ctx)
	require.NoError(t, err)

	_, err = c.DeleteTask(ctx, 42)
	require.NoError(t, err)

	after, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestClient_ExecuteRawRejectsGarbage(t *testing.T) {
	c := newClient(t, 64)

	_, err := c.ExecuteRaw(context.Background(), []byte{0x07})
	require.ErrorIs(t, err, codec.ErrDecode)
}
