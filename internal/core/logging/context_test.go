package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	ctx = WithProgramID(ctx, "prog-1")
	ctx = WithAccount(ctx, "acct-1")
	ctx = WithTxID(ctx, "tx-1")

	assert.Equal(t, "prog-1", GetProgramID(ctx))
	assert.Equal(t, "acct-1", GetAccount(ctx))
	assert.Equal(t, "tx-1", GetTxID(ctx))
}

func TestContextValues_NotPresent(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetProgramID(ctx))
	assert.Empty(t, GetAccount(ctx))
	assert.Empty(t, GetTxID(ctx))
}
