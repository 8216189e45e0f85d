// Package client builds todo instructions and submits them to a host
// against a single storage account.
package client

import (
	"context"
	"fmt"

	"github.com/colonyops/todoprog/internal/core/codec"
	"github.com/colonyops/todoprog/internal/core/ledger"
	"github.com/colonyops/todoprog/internal/core/program"
	"github.com/colonyops/todoprog/internal/core/todo"
	"github.com/colonyops/todoprog/internal/host"
)

// Host is the part of the runtime a Client needs.
type Host interface {
	Submit(ctx context.Context, programID program.Pubkey, keys []program.Pubkey, data []byte) (host.Receipt, error)
	Account(ctx context.Context, key program.Pubkey) (ledger.Account, error)
}

// Client sends instructions for one program and account.
type Client struct {
	host      Host
	programID program.Pubkey
	account   program.Pubkey
}

// New creates a Client.
func New(h Host, programID, account program.Pubkey) *Client {
	return &Client{host: h, programID: programID, account: account}
}

// AddTask appends a task with the given content.
func (c *Client) AddTask(ctx context.Context, content string) (host.Receipt, error) {
	return c.Execute(ctx, todo.Insert{Content: content})
}

// DeleteTask removes the task with id. Deleting an unknown id succeeds
// without changing the list.
func (c *Client) DeleteTask(ctx context.Context, id uint64) (host.Receipt, error) {
	return c.Execute(ctx, todo.Remove{ID: id})
}

// ToggleTask flips the completed flag of the task with id.
func (c *Client) ToggleTask(ctx context.Context, id uint64) (host.Receipt, error) {
	return c.Execute(ctx, todo.Toggle{ID: id})
}

// Execute encodes cmd and submits it.
func (c *Client) Execute(ctx context.Context, cmd todo.Command) (host.Receipt, error) {
	return c.ExecuteRaw(ctx, codec.EncodeCommand(cmd))
}

// ExecuteRaw submits already encoded instruction bytes.
func (c *Client) ExecuteRaw(ctx context.Context, data []byte) (host.Receipt, error) {
	return c.host.Submit(ctx, c.programID, []program.Pubkey{c.account}, data)
}

// List reads and decodes the account's task list.
func (c *Client) List(ctx context.Context) (todo.List, error) {
	acct, err := c.host.Account(ctx, c.account)
	if err != nil {
		return todo.List{}, err
	}

	l, err := codec.DecodeList(acct.Data)
	if err != nil {
		return todo.List{}, fmt.Errorf("account %s: %w", acct.Name, err)
	}
	return l, nil
}
