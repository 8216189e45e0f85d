package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/todoprog/internal/core/todo"
)

func TestBatchInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   BatchInput
		wantErr string
	}{
		{
			name:    "empty ops",
			input:   BatchInput{},
			wantErr: "ops",
		},
		{
			name:    "unknown op",
			input:   BatchInput{Ops: []BatchOp{{Op: "purge"}}},
			wantErr: "ops[0].op",
		},
		{
			name:    "empty content",
			input:   BatchInput{Ops: []BatchOp{{Op: "add", Content: "  "}}},
			wantErr: "ops[0].content",
		},
		{
			name: "missing id",
			input: BatchInput{Ops: []BatchOp{
				{Op: "add", Content: "ok"},
				{Op: "toggle"},
			}},
			wantErr: "ops[1].id",
		},
		{
			name:    "bad account name",
			input:   BatchInput{Account: "My List", Ops: []BatchOp{{Op: "toggle", ID: 1}}},
			wantErr: "account",
		},
		{
			name: "valid input",
			input: BatchInput{Ops: []BatchOp{
				{Op: "add", Content: "a"},
				{Op: "rm", ID: 1},
				{Op: "toggle", ID: 2},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBatchCommand(t *testing.T) {
	h := newHarness(t)
	h.mustRun(t, "account", "create", "--space", "128", "groceries")

	in := `{"account":"groceries","ops":[
		{"op":"add","content":"eggs"},
		{"op":"add","content":"flour"},
		{"op":"toggle","id":1},
		{"op":"add","content":"` + strings.Repeat("x", 200) + `"},
		{"op":"rm","id":2}
	]}`

	out, err := h.run(t, strings.NewReader(in), "batch")
	require.NoError(t, err)

	var res BatchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "groceries", res.Account)

	statuses := make([]string, 0, len(res.Results))
	for _, r := range res.Results {
		statuses = append(statuses, r.Status)
	}
	assert.Equal(t, []string{StatusApplied, StatusApplied, StatusApplied, StatusFailed, StatusSkipped}, statuses)
	assert.Contains(t, res.Results[3].Error, "buffer too small")

	items := decodeLines[todo.Item](t, h.mustRun(t, "ls", "-a", "groceries"))
	assert.Equal(t, []todo.Item{
		{ID: 1, Content: "eggs", Completed: true},
		{ID: 2, Content: "flour"},
	}, items)
}

func TestBatchCommand_InvalidInput(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, strings.NewReader(`{"ops":[]}`), "batch")
	require.NoError(t, err)
	assert.Contains(t, out, "invalid input")
}
