package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies program_id, account and tx_id from the event context onto log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if id := GetTxID(ctx); id != "" {
		e.Str(string(txIDKey), id)
	}

	if id := GetProgramID(ctx); id != "" {
		e.Str(string(programIDKey), id)
	}

	if acct := GetAccount(ctx); acct != "" {
		e.Str(string(accountKey), acct)
	}
}
