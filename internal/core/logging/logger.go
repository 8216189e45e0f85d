// Package logging provides component loggers that pick up invocation
// fields (program, account, transaction) from the context.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a child of the global logger tagged with "cmp"=name.
// Events logged with .Ctx(ctx) carry the fields set by WithProgramID,
// WithAccount and WithTxID.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger().Hook(ContextHook{})
}
