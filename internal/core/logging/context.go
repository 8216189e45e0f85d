package logging

import "context"

type contextKey string

const (
	programIDKey contextKey = "program_id"
	accountKey   contextKey = "account"
	txIDKey      contextKey = "tx_id"
)

// WithProgramID adds the invoking program ID to the context.
func WithProgramID(ctx context.Context, programID string) context.Context {
	return context.WithValue(ctx, programIDKey, programID)
}

// WithAccount adds the storage account key to the context.
func WithAccount(ctx context.Context, account string) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

// WithTxID adds a transaction ID to the context.
func WithTxID(ctx context.Context, txID string) context.Context {
	return context.WithValue(ctx, txIDKey, txID)
}

// GetProgramID retrieves the program ID from the context.
// Returns empty string if not present.
func GetProgramID(ctx context.Context) string {
	return getString(ctx, programIDKey)
}

// GetAccount retrieves the account key from the context.
// Returns empty string if not present.
func GetAccount(ctx context.Context) string {
	return getString(ctx, accountKey)
}

// GetTxID retrieves the transaction ID from the context.
// Returns empty string if not present.
func GetTxID(ctx context.Context) string {
	return getString(ctx, txIDKey)
}

func getString(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
