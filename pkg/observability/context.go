package observability

import (
	"context"

	"github.com/google/uuid"
)

// RunIDKey is the attribute key under which the run ID is logged.
const RunIDKey = "run_id"

type contextKey string

const runIDContextKey contextKey = "run_id"

// NewRunID generates an identifier for one CLI invocation. Every log line
// emitted during the invocation carries it, which keeps interleaved runs
// apart when logs are shipped somewhere central.
func NewRunID() string {
	return uuid.NewString()
}

// ContextWithRunID returns a context carrying the given run ID.
func ContextWithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDContextKey, runID)
}

// RunIDFromContext extracts the run ID from the context, or "" if absent.
func RunIDFromContext(ctx context.Context) string {
	if runID, ok := ctx.Value(runIDContextKey).(string); ok {
		return runID
	}
	return ""
}
