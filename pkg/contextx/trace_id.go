package contextx

import (
	"context"
	"fmt"
)

// TraceID ties the log lines of one API request together and is returned
// to clients as supportId.
type TraceID string

type contextKeyTraceID struct{}

func (t TraceID) String() string {
	return string(t)
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	if traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID); ok {
		return traceID, nil
	}

	return "", fmt.Errorf("trace id: %w", ErrNoValue)
}
