package utils

import (
	"context"
	"guidingpath-service/internal/pkg/constvars"
)

// RequestIDFromContext returns the request id stored by the request id
// middleware, or an empty string for background work.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// DetachedContext carries the request id of parent into a fresh background
// context so upstream calls are not cancelled by the client disconnecting.
func DetachedContext(parent context.Context) context.Context {
	ctx := context.Background()
	if requestID := RequestIDFromContext(parent); requestID != "" {
		ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
	}
	return ctx
}
