package internal

import (
	"context"
)

type ctxKey string

const (
	ContextAPIUserKey   ctxKey = "apiUser"
	ContextRequestIDKey ctxKey = "requestID"
)

// APIUserFromContext returns the Basic-auth username accepted for the request.
func APIUserFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if user, ok := ctx.Value(ContextAPIUserKey).(string); ok {
		return user
	}
	return ""
}

func ContextWithAPIUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, ContextAPIUserKey, user)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(ContextRequestIDKey).(string); ok {
		return id
	}
	return ""
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextRequestIDKey, id)
}
