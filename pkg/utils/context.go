package utils

import (
	"context"
	"strings"

	"gearguard/pkg/contextkeys"
)

func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, contextkeys.BearerTokenKey, token)
}

func BearerTokenFromCtx(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(contextkeys.BearerTokenKey).(string)
	return token, ok && token != ""
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextkeys.RequestIDKey, id)
}

func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(contextkeys.RequestIDKey).(string)
	return id
}

// ExtractBearer достаёт токен из заголовка "Authorization: Bearer <token>".
func ExtractBearer(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
