package middleware

import (
	"context"
	"gymfit/internal/logger"
)

type ContextKey string

const (
	ContextUserID ContextKey = "user_id"
	ContextRole   ContextKey = "role"

	// Флаг ставится админам, чтобы пропускать все ролевые проверки.
	ContextSkipGuards ContextKey = "skip_guards"
)

// ContextRequestID совпадает с ключом логгера, чтобы WithCtx видел request id.
const ContextRequestID = logger.CtxRequestID

func WithSkipGuards(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextSkipGuards, true)
}

func SkipGuards(ctx context.Context) bool {
	v := ctx.Value(ContextSkipGuards)
	b, _ := v.(bool)
	return b
}
