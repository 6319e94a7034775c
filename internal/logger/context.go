package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const operationIDKey ctxKey = "op_id"

func WithOperationID(ctx context.Context, opID string) context.Context {
	return context.WithValue(ctx, operationIDKey, opID)
}

func OperationIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(operationIDKey).(string); ok {
		return v
	}
	return ""
}

// FromCtx returns logger with op_id automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	opID := OperationIDFrom(ctx)
	if opID == "" {
		return L()
	}
	return L().With(zap.String("op_id", opID))
}
