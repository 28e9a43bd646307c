// Package logging carries the application logger through context and
// the fx dependency graph.
package logging

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

type loggerKeyType struct{}

var loggerKey loggerKeyType

var ErrNoLoggerInContext = errors.New("no logger in context")

// ContextWithLogger attaches the logger to the context.
func ContextWithLogger(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// LoggerFromContext returns the logger attached to the context, or
// ErrNoLoggerInContext when none was attached.
func LoggerFromContext(ctx context.Context) (*zap.Logger, error) {
	log, ok := ctx.Value(loggerKey).(*zap.Logger)
	if !ok {
		return nil, ErrNoLoggerInContext
	}

	return log, nil
}
