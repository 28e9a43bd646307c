package logging

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// DecorateLogger scopes the injected logger to a named subsystem for
// everything constructed inside the enclosing fx module.
func DecorateLogger(name string) fx.Option {
	return fx.Decorate(func(log *zap.Logger) *zap.Logger {
		return log.Named(name)
	})
}
