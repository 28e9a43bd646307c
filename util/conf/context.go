package conf

import (
	"context"
	"errors"
)

type configKeyType struct{}

var configKey configKeyType

var (
	ErrNoConfigInContext      = errors.New("no config in context")
	ErrInvalidConfigInContext = errors.New("invalid config in context")
)

// ContextWithConfig attaches the parsed config to the context.
func ContextWithConfig[C any](ctx context.Context, config C) context.Context {
	return context.WithValue(ctx, configKey, config)
}

// GetConfigFromContext returns the config of type C attached to the
// context.
func GetConfigFromContext[C any](ctx context.Context) (C, error) {
	var zero C

	value := ctx.Value(configKey)
	if value == nil {
		return zero, ErrNoConfigInContext
	}

	config, ok := value.(C)
	if !ok {
		return zero, ErrInvalidConfigInContext
	}

	return config, nil
}
