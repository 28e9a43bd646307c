package config

import "github.com/shininglovestar/remix/util/conf"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Mode is the runtime mode served by the adapters.
	// Options: development, production, test.
	Mode string `conf:"mode"`

	// Sandbox selects the plain-http URL scheme used by the local
	// gateway sandbox.
	Sandbox bool `conf:"sandbox"`

	// Auth configures access to the standalone app route.
	Auth AuthConfig `conf:"auth"`
}

type AuthConfig struct {
	// Key is the api-key required on requests. Empty disables the
	// check.
	Key string `conf:"key"`
}

var DefaultConfig = conf.DefaultConfig{
	"mode": "production",
}
