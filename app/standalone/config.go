package standalone

import "github.com/shininglovestar/remix/internal/server"

// Config holds the settings of the standalone frontend.
type Config struct {
	// HttpConfig is the listen configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`
}
