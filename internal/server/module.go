// Package server provides the standalone HTTP server hosting the
// adapter routes, wired through the fx lifecycle.
package server

import "go.uber.org/fx"

// Module assembles the server from its config and the routes provided
// into the handlers group.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		fx.Supply(config),
		fx.Provide(NewLifecycleServer),
		fx.Invoke(func(*HttpServer) {}),
	)
}
