package server

import (
	"net/http"

	"go.uber.org/fx"
)

// HttpHandler is a named route registered on the server mux. Name is
// the mux pattern the handler mounts under.
type HttpHandler struct {
	Name    string
	Handler http.Handler
}

// HttpHandlerResult feeds a route into the server's handler group.
type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

// AsHttpHandler wraps a handler as a group result for the given mux
// pattern.
func AsHttpHandler(name string, handler http.Handler) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Name:    name,
			Handler: handler,
		},
	}
}
