// Package web adapts the native request/response object pair of the
// hosting platform (*http.Request and http.ResponseWriter) to the
// standard request/response abstraction. Unlike the gateway event
// adapter, the body flows through as a live stream in both directions
// and closing the native response stream cancels the in-flight
// framework invocation.
package web

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/shininglovestar/remix/runtime"
)

// LoadContextFunc produces the opaque load context value passed to the
// framework handler for a given native request. Returning nil is valid.
type LoadContextFunc func(w http.ResponseWriter, r *http.Request) any

type handler struct {
	build       *runtime.Build
	loadContext LoadContextFunc
	mode        runtime.Mode
	log         *zap.Logger
}

// Option configures a web handler.
type Option func(*handler)

// WithLoadContext sets the load context callback.
func WithLoadContext(fn LoadContextFunc) Option {
	return func(h *handler) {
		h.loadContext = fn
	}
}

// WithMode overrides the mode of the build.
func WithMode(mode runtime.Mode) Option {
	return func(h *handler) {
		h.mode = mode
	}
}

// WithLogger sets the logger. Defaults to a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(h *handler) {
		h.log = log
	}
}

// NewHandler creates an http.Handler serving the given build.
//
// Each request is translated into a standard request, dispatched to
// the framework handler exactly once, and the standard response is
// written back onto the native response. The request context is the
// cancellation signal: the platform cancels it when the client
// connection closes, aborting the framework invocation.
func NewHandler(build *runtime.Build, opts ...Option) http.Handler {
	h := &handler{
		build: build,
		mode:  build.Mode,
		log:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.mode == "" {
		h.mode = runtime.ModeProduction
	}

	h.log = h.log.With(zap.Stringer("mode", h.mode))

	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	req, err := newStandardRequest(r)
	if err != nil {
		log.Error("failed to translate request", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var loadContext any
	if h.loadContext != nil {
		loadContext = h.loadContext(w, r)
	}

	res, err := h.build.Handler.Handle(req.Context(), req, loadContext)
	if err != nil {
		log.Error("framework handler failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := writeResponse(w, res); err != nil {
		// headers are already on the wire; nothing left but to log
		log.Debug("failed to write response", zap.Error(err))
	}
}
