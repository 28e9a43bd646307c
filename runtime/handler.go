package runtime

import (
	"context"
	"io"
	"net/http"
)

// Response is the standard response produced by the framework handler.
// Header may carry repeated keys, notably Set-Cookie; adapters must
// preserve every occurrence when translating to their output shape.
type Response struct {
	// StatusCode is the HTTP status code. Adapters treat a zero
	// value as http.StatusOK.
	StatusCode int

	// Status is the status text. Optional; platforms that derive
	// the reason phrase from the code ignore it.
	Status string

	// Header is the response header collection.
	Header http.Header

	// Body is the response body, or nil for an empty response.
	Body io.Reader
}

// Handler is the framework request handler invoked by the adapters.
//
// The request is the standard representation of the inbound platform
// request. Its context is canceled when the platform supports abort
// propagation; loadContext is the opaque platform-supplied value
// threaded into the framework, or nil.
type Handler interface {
	Handle(ctx context.Context, r *http.Request, loadContext any) (*Response, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, r *http.Request, loadContext any) (*Response, error)

func (f HandlerFunc) Handle(ctx context.Context, r *http.Request, loadContext any) (*Response, error) {
	return f(ctx, r, loadContext)
}
