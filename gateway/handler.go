// Package gateway adapts API Gateway v2 HTTP events to the standard
// request/response abstraction. The event carries the request as a
// structured record (method, raw path, raw query string, headers, a
// separate cookie list, and an optionally base64-encoded body); the
// result is the structured record the gateway expects back.
package gateway

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/shininglovestar/remix/runtime"
)

// HandlerFunc handles a single API Gateway v2 HTTP event. It matches
// the Lambda handler signature expected by the platform runtime.
type HandlerFunc func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// NewHandler creates a gateway event handler for the given build.
//
// Each invocation translates the event into a standard request,
// dispatches it to the framework handler exactly once, and serializes
// the standard response back into the event result shape. Translation
// and handler errors are returned to the platform runtime; there is
// no retry or partial-failure handling in this layer.
//
// The event format has no native cancellation primitive, so client
// disconnects never cancel the framework invocation. Only the
// invocation context supplied by the platform runtime (deadline,
// shutdown) can fire it.
func NewHandler(build *runtime.Build, opts ...Option) HandlerFunc {
	o := newOptions(build, opts...)

	return func(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		req, err := newStandardRequest(ctx, event, o.sandbox)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{}, fmt.Errorf("translate request: %w", err)
		}

		o.log.Debug("handling gateway event",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Stringer("mode", o.mode),
		)

		var loadContext any
		if o.loadContext != nil {
			loadContext = o.loadContext(ctx, event)
		}

		res, err := build.Handler.Handle(ctx, req, loadContext)
		if err != nil {
			return events.APIGatewayV2HTTPResponse{}, err
		}

		return newGatewayResponse(res, o.isBinary)
	}
}
