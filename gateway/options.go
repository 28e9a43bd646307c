package gateway

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/shininglovestar/remix/binarytype"
	"github.com/shininglovestar/remix/runtime"
)

// LoadContextFunc produces the opaque load context value passed to the
// framework handler for a given event. Returning nil is valid.
type LoadContextFunc func(ctx context.Context, event events.APIGatewayV2HTTPRequest) any

type options struct {
	loadContext LoadContextFunc
	mode        runtime.Mode
	sandbox     bool
	validate    bool
	isBinary    func(contentType string) bool
	log         *zap.Logger
}

func newOptions(build *runtime.Build, opts ...Option) *options {
	o := &options{
		mode:     build.Mode,
		isBinary: binarytype.IsBinary,
		log:      zap.NewNop(),
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.mode == "" {
		o.mode = runtime.ModeProduction
	}

	return o
}

// Option configures a gateway handler.
type Option func(*options)

// WithLoadContext sets the load context callback.
func WithLoadContext(fn LoadContextFunc) Option {
	return func(o *options) {
		o.loadContext = fn
	}
}

// WithMode overrides the mode of the build.
func WithMode(mode runtime.Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithSandbox selects the plain-http URL scheme used by the local
// gateway sandbox instead of the default https.
func WithSandbox(sandbox bool) Option {
	return func(o *options) {
		o.sandbox = sandbox
	}
}

// WithBinaryTypeFunc replaces the binary content type classifier
// deciding which response bodies are base64-encoded.
func WithBinaryTypeFunc(fn func(contentType string) bool) Option {
	return func(o *options) {
		o.isBinary = fn
	}
}

// WithEventValidation enables JSON schema validation of raw events.
// Only honored by NewRawHandler; typed events are validated by their
// decoder.
func WithEventValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}

// WithLogger sets the logger. Defaults to a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}
