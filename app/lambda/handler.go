package lambda

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/shininglovestar/remix/config"
	"github.com/shininglovestar/remix/gateway"
	"github.com/shininglovestar/remix/internal/metrics"
	"github.com/shininglovestar/remix/internal/server"
	"github.com/shininglovestar/remix/runtime"
	"github.com/shininglovestar/remix/web"
)

// LambdaHandlerParams represents the parameters required for
// the Lambda handler.
type LambdaHandlerParams struct {
	fx.In

	// Config is the configuration for the Lambda handler.
	Config Config

	// AppConfig is the global application configuration.
	AppConfig config.Config

	// Build is the build artifact served by the adapters.
	Build *runtime.Build

	// Context is the context for the Lambda handler.
	Context context.Context

	// Logger is the logger for the Lambda handler.
	Logger *zap.Logger
}

type LambdaHandler struct {
	config    Config
	appConfig config.Config
	build     *runtime.Build
	ctx       context.Context
	cancel    context.CancelFunc
	log       *zap.Logger
}

// NewLambdaHandler creates a new instance of LambdaHandler
// with the given parameters.
func NewLambdaHandler(params LambdaHandlerParams) *LambdaHandler {
	ctx, cancel := context.WithCancel(params.Context)

	return &LambdaHandler{
		config:    params.Config,
		appConfig: params.AppConfig,
		build:     params.Build,
		ctx:       ctx,
		cancel:    cancel,
		log:       params.Logger,
	}
}

// NewLifecycleHandler creates a new instance of LambdaHandler
// with the given parameters and attaches lifecycle hooks to
// start and stop the handler.
func NewLifecycleHandler(params LambdaHandlerParams, lc fx.Lifecycle) *LambdaHandler {
	handler := NewLambdaHandler(params)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return handler.Start()
		},
		OnStop: func(context.Context) error {
			handler.Shutdown()
			return nil
		},
	})
	return handler
}

// Start starts the Lambda runtime client in a new goroutine. An error
// is returned if the handler fails to start.
func (s *LambdaHandler) Start() error {
	handler, err := s.getProxyFunction()
	if err != nil {
		return err
	}

	s.log.Debug("using lambda event proxy", zap.Stringer("proxy_source", s.config.ProxySource))

	go lambda.StartWithOptions(handler, lambda.WithContext(s.ctx))

	return nil
}

// Shutdown cancels the execution of the LambdaHandler.
func (s *LambdaHandler) Shutdown() {
	s.cancel()
}

// getProxyFunction returns the appropriate proxy function
// based on the configured ProxySource.
func (s *LambdaHandler) getProxyFunction() (any, error) {
	switch s.config.ProxySource {
	case ProxySourceApiGatewayV2:
		return s.gatewayHandler()
	case ProxySourceApiGatewayV1:
		return httpadapter.New(s.webHandler()).ProxyWithContext, nil
	case ProxySourceAlb:
		return httpadapter.NewALB(s.webHandler()).ProxyWithContext, nil
	default:
		return nil, fmt.Errorf("invalid proxy source: %s", s.config.ProxySource)
	}
}

// gatewayHandler creates the instrumented gateway event adapter.
func (s *LambdaHandler) gatewayHandler() (any, error) {
	opts := []gateway.Option{
		gateway.WithSandbox(s.appConfig.Sandbox),
		gateway.WithLogger(s.log),
	}

	if s.config.ValidateEvents {
		opts = append(opts, gateway.WithEventValidation())
	}

	handler, err := gateway.NewRawHandler(s.build, opts...)
	if err != nil {
		return nil, err
	}

	return instrument(handler), nil
}

// webHandler mounts the web adapter for event formats that are
// proxied through a native request/response pair.
func (s *LambdaHandler) webHandler() http.Handler {
	return server.WithMetrics(
		metrics.AdapterWeb,
		web.NewHandler(s.build, web.WithLogger(s.log)),
	)
}

func instrument(handler gateway.RawHandlerFunc) gateway.RawHandlerFunc {
	return func(ctx context.Context, payload json.RawMessage) (events.APIGatewayV2HTTPResponse, error) {
		started := time.Now()

		res, err := handler(ctx, payload)
		if err != nil {
			metrics.ObserveError(metrics.AdapterGateway)
			return res, err
		}

		metrics.ObserveRequest(metrics.AdapterGateway, res.StatusCode, started)
		return res, nil
	}
}
