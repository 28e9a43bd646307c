package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

type HttpServerParams struct {
	fx.In

	Context context.Context

	Config HttpConfig

	Handlers []*HttpHandler `group:"handlers"`
	Logger   *zap.Logger
}

// HttpServer serves the registered routes over plain HTTP, with an
// optional h2c upgrade path for HTTP/2 cleartext clients.
type HttpServer struct {
	ctx    context.Context
	addr   string
	server *http.Server
	log    *zap.Logger
}

func NewHttpServer(params HttpServerParams) *HttpServer {
	mux := http.NewServeMux()
	for _, route := range params.Handlers {
		mux.Handle(route.Name, route.Handler)
	}

	var handler http.Handler = mux
	if params.Config.H2c {
		handler = h2c.NewHandler(mux, &http2.Server{})
	}

	addr := fmt.Sprintf("%s:%d", params.Config.Host, params.Config.Port)

	return &HttpServer{
		ctx:  params.Context,
		addr: addr,
		server: &http.Server{
			Addr:    addr,
			Handler: handler,
		},
		log: params.Logger.With(zap.String("address", addr)),
	}
}

func NewLifecycleServer(params HttpServerParams, lc fx.Lifecycle) *HttpServer {
	server := NewHttpServer(params)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			listener, err := server.listen()
			if err != nil {
				return err
			}

			go server.serve(listener)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
	return server
}

// listen binds the configured address. Binding happens during startup
// so a busy port fails the app start instead of a background goroutine.
func (s *HttpServer) listen() (net.Listener, error) {
	cfg := net.ListenConfig{}

	listener, err := cfg.Listen(s.ctx, "tcp", s.addr)
	if err != nil {
		s.log.Error("failed to listen", zap.Error(err))
		return nil, err
	}

	s.log.Info("listening")

	return listener, nil
}

func (s *HttpServer) serve(listener net.Listener) {
	err := s.server.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error("failed to serve", zap.Error(err))
	}
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.Error("failed to shutdown", zap.Error(err))
		return err
	}

	return nil
}
