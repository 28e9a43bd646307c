package standalone

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/shininglovestar/remix/config"
	"github.com/shininglovestar/remix/internal/metrics"
	"github.com/shininglovestar/remix/internal/server"
	"github.com/shininglovestar/remix/runtime"
	"github.com/shininglovestar/remix/web"
)

// NewAppRoute mounts the web adapter at the root route, behind the
// metrics and api-key middlewares.
func NewAppRoute(build *runtime.Build, cfg config.Config, log *zap.Logger) server.HttpHandlerResult {
	var handler http.Handler = web.NewHandler(build, web.WithLogger(log))
	handler = server.WithMetrics(metrics.AdapterWeb, handler)
	handler = server.WithAPIKey(cfg.Auth.Key, handler)

	return server.AsHttpHandler("/", handler)
}

func NewHealthRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("/health", http.HandlerFunc(healthHandler))
}

func NewMetricsRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("/metrics", metrics.Handler())
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
