package standalone

import (
	"go.uber.org/fx"

	"github.com/shininglovestar/remix/internal/server"
	"github.com/shininglovestar/remix/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide routes
		fx.Provide(NewAppRoute, NewHealthRoute, NewMetricsRoute),
		// provide server
		server.Module(config.HttpConfig),
	)
}
