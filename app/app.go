package app

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/shininglovestar/remix/config"
	"github.com/shininglovestar/remix/internal/diag"
	"github.com/shininglovestar/remix/internal/shell"
	"github.com/shininglovestar/remix/runtime"
	"github.com/shininglovestar/remix/util/conf"
	"github.com/shininglovestar/remix/util/logging"
)

// New creates the application shell with the modules shared by every
// platform frontend: the global config and the build artifact served
// by the adapters.
func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(cfg),
		// provide the build artifact, loaded once and immutable
		// from here on
		fx.Provide(NewBuild),
	)

	return shell.New(log, sharedModule), nil
}

// NewBuild creates the build artifact of the reference application.
func NewBuild(cfg config.Config, log *zap.Logger) *runtime.Build {
	mode, ok := runtime.ParseMode(cfg.Mode)
	if !ok {
		mode = runtime.ModeProduction
	}

	return diag.NewBuild(mode, log)
}
