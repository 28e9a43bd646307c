package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/shininglovestar/remix/app"
	"github.com/shininglovestar/remix/app/lambda"
	"github.com/shininglovestar/remix/util/conf"
	"github.com/shininglovestar/remix/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the adapter as an AWS Lambda runtime
interface client, translating incoming gateway events into
standard requests for the framework build and serializing the
responses back into the event result format.

The command will start the AWS runtime interface client and
blocks indefinitely, processing incoming AWS Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    "API_GW_V2",
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
			&cli.BoolFlag{
				Name:     "lambda-validate-events",
				Usage:    "validate raw gateway events against the event schema before dispatch.",
				EnvVars:  []string{"LAMBDA_VALIDATE_EVENTS"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[lambda.Config](conf.ParseOptions{
		Log: log,
		Cli: ctx,
	})
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler")

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
