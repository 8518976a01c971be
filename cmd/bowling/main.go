package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Black-And-White-Club/bowling-bot/app"
	"github.com/Black-And-White-Club/bowling-bot/config"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newCLIApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCLIApp() *cli.App {
	return &cli.App{
		Name:  "bowling",
		Usage: "ten-pin bowling score tracker",
		Commands: []*cli.Command{
			serveCommand(),
			scoreCommand(),
			playCommand(),
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API and event router",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			obs, err := observability.Init(observability.Config{
				Environment:      cfg.Observability.Environment,
				LogLevel:         cfg.Observability.LogLevel,
				LogFormat:        cfg.Observability.LogFormat,
				MetricsEnabled:   cfg.Observability.MetricsEnabled,
				MetricsNamespace: cfg.Observability.MetricsNamespace,
			}, os.Stdout)
			if err != nil {
				return fmt.Errorf("failed to initialize observability: %w", err)
			}

			ctx, stop := app.NotifyShutdown(c.Context)
			defer stop()

			application, err := app.NewApp(ctx, cfg, obs)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			start := time.Now()
			err = application.Start(ctx)
			obs.Logger.Info("Server stopped", "uptime", time.Since(start).Round(time.Second).String())
			return err
		},
	}
}
