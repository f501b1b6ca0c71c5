package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/piwi3910/tcocompare/internal/server"
)

func cmdServe(g *globalConfig) *cli.Command {
	var cfg server.Config

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "HTTP server address",
				Value:       "127.0.0.1:8080",
				Sources:     envVars("ADDR"),
				Destination: &cfg.Addr,
			},
			&cli.StringFlag{
				Name:        "api-token",
				Usage:       "Bearer token required on /api routes (empty disables auth)",
				Sources:     envVars("API_TOKEN"),
				Destination: &cfg.APIToken,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := g.Catalog()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			var opts []server.Options
			if cfg.APIToken != "" {
				opts = append(opts, server.WithAPIToken(cfg.APIToken))
			}
			return server.ListenAndServe(ctx, cfg, server.New(cat, opts...))
		},
	}
}
