// Package cli wires the tcocompare command line.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/importer"
	"github.com/piwi3910/tcocompare/internal/logging"
)

const envPrefix = "TCOCOMPARE_"

func envVars(name string) cli.ValueSourceChain {
	return cli.EnvVars(envPrefix + name)
}

// globalConfig carries the root flags and the catalog built from them.
type globalConfig struct {
	logger      loggerConfig
	catalogPath string
	quotesPath  string
	envFile     string

	catalog *catalog.Catalog
}

func (g *globalConfig) Flags() []cli.Flag {
	flags := g.logger.Flags()
	return append(flags,
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "TOML file with vendor overrides",
			Sources:     envVars("CATALOG"),
			Destination: &g.catalogPath,
		},
		&cli.StringFlag{
			Name:        "quotes",
			Usage:       "CSV or Excel file of vendor price quotes applied on top of the catalog",
			Sources:     envVars("QUOTES"),
			Destination: &g.quotesPath,
		},
		&cli.StringFlag{
			Name:        "env-file",
			Usage:       "dotenv file loaded before flags are read (missing file is ignored)",
			Value:       defaultEnvFile,
			Sources:     envVars("ENV_FILE"),
			Destination: &g.envFile,
		},
	)
}

// Catalog builds the built-in catalog and applies overrides and quotes on
// first use. It runs from actions, after every flag has been parsed.
func (g *globalConfig) Catalog() (*catalog.Catalog, error) {
	if g.catalog != nil {
		return g.catalog, nil
	}
	if err := g.loadCatalog(); err != nil {
		return nil, err
	}
	return g.catalog, nil
}

func (g *globalConfig) loadCatalog() error {
	cat := catalog.Builtin()
	if g.catalogPath != "" {
		if err := cat.LoadOverrides(g.catalogPath); err != nil {
			return goerr.Wrap(err, "failed to load catalog overrides", goerr.V("path", g.catalogPath))
		}
		logging.Default().Debug("Loaded catalog overrides", "path", g.catalogPath)
	}

	if g.quotesPath != "" {
		result := importer.ImportFile(g.quotesPath)
		result.CheckVendors(cat)
		for _, w := range result.Warnings {
			logging.Default().Warn("price quote warning", "path", g.quotesPath, "warning", w)
		}
		if len(result.Errors) > 0 {
			return goerr.New("invalid price quotes",
				goerr.V("path", g.quotesPath), goerr.V("errors", result.Errors))
		}
		if err := cat.ApplyQuotes(result.Quotes); err != nil {
			return goerr.Wrap(err, "failed to apply price quotes", goerr.V("path", g.quotesPath))
		}
		logging.Default().Info("Applied price quotes", "path", g.quotesPath, "count", len(result.Quotes))
	}

	g.catalog = cat
	return nil
}

// Run executes the command line in args. With no sub-command the desktop
// app is started.
func Run(ctx context.Context, args []string, version string) error {
	if err := loadEnvFile(args); err != nil {
		return err
	}

	if err := newCommand(version, os.Stdout, os.Stderr).Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}
	return nil
}

func newCommand(version string, stdout, stderr io.Writer) *cli.Command {
	var g globalConfig

	return &cli.Command{
		Name:           "tcocompare",
		Usage:          "NAC total cost of ownership comparison",
		Version:        version,
		Writer:         stdout,
		ErrWriter:      stderr,
		Flags:          g.Flags(),
		DefaultCommand: "gui",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := g.logger.Configure(stderr)
			if err != nil {
				return ctx, err
			}
			logging.SetDefault(logger)
			logging.Default().Debug("Starting tcocompare", "version", version, "logger", g.logger)
			return logging.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			cmdGUI(&g),
			cmdCalc(&g),
			cmdExport(&g),
			cmdServe(&g),
			cmdVendors(&g),
		},
	}
}
