package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/piwi3910/tcocompare/internal/engine"
	"github.com/piwi3910/tcocompare/internal/export"
	"github.com/piwi3910/tcocompare/internal/logging"
)

func cmdExport(g *globalConfig) *cli.Command {
	var sf scenarioFlags
	var (
		outDir  string
		formats []string
	)

	flags := sf.Flags()
	flags = append(flags,
		&cli.StringFlag{
			Name:        "out",
			Aliases:     []string{"o"},
			Usage:       "Output directory",
			Value:       ".",
			Sources:     envVars("OUT"),
			Destination: &outDir,
		},
		&cli.StringSliceFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Report format: pdf, cards, xlsx, csv, json, html (repeatable, default: all)",
			Destination: &formats,
		},
	)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Write comparison reports for a scenario",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			var selected []export.Format
			for _, name := range formats {
				f, err := export.ParseFormat(name)
				if err != nil {
					return err
				}
				selected = append(selected, f)
			}

			cat, err := g.Catalog()
			if err != nil {
				return err
			}
			s, err := sf.Build(c)
			if err != nil {
				return goerr.Wrap(err, "invalid scenario")
			}
			cmp, err := engine.Compare(cat, s)
			if err != nil {
				return goerr.Wrap(err, "failed to compare vendors")
			}

			paths, err := export.Bundle(ctx, outDir, cmp, selected)
			if err != nil {
				return goerr.Wrap(err, "failed to write reports", goerr.V("dir", outDir))
			}

			logging.From(ctx).Info("Reports written", "dir", outDir, "count", len(paths))
			w := c.Root().Writer
			for _, p := range paths {
				fmt.Fprintln(w, p)
			}
			return nil
		},
	}
}
