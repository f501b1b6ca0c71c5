package cli

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/piwi3910/tcocompare/internal/logging"
	"github.com/piwi3910/tcocompare/internal/model"
	"github.com/piwi3910/tcocompare/internal/project"
	"github.com/piwi3910/tcocompare/internal/ui"
)

func cmdGUI(g *globalConfig) *cli.Command {
	return &cli.Command{
		Name:  "gui",
		Usage: "Start the desktop application (default)",
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := g.Catalog()
			if err != nil {
				return err
			}
			cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				logging.From(ctx).Warn("failed to load app config, using defaults", "error", err)
				cfg = model.DefaultAppConfig()
			}

			if g.catalogPath == "" && cfg.CatalogPath != "" {
				if err := cat.LoadOverrides(cfg.CatalogPath); err != nil {
					return goerr.Wrap(err, "failed to load catalog overrides from app config",
						goerr.V("path", cfg.CatalogPath))
				}
			}

			application := app.NewWithID("com.piwi3910.tcocompare")
			window := application.NewWindow("TCO Compare")

			appUI := ui.NewApp(application, window, cat, cfg)
			appUI.SetupMenus()
			window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
			window.Resize(fyne.NewSize(1280, 800))
			window.CenterOnScreen()
			window.ShowAndRun()
			return nil
		},
	}
}
