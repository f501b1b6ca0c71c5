package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/engine"
	"github.com/piwi3910/tcocompare/internal/export"
	"github.com/piwi3910/tcocompare/internal/logging"
	"github.com/piwi3910/tcocompare/internal/model"
)

func cmdCalc(g *globalConfig) *cli.Command {
	var sf scenarioFlags
	var (
		recommend   bool
		whatIf      bool
		sensitivity string
		values      []float64
		asJSON      bool
	)

	flags := sf.Flags()
	flags = append(flags,
		&cli.BoolFlag{
			Name:        "recommend",
			Usage:       "Print weighted vendor recommendations",
			Destination: &recommend,
		},
		&cli.BoolFlag{
			Name:        "what-if",
			Usage:       "Print the standard what-if variants of the scenario",
			Destination: &whatIf,
		},
		&cli.StringFlag{
			Name:        "sensitivity",
			Usage:       "Sweep a parameter: devices, years or fte_salary",
			Destination: &sensitivity,
		},
		&cli.FloatSliceFlag{
			Name:        "value",
			Usage:       "Sensitivity value (repeatable, default: 50% to 200% of current)",
			Destination: &values,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Print the comparison as JSON instead of tables",
			Destination: &asJSON,
		},
	)

	return &cli.Command{
		Name:    "calc",
		Aliases: []string{"c"},
		Usage:   "Compare vendor TCO for a scenario and print the results",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := g.Catalog()
			if err != nil {
				return err
			}
			s, err := sf.Build(c)
			if err != nil {
				return goerr.Wrap(err, "invalid scenario")
			}
			logging.From(ctx).Debug("Comparing scenario", "scenario_id", s.ID, "vendors", s.AllVendorIDs())

			cmp, err := engine.Compare(cat, s)
			if err != nil {
				return goerr.Wrap(err, "failed to compare vendors")
			}

			w := c.Root().Writer
			if asJSON {
				return export.JSON(w, cmp)
			}
			printComparison(w, cmp)

			if recommend {
				recs, err := engine.RecommendFromComparison(cat, cmp, engine.WeightsFor(s.Priorities))
				if err != nil {
					return goerr.Wrap(err, "failed to score vendors")
				}
				fmt.Fprintln(w)
				printRecommendations(w, recs)
			}

			if whatIf {
				results, err := engine.CompareScenarios(cat, engine.BuildWhatIfScenarios(s))
				if err != nil {
					return goerr.Wrap(err, "failed to compare what-if scenarios")
				}
				fmt.Fprintln(w)
				printWhatIf(w, results)
			}

			if sensitivity != "" {
				fmt.Fprintln(w)
				if err := runSensitivity(w, cat, s, sensitivity, values); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printComparison(w io.Writer, cmp model.Comparison) {
	s := cmp.Scenario
	title(w, "%s: %d devices, %d years, %s, %s", s.Name, s.Devices, s.Years, s.Industry, s.Region)

	t := table{headers: []string{"Rank", "Vendor", "Total", "One-Time", "Annual", "Savings", "Savings %", "ROI %", "Payback"}}
	for _, r := range cmp.Results {
		b := r.Breakdown
		if r.IsBaseline {
			t.add(
				num(strconv.Itoa(r.Rank)),
				cell{text: b.VendorName + " (baseline)", color: baselineColor},
				num(export.Money(b.Total)), num(export.Money(b.OneTime())), num(export.Money(b.Annual())),
				num("-"), num("-"), num("-"), plain("-"),
			)
			continue
		}
		t.add(
			num(strconv.Itoa(r.Rank)),
			plain(b.VendorName),
			num(export.Money(b.Total)), num(export.Money(b.OneTime())), num(export.Money(b.Annual())),
			signed(export.Money(r.Savings), r.Savings),
			signed(fmt.Sprintf("%.1f%%", r.SavingsPercent), r.SavingsPercent),
			signed(fmt.Sprintf("%.1f%%", r.ROIPercent), r.ROIPercent),
			plain(r.Payback.String()),
		)
	}
	t.render(w)

	fmt.Fprintln(w)
	bt := table{headers: []string{"Vendor", "License", "Hardware", "Implementation", "Maintenance", "Training", "Personnel", "FTE", "Compliance", "Gaps"}}
	for _, r := range cmp.Results {
		b := r.Breakdown
		gaps := cell{text: "none", color: goodColor}
		if len(r.Compliance.Gaps) > 0 {
			gaps = cell{text: fmt.Sprint(len(r.Compliance.Gaps)), color: badColor, right: true}
		}
		bt.add(
			plain(b.VendorName),
			num(export.Money(b.License)), num(export.Money(b.Hardware)), num(export.Money(b.Implementation)),
			num(export.Money(b.Maintenance)), num(export.Money(b.Training)), num(export.Money(b.Personnel)),
			num(fmt.Sprintf("%.2f", b.FTE)),
			num(fmt.Sprintf("%.0f%%", r.Compliance.Average)),
			gaps,
		)
	}
	bt.render(w)
}

func printRecommendations(w io.Writer, recs []model.Recommendation) {
	title(w, "Recommendations")
	t := table{headers: []string{"#", "Vendor", "Score", "Cost", "Security", "Compliance", "Operations"}}
	for i, r := range recs {
		name := plain(r.VendorName)
		if i == 0 {
			name.color = goodColor
		}
		t.add(
			num(strconv.Itoa(i+1)), name,
			num(fmt.Sprintf("%.1f", r.Score)),
			num(fmt.Sprintf("%.0f", r.CostScore)),
			num(fmt.Sprintf("%.0f", r.SecurityScore)),
			num(fmt.Sprintf("%.0f", r.ComplianceScore)),
			num(fmt.Sprintf("%.0f", r.OperationsScore)),
		)
	}
	t.render(w)
}

func printWhatIf(w io.Writer, results []engine.ScenarioResult) {
	title(w, "What-If Scenarios")
	t := table{headers: []string{"Scenario", "Devices", "Years", "Baseline Total", "Lowest TCO", "Best Savings"}}
	for _, r := range results {
		s := r.Comparison.Scenario
		t.add(
			plain(r.Name),
			num(strconv.Itoa(s.Devices)), num(strconv.Itoa(s.Years)),
			num(export.Money(r.BaselineTotal)),
			plain(r.CheapestVendor),
			signed(export.Money(r.BestSavings), r.BestSavings),
		)
	}
	t.render(w)
}

func runSensitivity(w io.Writer, cat *catalog.Catalog, s model.Scenario, name string, values []float64) error {
	if s.BaselineVendorID == "" {
		s.BaselineVendorID = catalog.BaselineVendorID
	}
	p, err := engine.ParseParameter(name)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		values = engine.DefaultSweep(cat, p, s)
	}
	points, err := engine.Sensitivity(cat, s, p, values)
	if err != nil {
		return goerr.Wrap(err, "failed to run sensitivity analysis")
	}

	ids := s.AllVendorIDs()
	title(w, "Sensitivity: %s", p)
	t := table{headers: append([]string{string(p)}, ids...)}
	for _, pt := range points {
		row := []cell{num(formatValue(p, pt.Value))}
		for _, id := range ids {
			row = append(row, num(export.Money(pt.Totals[id])))
		}
		t.add(row...)
	}
	t.render(w)
	return nil
}

func formatValue(p engine.Parameter, v float64) string {
	if p == engine.ParamFTESalary {
		return export.Money(v)
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}
