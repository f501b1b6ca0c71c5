package cli

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/piwi3910/tcocompare/internal/model"
	"github.com/piwi3910/tcocompare/internal/project"
)

// scenarioFlags builds a scenario from an optional YAML file plus flags.
// Flags that are set win over the file.
type scenarioFlags struct {
	file        string
	name        string
	devices     int
	years       int
	industry    string
	region      string
	riskProfile string
	insurance   string
	salary      float64
	vendors     []string
	baseline    string
	priorities  []string
}

func (f *scenarioFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "scenario",
			Aliases:     []string{"s"},
			Usage:       "YAML scenario file",
			Sources:     envVars("SCENARIO"),
			Destination: &f.file,
		},
		&cli.StringFlag{Name: "name", Usage: "Scenario name", Destination: &f.name},
		&cli.IntFlag{Name: "devices", Usage: "Number of managed devices", Destination: &f.devices},
		&cli.IntFlag{Name: "years", Usage: "Analysis period in years (1-10)", Destination: &f.years},
		&cli.StringFlag{Name: "industry", Usage: "Industry ID", Destination: &f.industry},
		&cli.StringFlag{Name: "region", Usage: "Region ID used for the average FTE salary", Destination: &f.region},
		&cli.StringFlag{Name: "risk-profile", Usage: "Risk profile (standard, elevated, high, regulated)", Destination: &f.riskProfile},
		&cli.StringFlag{Name: "insurance", Usage: "Cyber insurance tier", Destination: &f.insurance},
		&cli.FloatFlag{Name: "salary", Usage: "Loaded FTE salary (default: region average)", Destination: &f.salary},
		&cli.StringSliceFlag{Name: "vendor", Usage: "Vendor ID to compare (repeatable)", Destination: &f.vendors},
		&cli.StringFlag{Name: "baseline", Aliases: []string{"b"}, Usage: "Baseline vendor ID", Destination: &f.baseline},
		&cli.StringSliceFlag{Name: "priority", Usage: "Recommendation priority: cost, security, compliance, operations (repeatable)", Destination: &f.priorities},
	}
}

// Build returns the validated scenario.
func (f *scenarioFlags) Build(c *cli.Command) (model.Scenario, error) {
	s := model.NewScenario("CLI Scenario")
	if f.file != "" {
		loaded, err := project.LoadScenarioYAML(f.file)
		if err != nil {
			return s, goerr.Wrap(err, "failed to load scenario file")
		}
		s = loaded
	}

	if c.IsSet("name") {
		s.Name = f.name
	}
	if c.IsSet("devices") {
		s.Devices = f.devices
	}
	if c.IsSet("years") {
		s.Years = f.years
	}
	if c.IsSet("industry") {
		s.Industry = f.industry
	}
	if c.IsSet("region") {
		s.Region = f.region
	}
	if c.IsSet("risk-profile") {
		s.RiskProfile = f.riskProfile
	}
	if c.IsSet("insurance") {
		s.Insurance = f.insurance
	}
	if c.IsSet("salary") {
		s.AvgFTESalary = f.salary
	}
	if c.IsSet("vendor") {
		s.VendorIDs = append([]string(nil), f.vendors...)
	}
	if c.IsSet("baseline") {
		s.BaselineVendorID = f.baseline
	}
	if c.IsSet("priority") {
		s.Priorities = nil
		for _, p := range f.priorities {
			s.Priorities = append(s.Priorities, model.Priority(p))
		}
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}
