package engine

import (
	"errors"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/model"
)

// ErrUnknownParameter is returned for a sensitivity parameter that cannot be swept.
var ErrUnknownParameter = errors.New("unknown sensitivity parameter")

// Parameter is a scenario input that Sensitivity can vary.
type Parameter string

const (
	ParamDevices   Parameter = "devices"
	ParamYears     Parameter = "years"
	ParamFTESalary Parameter = "fte_salary"
)

// Parameters lists every sweepable input.
func Parameters() []Parameter {
	return []Parameter{ParamDevices, ParamYears, ParamFTESalary}
}

// ParseParameter converts a user-supplied name to a Parameter.
func ParseParameter(name string) (Parameter, error) {
	for _, p := range Parameters() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", goerr.Wrap(ErrUnknownParameter, "cannot sweep parameter", goerr.V("parameter", name))
}

// sweepFactors are applied to the current value by DefaultSweep.
var sweepFactors = []float64{0.5, 0.75, 1, 1.5, 2}

// CurrentValue returns the scenario's present value for p.
func CurrentValue(cat *catalog.Catalog, p Parameter, s model.Scenario) float64 {
	switch p {
	case ParamDevices:
		return float64(s.Devices)
	case ParamYears:
		return float64(s.Years)
	case ParamFTESalary:
		return ResolveSalary(cat, s)
	}
	return 0
}

// DefaultSweep returns values at 50%, 75%, 100%, 150% and 200% of the
// current value. Device counts are rounded and years are rounded and
// clamped to the allowed horizon.
func DefaultSweep(cat *catalog.Catalog, p Parameter, s model.Scenario) []float64 {
	current := CurrentValue(cat, p, s)
	values := make([]float64, 0, len(sweepFactors))
	for _, f := range sweepFactors {
		v := current * f
		switch p {
		case ParamDevices:
			v = math.Max(1, math.Round(v))
		case ParamYears:
			v = math.Min(model.MaxYears, math.Max(model.MinYears, math.Round(v)))
		}
		values = append(values, v)
	}
	return values
}

// Sensitivity re-runs the comparison once per value with p substituted.
// An empty values slice uses DefaultSweep.
func Sensitivity(cat *catalog.Catalog, s model.Scenario, p Parameter, values []float64) ([]model.SensitivityPoint, error) {
	if _, err := ParseParameter(string(p)); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		values = DefaultSweep(cat, p, s)
	}

	points := make([]model.SensitivityPoint, 0, len(values))
	for _, value := range values {
		variant := s.Clone()
		switch p {
		case ParamDevices:
			variant.Devices = int(math.Round(value))
		case ParamYears:
			variant.Years = int(math.Round(value))
		case ParamFTESalary:
			variant.AvgFTESalary = value
		}

		cmp, err := Compare(cat, variant)
		if err != nil {
			return nil, goerr.Wrap(err, "sensitivity run failed", goerr.V("parameter", string(p)), goerr.V("value", value))
		}

		pt := model.SensitivityPoint{
			Parameter: string(p),
			Value:     value,
			Totals:    make(map[string]float64, len(cmp.Results)),
			Savings:   make(map[string]float64, len(cmp.Results)),
		}
		for _, r := range cmp.Results {
			pt.Totals[r.VendorID()] = r.Breakdown.Total
			pt.Savings[r.VendorID()] = r.Savings
		}
		points = append(points, pt)
	}
	return points, nil
}
