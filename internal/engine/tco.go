// Package engine implements the TCO cost model and everything derived from
// it: vendor comparison, payback, ROI, risk, compliance, recommendations and
// sensitivity analysis. All functions are pure and safe for concurrent use.
package engine

import (
	"math"

	"github.com/piwi3910/tcocompare/internal/catalog"
	"github.com/piwi3910/tcocompare/internal/model"
)

// LicenseRate returns the per-device annual license price after the volume
// discount of the largest tier the device count qualifies for.
func LicenseRate(v catalog.Vendor, devices int) float64 {
	discount := 0.0
	bestMin := -1
	for _, tier := range v.Pricing.VolumeTiers {
		if devices >= tier.MinDevices && tier.MinDevices > bestMin {
			bestMin = tier.MinDevices
			discount = tier.Discount
		}
	}
	return v.Pricing.LicensePerDeviceYear * (1 - discount)
}

// Appliances returns how many appliances the vendor needs for the device count.
func Appliances(v catalog.Vendor, devices int) int {
	p := v.Pricing
	if p.ApplianceCost == 0 || p.DevicesPerAppliance <= 0 {
		return 0
	}
	n := int(math.Ceil(float64(devices) / float64(p.DevicesPerAppliance)))
	if n < p.MinAppliances {
		n = p.MinAppliances
	}
	return n
}

// HardwareCost is the one-time appliance spend.
func HardwareCost(v catalog.Vendor, devices int) float64 {
	return v.Pricing.ApplianceCost * float64(Appliances(v, devices))
}

// ImplementationCost is the one-time professional services spend.
func ImplementationCost(v catalog.Vendor, devices int) float64 {
	return v.Pricing.ImplementationBase + v.Pricing.ImplementationPerDevice*float64(devices)
}

// FTECount is the staffing needed to operate the product.
func FTECount(v catalog.Vendor, devices int) float64 {
	fte := 0.0
	if v.Staffing.DevicesPerFTE > 0 {
		fte = float64(devices) / float64(v.Staffing.DevicesPerFTE)
	}
	return math.Max(v.Staffing.MinFTE, fte)
}

// ResolveSalary picks the loaded FTE salary for a scenario: the explicit
// value, then the regional average, then catalog.DefaultFTESalary.
func ResolveSalary(cat *catalog.Catalog, s model.Scenario) float64 {
	if s.AvgFTESalary > 0 {
		return s.AvgFTESalary
	}
	return cat.RegionSalary(s.Region)
}

// CalculateTCO applies the closed-form cost model:
//
//	license        = devices * years * annual license rate
//	hardware       = appliance cost * appliances
//	implementation = base + per device * devices
//	maintenance    = years * annual maintenance
//	training       = one-time training
//	personnel      = years * fte * salary
//
// Total is the plain sum of the six components. The scenario is expected to
// have been validated by the caller.
func CalculateTCO(v catalog.Vendor, s model.Scenario, salary float64) model.CostBreakdown {
	devices := float64(s.Devices)
	years := float64(s.Years)
	fte := FTECount(v, s.Devices)

	b := model.CostBreakdown{
		VendorID:       v.ID,
		VendorName:     v.Name,
		Devices:        s.Devices,
		Years:          s.Years,
		License:        devices * years * LicenseRate(v, s.Devices),
		Hardware:       HardwareCost(v, s.Devices),
		Implementation: ImplementationCost(v, s.Devices),
		Maintenance:    years * v.Pricing.AnnualMaintenance,
		Training:       v.Pricing.Training,
		Personnel:      years * fte * salary,
		FTE:            fte,
		FTESalary:      salary,
	}
	b.Total = b.License + b.Hardware + b.Implementation + b.Maintenance + b.Training + b.Personnel
	return b
}

// YearlyCosts spreads a breakdown over its horizon. Year one carries the
// one-time costs. The final cumulative value is the breakdown total.
func YearlyCosts(b model.CostBreakdown) []model.YearCost {
	if b.Years <= 0 {
		return nil
	}
	annual := b.Annual()
	out := make([]model.YearCost, b.Years)
	cumulative := 0.0
	for i := range out {
		cost := annual
		if i == 0 {
			cost += b.OneTime()
		}
		if i == b.Years-1 {
			cost = b.Total - cumulative
		}
		cumulative += cost
		out[i] = model.YearCost{Year: i + 1, Cost: cost, Cumulative: cumulative}
	}
	out[len(out)-1].Cumulative = b.Total
	return out
}
