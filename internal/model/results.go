package model

import (
	"fmt"
	"time"
)

// Component is one named line of a cost breakdown.
type Component struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// CostBreakdown is the six-component TCO of one vendor for one scenario.
type CostBreakdown struct {
	VendorID       string  `json:"vendor_id"`
	VendorName     string  `json:"vendor_name"`
	Devices        int     `json:"devices"`
	Years          int     `json:"years"`
	License        float64 `json:"license"`
	Hardware       float64 `json:"hardware"`
	Implementation float64 `json:"implementation"`
	Maintenance    float64 `json:"maintenance"`
	Training       float64 `json:"training"`
	Personnel      float64 `json:"personnel"`
	FTE            float64 `json:"fte"`
	FTESalary      float64 `json:"fte_salary"`
	Total          float64 `json:"total"`
}

// OneTime returns the costs paid once, up front.
func (b CostBreakdown) OneTime() float64 {
	return b.Hardware + b.Implementation + b.Training
}

// Annual returns the recurring cost per year.
func (b CostBreakdown) Annual() float64 {
	if b.Years <= 0 {
		return 0
	}
	return (b.License + b.Maintenance + b.Personnel) / float64(b.Years)
}

// Components returns the breakdown lines in display order.
func (b CostBreakdown) Components() []Component {
	return []Component{
		{Name: "License", Value: b.License},
		{Name: "Hardware", Value: b.Hardware},
		{Name: "Implementation", Value: b.Implementation},
		{Name: "Maintenance", Value: b.Maintenance},
		{Name: "Training", Value: b.Training},
		{Name: "Personnel", Value: b.Personnel},
	}
}

// YearCost is the spend in one year of the horizon.
type YearCost struct {
	Year       int     `json:"year"`
	Cost       float64 `json:"cost"`
	Cumulative float64 `json:"cumulative"`
}

// Payback is the time until choosing the baseline over a competitor has paid
// for itself.
type Payback struct {
	Months     float64 `json:"months"`
	Achievable bool    `json:"achievable"`
}

func (p Payback) String() string {
	switch {
	case !p.Achievable:
		return "Never"
	case p.Months == 0:
		return "Immediate"
	default:
		return fmt.Sprintf("%.1f months", p.Months)
	}
}

// RiskAssessment quantifies breach and insurance benefits over the horizon.
type RiskAssessment struct {
	BreachProbability       float64 `json:"breach_probability"`
	AnnualExposure          float64 `json:"annual_exposure"`
	AvoidedLossPerYear      float64 `json:"avoided_loss_per_year"`
	InsuranceSavingsPerYear float64 `json:"insurance_savings_per_year"`
	TotalBenefit            float64 `json:"total_benefit"`
	RiskAdjustedTotal       float64 `json:"risk_adjusted_total"`
}

// FrameworkCoverage is a vendor's coverage of one compliance framework.
type FrameworkCoverage struct {
	FrameworkID string `json:"framework_id"`
	Name        string `json:"name"`
	Coverage    int    `json:"coverage"`
	Gap         bool   `json:"gap"`
}

// ComplianceCoverage summarises a vendor against an industry's frameworks.
type ComplianceCoverage struct {
	Frameworks []FrameworkCoverage `json:"frameworks"`
	Average    float64             `json:"average"`
	Gaps       []string            `json:"gaps"`
}

// VendorResult is everything computed for one vendor in a comparison.
type VendorResult struct {
	Breakdown      CostBreakdown      `json:"breakdown"`
	Yearly         []YearCost         `json:"yearly"`
	Savings        float64            `json:"savings"`
	SavingsPercent float64            `json:"savings_percent"`
	ROIPercent     float64            `json:"roi_percent"`
	Payback        Payback            `json:"payback"`
	Risk           RiskAssessment     `json:"risk"`
	Compliance     ComplianceCoverage `json:"compliance"`
	Rank           int                `json:"rank"`
	IsBaseline     bool               `json:"is_baseline"`
}

// VendorID is a shortcut for r.Breakdown.VendorID.
func (r VendorResult) VendorID() string { return r.Breakdown.VendorID }

// Comparison is the outcome of running one scenario against several vendors.
// Results are ordered by total cost, cheapest first.
type Comparison struct {
	Scenario    Scenario       `json:"scenario"`
	Baseline    string         `json:"baseline"`
	Results     []VendorResult `json:"results"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Result returns the result for a vendor.
func (c Comparison) Result(vendorID string) (VendorResult, bool) {
	for _, r := range c.Results {
		if r.Breakdown.VendorID == vendorID {
			return r, true
		}
	}
	return VendorResult{}, false
}

// BaselineResult returns the result of the baseline vendor.
func (c Comparison) BaselineResult() (VendorResult, bool) {
	return c.Result(c.Baseline)
}

// Cheapest returns the lowest-total result.
func (c Comparison) Cheapest() (VendorResult, bool) {
	if len(c.Results) == 0 {
		return VendorResult{}, false
	}
	return c.Results[0], true
}

// Recommendation is a weighted vendor score, 0-100 on every axis.
type Recommendation struct {
	VendorID        string  `json:"vendor_id"`
	VendorName      string  `json:"vendor_name"`
	Score           float64 `json:"score"`
	CostScore       float64 `json:"cost_score"`
	SecurityScore   float64 `json:"security_score"`
	ComplianceScore float64 `json:"compliance_score"`
	OperationsScore float64 `json:"operations_score"`
}

// SensitivityPoint holds vendor totals for one value of a swept parameter.
type SensitivityPoint struct {
	Parameter string             `json:"parameter"`
	Value     float64            `json:"value"`
	Totals    map[string]float64 `json:"totals"`
	Savings   map[string]float64 `json:"savings"`
}
