// Package catalog holds the static reference tables used by the cost model:
// vendor pricing, industries, compliance frameworks, risk profiles and
// regional salaries. A Catalog is an ordinary value built once and passed to
// whoever needs it.
package catalog

import (
	"errors"
	"math"
	"sort"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrUnknownVendor    = errors.New("unknown vendor")
	ErrUnknownIndustry  = errors.New("unknown industry")
	ErrUnknownFramework = errors.New("unknown compliance framework")
	ErrInvalidVendor    = errors.New("invalid vendor definition")

	ErrUnknownRiskProfile   = errors.New("unknown risk profile")
	ErrUnknownInsuranceTier = errors.New("unknown insurance tier")
)

// Architecture describes how a NAC product is deployed.
type Architecture string

const (
	ArchitectureCloud      Architecture = "cloud"
	ArchitectureOnPremises Architecture = "on_premises"
	ArchitectureHybrid     Architecture = "hybrid"
)

// Complexity is the deployment effort class of a vendor.
type Complexity string

const (
	ComplexityLow      Complexity = "low"
	ComplexityMedium   Complexity = "medium"
	ComplexityHigh     Complexity = "high"
	ComplexityVeryHigh Complexity = "very_high"
)

// VolumeTier grants a license discount once the device count reaches MinDevices.
type VolumeTier struct {
	MinDevices int     `json:"min_devices" toml:"min_devices"`
	Discount   float64 `json:"discount" toml:"discount"` // fraction, 0.10 = 10%
}

// Pricing holds every input of the cost formula that is owned by the vendor.
type Pricing struct {
	LicensePerDeviceYear    float64      `json:"license_per_device_year" toml:"license_per_device_year"`
	VolumeTiers             []VolumeTier `json:"volume_tiers" toml:"volume_tiers"`
	ApplianceCost           float64      `json:"appliance_cost" toml:"appliance_cost"`
	DevicesPerAppliance     int          `json:"devices_per_appliance" toml:"devices_per_appliance"`
	MinAppliances           int          `json:"min_appliances" toml:"min_appliances"`
	ImplementationBase      float64      `json:"implementation_base" toml:"implementation_base"`
	ImplementationPerDevice float64      `json:"implementation_per_device" toml:"implementation_per_device"`
	AnnualMaintenance       float64      `json:"annual_maintenance" toml:"annual_maintenance"`
	Training                float64      `json:"training" toml:"training"`
}

// Staffing determines how many FTEs are needed to run the product.
type Staffing struct {
	MinFTE        float64 `json:"min_fte" toml:"min_fte"`
	DevicesPerFTE int     `json:"devices_per_fte" toml:"devices_per_fte"`
}

// Security carries the marketing scores used for risk and recommendations.
type Security struct {
	ZeroTrustScore    float64 `json:"zero_trust_score" toml:"zero_trust_score"`     // 0-100
	RiskReduction     float64 `json:"risk_reduction" toml:"risk_reduction"`         // fraction of breach exposure avoided
	InsuranceDiscount float64 `json:"insurance_discount" toml:"insurance_discount"` // fraction off cyber-insurance premium
	AutomationLevel   float64 `json:"automation_level" toml:"automation_level"`     // 0-100
}

// Deployment describes rollout effort.
type Deployment struct {
	Days       int        `json:"days" toml:"days"`
	Complexity Complexity `json:"complexity" toml:"complexity"`
}

// Vendor is one NAC product in the comparison.
type Vendor struct {
	ID           string         `json:"id" toml:"id"`
	Name         string         `json:"name" toml:"name"`
	Architecture Architecture   `json:"architecture" toml:"architecture"`
	Description  string         `json:"description" toml:"description"`
	Pricing      Pricing        `json:"pricing" toml:"pricing"`
	Staffing     Staffing       `json:"staffing" toml:"staffing"`
	Security     Security       `json:"security" toml:"security"`
	Deployment   Deployment     `json:"deployment" toml:"deployment"`
	Compliance   map[string]int `json:"compliance" toml:"compliance"` // framework ID -> coverage percent
}

// RequiresHardware reports whether the vendor ships on-site appliances.
func (v Vendor) RequiresHardware() bool {
	return v.Pricing.ApplianceCost > 0
}

// Validate checks that the vendor can be fed to the cost formula.
func (v Vendor) Validate() error {
	if v.ID == "" {
		return goerr.Wrap(ErrInvalidVendor, "vendor ID is required")
	}
	if v.Name == "" {
		return goerr.Wrap(ErrInvalidVendor, "vendor name is required", goerr.V("id", v.ID))
	}
	p := v.Pricing
	for field, value := range map[string]float64{
		"license_per_device_year":   p.LicensePerDeviceYear,
		"appliance_cost":            p.ApplianceCost,
		"implementation_base":       p.ImplementationBase,
		"implementation_per_device": p.ImplementationPerDevice,
		"annual_maintenance":        p.AnnualMaintenance,
		"training":                  p.Training,
		"min_fte":                   v.Staffing.MinFTE,
	} {
		if !isFinite(value) || value < 0 {
			return goerr.Wrap(ErrInvalidVendor, "rate must be a finite, non-negative number",
				goerr.V("id", v.ID), goerr.V("field", field), goerr.V("value", value))
		}
	}
	for _, tier := range p.VolumeTiers {
		if !isFinite(tier.Discount) || tier.Discount < 0 || tier.Discount >= 1 {
			return goerr.Wrap(ErrInvalidVendor, "volume discount must be in [0,1)", goerr.V("id", v.ID), goerr.V("discount", tier.Discount))
		}
	}
	sec := v.Security
	for _, b := range []struct {
		field  string
		value  float64
		lo, hi float64
	}{
		{"zero_trust_score", sec.ZeroTrustScore, 0, 100},
		{"automation_level", sec.AutomationLevel, 0, 100},
		{"risk_reduction", sec.RiskReduction, 0, 1},
		{"insurance_discount", sec.InsuranceDiscount, 0, 1},
	} {
		if !isFinite(b.value) || b.value < b.lo || b.value > b.hi {
			return goerr.Wrap(ErrInvalidVendor, "security figure out of range",
				goerr.V("id", v.ID), goerr.V("field", b.field), goerr.V("value", b.value),
				goerr.V("min", b.lo), goerr.V("max", b.hi))
		}
	}
	if p.ApplianceCost > 0 && p.DevicesPerAppliance <= 0 {
		return goerr.Wrap(ErrInvalidVendor, "devices_per_appliance must be positive for hardware vendors", goerr.V("id", v.ID))
	}
	if v.Staffing.DevicesPerFTE <= 0 {
		return goerr.Wrap(ErrInvalidVendor, "devices_per_fte must be positive", goerr.V("id", v.ID))
	}
	return nil
}

// Industry holds breach economics and the frameworks a sector must satisfy.
type Industry struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	BreachCost         float64  `json:"breach_cost"`
	RequiredFrameworks []string `json:"required_frameworks"`
}

// Framework is a compliance standard.
type Framework struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog is the full set of reference tables.
type Catalog struct {
	vendors     map[string]Vendor
	industries  map[string]Industry
	frameworks  map[string]Framework
	riskProfile map[string]float64
	insurance   map[string]float64
	regions     map[string]float64
}

// Vendor looks up a vendor by ID. The result is a copy; use PutVendor to
// change the catalog.
func (c *Catalog) Vendor(id string) (Vendor, error) {
	v, ok := c.vendors[id]
	if !ok {
		return Vendor{}, goerr.Wrap(ErrUnknownVendor, "vendor lookup failed", goerr.V("vendor_id", id))
	}
	return cloneVendor(v), nil
}

// HasVendor reports whether id is a known vendor.
func (c *Catalog) HasVendor(id string) bool {
	_, ok := c.vendors[id]
	return ok
}

// VendorIDs returns all vendor IDs in lexical order.
func (c *Catalog) VendorIDs() []string {
	ids := make([]string, 0, len(c.vendors))
	for id := range c.vendors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Vendors returns all vendors sorted by display name.
func (c *Catalog) Vendors() []Vendor {
	out := make([]Vendor, 0, len(c.vendors))
	for _, v := range c.vendors {
		out = append(out, cloneVendor(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PutVendor adds or replaces a vendor after validating it.
func (c *Catalog) PutVendor(v Vendor) error {
	if err := v.Validate(); err != nil {
		return err
	}
	c.vendors[v.ID] = cloneVendor(v)
	return nil
}

// Industry looks up an industry by ID.
func (c *Catalog) Industry(id string) (Industry, error) {
	ind, ok := c.industries[id]
	if !ok {
		return Industry{}, goerr.Wrap(ErrUnknownIndustry, "industry lookup failed", goerr.V("industry_id", id))
	}
	return ind, nil
}

// Industries returns all industries sorted by name.
func (c *Catalog) Industries() []Industry {
	out := make([]Industry, 0, len(c.industries))
	for _, ind := range c.industries {
		out = append(out, ind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Framework looks up a compliance framework by ID.
func (c *Catalog) Framework(id string) (Framework, error) {
	f, ok := c.frameworks[id]
	if !ok {
		return Framework{}, goerr.Wrap(ErrUnknownFramework, "framework lookup failed", goerr.V("framework_id", id))
	}
	return f, nil
}

// Frameworks returns all frameworks sorted by ID.
func (c *Catalog) Frameworks() []Framework {
	out := make([]Framework, 0, len(c.frameworks))
	for _, f := range c.frameworks {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// BreachProbability returns the annual breach probability for a risk profile.
// An empty profile means "standard".
func (c *Catalog) BreachProbability(profile string) (float64, error) {
	if profile == "" {
		profile = RiskStandard
	}
	p, ok := c.riskProfile[profile]
	if !ok {
		return 0, goerr.Wrap(ErrUnknownRiskProfile, "risk profile lookup failed",
			goerr.V("risk_profile", profile), goerr.V("known", c.RiskProfiles()))
	}
	return p, nil
}

// InsurancePremium returns the per-device annual premium for an insurance
// tier. An empty tier means "standard".
func (c *Catalog) InsurancePremium(tier string) (float64, error) {
	if tier == "" {
		tier = InsuranceStandard
	}
	p, ok := c.insurance[tier]
	if !ok {
		return 0, goerr.Wrap(ErrUnknownInsuranceTier, "insurance tier lookup failed",
			goerr.V("insurance", tier), goerr.V("known", c.InsuranceTiers()))
	}
	return p, nil
}

// RegionSalary returns the average loaded FTE salary for a region, or
// DefaultFTESalary when the region is unknown.
func (c *Catalog) RegionSalary(region string) float64 {
	if s, ok := c.regions[region]; ok {
		return s
	}
	return DefaultFTESalary
}

// Regions returns the known region IDs in lexical order.
func (c *Catalog) Regions() []string {
	return sortedKeys(c.regions)
}

// RiskProfiles returns the known risk profile IDs in lexical order.
func (c *Catalog) RiskProfiles() []string {
	return sortedKeys(c.riskProfile)
}

// InsuranceTiers returns the known insurance tier IDs in lexical order.
func (c *Catalog) InsuranceTiers() []string {
	return sortedKeys(c.insurance)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cloneVendor(v Vendor) Vendor {
	out := v
	if v.Pricing.VolumeTiers != nil {
		out.Pricing.VolumeTiers = append([]VolumeTier(nil), v.Pricing.VolumeTiers...)
	}
	if v.Compliance != nil {
		out.Compliance = make(map[string]int, len(v.Compliance))
		for k, val := range v.Compliance {
			out.Compliance[k] = val
		}
	}
	return out
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
