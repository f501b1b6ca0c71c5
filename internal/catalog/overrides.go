package catalog

import (
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// overrideFile is the TOML layout accepted by LoadOverrides:
//
//	[[vendor]]
//	id = "cisco_ise"
//	[vendor.pricing]
//	license_per_device_year = 52.0
//
// Only the keys present in the file are applied to an existing vendor.
type overrideFile struct {
	Vendor []vendorPatch `toml:"vendor"`
}

type vendorPatch struct {
	ID           string           `toml:"id"`
	Name         *string          `toml:"name"`
	Architecture *Architecture    `toml:"architecture"`
	Description  *string          `toml:"description"`
	Pricing      *pricingPatch    `toml:"pricing"`
	Staffing     *staffingPatch   `toml:"staffing"`
	Security     *securityPatch   `toml:"security"`
	Deployment   *deploymentPatch `toml:"deployment"`
	Compliance   map[string]int   `toml:"compliance"`
}

type pricingPatch struct {
	LicensePerDeviceYear    *float64      `toml:"license_per_device_year"`
	VolumeTiers             *[]VolumeTier `toml:"volume_tiers"`
	ApplianceCost           *float64      `toml:"appliance_cost"`
	DevicesPerAppliance     *int          `toml:"devices_per_appliance"`
	MinAppliances           *int          `toml:"min_appliances"`
	ImplementationBase      *float64      `toml:"implementation_base"`
	ImplementationPerDevice *float64      `toml:"implementation_per_device"`
	AnnualMaintenance       *float64      `toml:"annual_maintenance"`
	Training                *float64      `toml:"training"`
}

type staffingPatch struct {
	MinFTE        *float64 `toml:"min_fte"`
	DevicesPerFTE *int     `toml:"devices_per_fte"`
}

type securityPatch struct {
	ZeroTrustScore    *float64 `toml:"zero_trust_score"`
	RiskReduction     *float64 `toml:"risk_reduction"`
	InsuranceDiscount *float64 `toml:"insurance_discount"`
	AutomationLevel   *float64 `toml:"automation_level"`
}

type deploymentPatch struct {
	Days       *int        `toml:"days"`
	Complexity *Complexity `toml:"complexity"`
}

// LoadOverrides reads a TOML override file and applies it to the catalog.
func (c *Catalog) LoadOverrides(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return goerr.Wrap(err, "failed to open catalog override file", goerr.V("path", path))
	}
	defer f.Close()

	if err := c.ApplyOverrides(f); err != nil {
		return goerr.Wrap(err, "failed to apply catalog overrides", goerr.V("path", path))
	}
	return nil
}

// ApplyOverrides decodes TOML overrides from r and applies them. Unknown keys
// are rejected. Nothing is applied unless every entry is valid.
func (c *Catalog) ApplyOverrides(r io.Reader) error {
	var file overrideFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&file); err != nil {
		return goerr.Wrap(err, "failed to decode catalog overrides")
	}

	staged := make(map[string]Vendor, len(file.Vendor))
	for i, patch := range file.Vendor {
		if patch.ID == "" {
			return goerr.Wrap(ErrInvalidVendor, "override entry has no id", goerr.V("index", i))
		}
		base, ok := staged[patch.ID]
		if !ok {
			if existing, found := c.vendors[patch.ID]; found {
				base = cloneVendor(existing)
			} else {
				base = Vendor{ID: patch.ID}
			}
		}
		v := patch.apply(base)
		if err := v.Validate(); err != nil {
			return err
		}
		staged[v.ID] = v
	}

	for id, v := range staged {
		c.vendors[id] = v
	}
	return nil
}

func (p vendorPatch) apply(v Vendor) Vendor {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Architecture != nil {
		v.Architecture = *p.Architecture
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if pp := p.Pricing; pp != nil {
		setFloat(&v.Pricing.LicensePerDeviceYear, pp.LicensePerDeviceYear)
		setFloat(&v.Pricing.ApplianceCost, pp.ApplianceCost)
		setInt(&v.Pricing.DevicesPerAppliance, pp.DevicesPerAppliance)
		setInt(&v.Pricing.MinAppliances, pp.MinAppliances)
		setFloat(&v.Pricing.ImplementationBase, pp.ImplementationBase)
		setFloat(&v.Pricing.ImplementationPerDevice, pp.ImplementationPerDevice)
		setFloat(&v.Pricing.AnnualMaintenance, pp.AnnualMaintenance)
		setFloat(&v.Pricing.Training, pp.Training)
		if pp.VolumeTiers != nil {
			v.Pricing.VolumeTiers = append([]VolumeTier(nil), (*pp.VolumeTiers)...)
		}
	}
	if sp := p.Staffing; sp != nil {
		setFloat(&v.Staffing.MinFTE, sp.MinFTE)
		setInt(&v.Staffing.DevicesPerFTE, sp.DevicesPerFTE)
	}
	if sp := p.Security; sp != nil {
		setFloat(&v.Security.ZeroTrustScore, sp.ZeroTrustScore)
		setFloat(&v.Security.RiskReduction, sp.RiskReduction)
		setFloat(&v.Security.InsuranceDiscount, sp.InsuranceDiscount)
		setFloat(&v.Security.AutomationLevel, sp.AutomationLevel)
	}
	if dp := p.Deployment; dp != nil {
		setInt(&v.Deployment.Days, dp.Days)
		if dp.Complexity != nil {
			v.Deployment.Complexity = *dp.Complexity
		}
	}
	if len(p.Compliance) > 0 {
		if v.Compliance == nil {
			v.Compliance = make(map[string]int, len(p.Compliance))
		}
		for k, val := range p.Compliance {
			v.Compliance[k] = val
		}
	}
	return v
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
