package catalog

import (
	"github.com/m-mizutani/goerr/v2"
)

// PriceQuote carries vendor pricing taken from a customer's actual quote.
// Nil fields keep the catalog value. License is per device per year,
// Maintenance per year. Hardware and Implementation are one-time totals for
// the whole deployment.
type PriceQuote struct {
	VendorID       string   `json:"vendor_id"`
	License        *float64 `json:"license,omitempty"`
	Hardware       *float64 `json:"hardware,omitempty"`
	Implementation *float64 `json:"implementation,omitempty"`
	Maintenance    *float64 `json:"maintenance,omitempty"`
	Training       *float64 `json:"training,omitempty"`
	DevicesPerFTE  *int     `json:"devices_per_fte,omitempty"`
	Source         string   `json:"source,omitempty"` // e.g. "quotes.csv line 3"
}

// quotedApplianceCapacity makes a quoted hardware total a single appliance.
const quotedApplianceCapacity = 1 << 30

// IsEmpty reports whether the quote overrides nothing.
func (q PriceQuote) IsEmpty() bool {
	return q.License == nil && q.Hardware == nil && q.Implementation == nil &&
		q.Maintenance == nil && q.Training == nil && q.DevicesPerFTE == nil
}

// ApplyQuotes overwrites pricing fields of known vendors. Either every quote is
// applied or none is.
func (c *Catalog) ApplyQuotes(quotes []PriceQuote) error {
	staged := make(map[string]Vendor, len(quotes))
	for _, q := range quotes {
		v, ok := staged[q.VendorID]
		if !ok {
			existing, found := c.vendors[q.VendorID]
			if !found {
				return goerr.Wrap(ErrUnknownVendor, "quote references unknown vendor",
					goerr.V("vendor_id", q.VendorID), goerr.V("source", q.Source))
			}
			v = cloneVendor(existing)
		}
		setFloat(&v.Pricing.LicensePerDeviceYear, q.License)
		setFloat(&v.Pricing.AnnualMaintenance, q.Maintenance)
		setFloat(&v.Pricing.Training, q.Training)
		setInt(&v.Staffing.DevicesPerFTE, q.DevicesPerFTE)
		if q.Hardware != nil {
			// one quoted appliance bundle covers every device
			v.Pricing.ApplianceCost = *q.Hardware
			v.Pricing.DevicesPerAppliance = quotedApplianceCapacity
			v.Pricing.MinAppliances = 1
		}
		if q.Implementation != nil {
			v.Pricing.ImplementationBase = *q.Implementation
			v.Pricing.ImplementationPerDevice = 0
		}
		if err := v.Validate(); err != nil {
			return goerr.Wrap(err, "quote produced an invalid vendor", goerr.V("source", q.Source))
		}
		staged[q.VendorID] = v
	}
	for id, v := range staged {
		c.vendors[id] = v
	}
	return nil
}
