package catalog

// Reference figures below are illustrative market estimates, not quotes.

const (
	// BaselineVendorID is the commercial product every comparison is made against.
	BaselineVendorID = "portnox"

	// DefaultFTESalary is used when neither the scenario nor the region gives one.
	DefaultFTESalary = 120000.0

	// ComplianceGapThreshold marks a framework as a gap below this coverage percent.
	ComplianceGapThreshold = 70
)

// Risk profiles.
const (
	RiskStandard  = "standard"
	RiskElevated  = "elevated"
	RiskHigh      = "high"
	RiskRegulated = "regulated"
)

// Cyber-insurance tiers.
const (
	InsuranceNone          = "none"
	InsuranceBasic         = "basic"
	InsuranceStandard      = "standard"
	InsuranceComprehensive = "comprehensive"
)

// Regions.
const (
	RegionNorthAmerica = "north_america"
	RegionEurope       = "europe"
	RegionAsiaPacific  = "asia_pacific"
	RegionLatinAmerica = "latin_america"
	RegionMiddleEast   = "middle_east"
)

// OrgSize is a device count preset.
type OrgSize struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Devices int    `json:"devices"`
}

// OrgSizes returns the organisation size presets, smallest first.
func OrgSizes() []OrgSize {
	return []OrgSize{
		{ID: "small", Name: "Small (500 devices)", Devices: 500},
		{ID: "medium", Name: "Medium (2,500 devices)", Devices: 2500},
		{ID: "large", Name: "Large (10,000 devices)", Devices: 10000},
		{ID: "enterprise", Name: "Enterprise (50,000 devices)", Devices: 50000},
	}
}

// Builtin returns a fresh catalog populated with the built-in tables.
// The returned value is owned by the caller.
func Builtin() *Catalog {
	c := &Catalog{
		vendors:    make(map[string]Vendor, len(builtinVendors)),
		industries: make(map[string]Industry, len(builtinIndustries)),
		frameworks: make(map[string]Framework, len(builtinFrameworks)),
		riskProfile: map[string]float64{
			RiskStandard:  0.15,
			RiskElevated:  0.25,
			RiskHigh:      0.35,
			RiskRegulated: 0.40,
		},
		insurance: map[string]float64{
			InsuranceNone:          0,
			InsuranceBasic:         15,
			InsuranceStandard:      25,
			InsuranceComprehensive: 40,
		},
		regions: map[string]float64{
			RegionNorthAmerica: 125000,
			RegionEurope:       95000,
			RegionAsiaPacific:  65000,
			RegionLatinAmerica: 55000,
			RegionMiddleEast:   80000,
		},
	}
	for _, v := range builtinVendors {
		c.vendors[v.ID] = cloneVendor(v)
	}
	for _, ind := range builtinIndustries {
		ind.RequiredFrameworks = append([]string(nil), ind.RequiredFrameworks...)
		c.industries[ind.ID] = ind
	}
	for _, f := range builtinFrameworks {
		c.frameworks[f.ID] = f
	}
	return c
}

var builtinFrameworks = []Framework{
	{ID: "hipaa", Name: "HIPAA", Description: "US health information privacy and security"},
	{ID: "pci_dss", Name: "PCI DSS", Description: "Payment card industry data security"},
	{ID: "sox", Name: "SOX", Description: "Sarbanes-Oxley financial reporting controls"},
	{ID: "gdpr", Name: "GDPR", Description: "EU general data protection regulation"},
	{ID: "iso27001", Name: "ISO 27001", Description: "Information security management systems"},
	{ID: "nist", Name: "NIST CSF", Description: "NIST cybersecurity framework"},
	{ID: "fedramp", Name: "FedRAMP", Description: "US federal cloud authorisation"},
	{ID: "nerc_cip", Name: "NERC CIP", Description: "North American bulk electric system protection"},
	{ID: "ferpa", Name: "FERPA", Description: "US student education records privacy"},
	{ID: "soc2", Name: "SOC 2", Description: "Service organisation trust criteria"},
	{ID: "cmmc", Name: "CMMC", Description: "US defence supply chain maturity model"},
}

var builtinIndustries = []Industry{
	{ID: "technology", Name: "Technology", BreachCost: 4350000, RequiredFrameworks: []string{"soc2", "iso27001", "gdpr"}},
	{ID: "healthcare", Name: "Healthcare", BreachCost: 10930000, RequiredFrameworks: []string{"hipaa", "gdpr", "nist"}},
	{ID: "finance", Name: "Financial Services", BreachCost: 5970000, RequiredFrameworks: []string{"pci_dss", "sox", "soc2"}},
	{ID: "retail", Name: "Retail", BreachCost: 3280000, RequiredFrameworks: []string{"pci_dss", "gdpr"}},
	{ID: "government", Name: "Government", BreachCost: 8750000, RequiredFrameworks: []string{"fedramp", "nist", "cmmc"}},
	{ID: "education", Name: "Education", BreachCost: 3860000, RequiredFrameworks: []string{"ferpa", "gdpr"}},
	{ID: "manufacturing", Name: "Manufacturing", BreachCost: 4450000, RequiredFrameworks: []string{"iso27001", "nist", "cmmc"}},
	{ID: "energy", Name: "Energy & Utilities", BreachCost: 4650000, RequiredFrameworks: []string{"nerc_cip", "iso27001", "nist"}},
}

var builtinVendors = []Vendor{
	{
		ID:           "portnox",
		Name:         "Portnox CLEAR",
		Architecture: ArchitectureCloud,
		Description:  "Cloud-native, agentless zero-trust NAC",
		Pricing: Pricing{
			LicensePerDeviceYear: 60,
			VolumeTiers: []VolumeTier{
				{MinDevices: 1000, Discount: 0.15},
				{MinDevices: 5000, Discount: 0.25},
				{MinDevices: 10000, Discount: 0.35},
			},
			ImplementationBase:      5000,
			ImplementationPerDevice: 2,
			Training:                2500,
		},
		Staffing:   Staffing{MinFTE: 0.25, DevicesPerFTE: 10000},
		Security:   Security{ZeroTrustScore: 95, RiskReduction: 0.60, InsuranceDiscount: 0.25, AutomationLevel: 90},
		Deployment: Deployment{Days: 14, Complexity: ComplexityLow},
		Compliance: map[string]int{
			"hipaa": 95, "pci_dss": 94, "sox": 90, "gdpr": 93, "iso27001": 95, "nist": 96,
			"fedramp": 85, "nerc_cip": 88, "ferpa": 92, "soc2": 96, "cmmc": 90,
		},
	},
	{
		ID:           "cisco_ise",
		Name:         "Cisco ISE",
		Architecture: ArchitectureOnPremises,
		Description:  "Appliance-based identity services engine",
		Pricing: Pricing{
			LicensePerDeviceYear:    45,
			VolumeTiers:             []VolumeTier{{MinDevices: 5000, Discount: 0.10}, {MinDevices: 10000, Discount: 0.15}},
			ApplianceCost:           45000,
			DevicesPerAppliance:     5000,
			MinAppliances:           2,
			ImplementationBase:      85000,
			ImplementationPerDevice: 15,
			AnnualMaintenance:       35000,
			Training:                25000,
		},
		Staffing:   Staffing{MinFTE: 2.0, DevicesPerFTE: 1500},
		Security:   Security{ZeroTrustScore: 60, RiskReduction: 0.35, InsuranceDiscount: 0.10, AutomationLevel: 40},
		Deployment: Deployment{Days: 180, Complexity: ComplexityVeryHigh},
		Compliance: map[string]int{
			"hipaa": 80, "pci_dss": 85, "sox": 75, "gdpr": 70, "iso27001": 82, "nist": 85,
			"fedramp": 80, "nerc_cip": 75, "ferpa": 65, "soc2": 78, "cmmc": 80,
		},
	},
	{
		ID:           "aruba_clearpass",
		Name:         "Aruba ClearPass",
		Architecture: ArchitectureOnPremises,
		Description:  "Policy management platform with on-site appliances",
		Pricing: Pricing{
			LicensePerDeviceYear:    40,
			VolumeTiers:             []VolumeTier{{MinDevices: 5000, Discount: 0.10}},
			ApplianceCost:           35000,
			DevicesPerAppliance:     5000,
			MinAppliances:           2,
			ImplementationBase:      65000,
			ImplementationPerDevice: 12,
			AnnualMaintenance:       28000,
			Training:                20000,
		},
		Staffing:   Staffing{MinFTE: 1.75, DevicesPerFTE: 1800},
		Security:   Security{ZeroTrustScore: 55, RiskReduction: 0.30, InsuranceDiscount: 0.10, AutomationLevel: 45},
		Deployment: Deployment{Days: 150, Complexity: ComplexityHigh},
		Compliance: map[string]int{
			"hipaa": 78, "pci_dss": 82, "sox": 72, "gdpr": 72, "iso27001": 80, "nist": 80,
			"fedramp": 60, "nerc_cip": 65, "ferpa": 70, "soc2": 75, "cmmc": 65,
		},
	},
	{
		ID:           "forescout",
		Name:         "Forescout",
		Architecture: ArchitectureOnPremises,
		Description:  "Agentless device visibility and control",
		Pricing: Pricing{
			LicensePerDeviceYear:    38,
			VolumeTiers:             []VolumeTier{{MinDevices: 10000, Discount: 0.12}},
			ApplianceCost:           50000,
			DevicesPerAppliance:     4000,
			MinAppliances:           2,
			ImplementationBase:      90000,
			ImplementationPerDevice: 18,
			AnnualMaintenance:       40000,
			Training:                30000,
		},
		Staffing:   Staffing{MinFTE: 2.0, DevicesPerFTE: 1500},
		Security:   Security{ZeroTrustScore: 65, RiskReduction: 0.40, InsuranceDiscount: 0.12, AutomationLevel: 50},
		Deployment: Deployment{Days: 180, Complexity: ComplexityVeryHigh},
		Compliance: map[string]int{
			"hipaa": 82, "pci_dss": 80, "sox": 70, "gdpr": 68, "iso27001": 78, "nist": 84,
			"fedramp": 70, "nerc_cip": 85, "ferpa": 60, "soc2": 72, "cmmc": 78,
		},
	},
	{
		ID:           "fortinac",
		Name:         "FortiNAC",
		Architecture: ArchitectureOnPremises,
		Description:  "NAC integrated with the Fortinet security fabric",
		Pricing: Pricing{
			LicensePerDeviceYear:    30,
			ApplianceCost:           25000,
			DevicesPerAppliance:     5000,
			MinAppliances:           1,
			ImplementationBase:      40000,
			ImplementationPerDevice: 8,
			AnnualMaintenance:       18000,
			Training:                12000,
		},
		Staffing:   Staffing{MinFTE: 1.25, DevicesPerFTE: 2500},
		Security:   Security{ZeroTrustScore: 50, RiskReduction: 0.30, InsuranceDiscount: 0.08, AutomationLevel: 40},
		Deployment: Deployment{Days: 120, Complexity: ComplexityMedium},
		Compliance: map[string]int{
			"hipaa": 72, "pci_dss": 78, "sox": 65, "gdpr": 65, "iso27001": 75, "nist": 76,
			"fedramp": 55, "nerc_cip": 70, "ferpa": 62, "soc2": 70, "cmmc": 68,
		},
	},
	{
		ID:           "extreme_control",
		Name:         "ExtremeControl",
		Architecture: ArchitectureHybrid,
		Description:  "Hybrid NAC managed through ExtremeCloud IQ",
		Pricing: Pricing{
			LicensePerDeviceYear:    28,
			ApplianceCost:           30000,
			DevicesPerAppliance:     6000,
			MinAppliances:           1,
			ImplementationBase:      45000,
			ImplementationPerDevice: 9,
			AnnualMaintenance:       20000,
			Training:                15000,
		},
		Staffing:   Staffing{MinFTE: 1.5, DevicesPerFTE: 2200},
		Security:   Security{ZeroTrustScore: 45, RiskReduction: 0.25, InsuranceDiscount: 0.08, AutomationLevel: 35},
		Deployment: Deployment{Days: 120, Complexity: ComplexityHigh},
		Compliance: map[string]int{
			"hipaa": 70, "pci_dss": 74, "sox": 62, "gdpr": 64, "iso27001": 72, "nist": 72,
			"fedramp": 50, "nerc_cip": 60, "ferpa": 65, "soc2": 66, "cmmc": 60,
		},
	},
	{
		ID:           "microsoft_nps",
		Name:         "Microsoft NPS",
		Architecture: ArchitectureOnPremises,
		Description:  "Windows Server RADIUS role",
		Pricing: Pricing{
			ApplianceCost:           12000,
			DevicesPerAppliance:     5000,
			MinAppliances:           2,
			ImplementationBase:      25000,
			ImplementationPerDevice: 4,
			AnnualMaintenance:       6000,
			Training:                5000,
		},
		Staffing:   Staffing{MinFTE: 1.0, DevicesPerFTE: 2000},
		Security:   Security{ZeroTrustScore: 20, RiskReduction: 0.10, AutomationLevel: 15},
		Deployment: Deployment{Days: 60, Complexity: ComplexityMedium},
		Compliance: map[string]int{
			"hipaa": 45, "pci_dss": 50, "sox": 40, "gdpr": 45, "iso27001": 50, "nist": 50,
			"fedramp": 40, "nerc_cip": 35, "ferpa": 45, "soc2": 40, "cmmc": 40,
		},
	},
	{
		ID:           "packetfence",
		Name:         "PacketFence",
		Architecture: ArchitectureOnPremises,
		Description:  "Open-source NAC with commercial support",
		Pricing: Pricing{
			ApplianceCost:           15000,
			DevicesPerAppliance:     5000,
			MinAppliances:           2,
			ImplementationBase:      95000,
			ImplementationPerDevice: 5,
			AnnualMaintenance:       24000,
			Training:                18000,
		},
		Staffing:   Staffing{MinFTE: 2.0, DevicesPerFTE: 1200},
		Security:   Security{ZeroTrustScore: 35, RiskReduction: 0.20, InsuranceDiscount: 0.05, AutomationLevel: 30},
		Deployment: Deployment{Days: 150, Complexity: ComplexityVeryHigh},
		Compliance: map[string]int{
			"hipaa": 55, "pci_dss": 60, "sox": 50, "gdpr": 55, "iso27001": 58, "nist": 60,
			"fedramp": 30, "nerc_cip": 45, "ferpa": 55, "soc2": 50, "cmmc": 45,
		},
	},
	{
		ID:           "foxpass",
		Name:         "Foxpass",
		Architecture: ArchitectureCloud,
		Description:  "Cloud-hosted RADIUS and LDAP",
		Pricing: Pricing{
			LicensePerDeviceYear: 24,
			ImplementationBase:   5000,
			Training:             1000,
		},
		Staffing:   Staffing{MinFTE: 0.25, DevicesPerFTE: 8000},
		Security:   Security{ZeroTrustScore: 40, RiskReduction: 0.20, InsuranceDiscount: 0.05, AutomationLevel: 60},
		Deployment: Deployment{Days: 10, Complexity: ComplexityLow},
		Compliance: map[string]int{
			"hipaa": 55, "pci_dss": 58, "gdpr": 60, "iso27001": 55, "nist": 55, "soc2": 65,
		},
	},
	{
		ID:           "securew2",
		Name:         "SecureW2",
		Architecture: ArchitectureCloud,
		Description:  "Cloud PKI and RADIUS for passwordless network access",
		Pricing: Pricing{
			LicensePerDeviceYear:    18,
			VolumeTiers:             []VolumeTier{{MinDevices: 2500, Discount: 0.10}, {MinDevices: 10000, Discount: 0.20}},
			ImplementationBase:      7500,
			ImplementationPerDevice: 1,
			Training:                2000,
		},
		Staffing:   Staffing{MinFTE: 0.5, DevicesPerFTE: 6000},
		Security:   Security{ZeroTrustScore: 60, RiskReduction: 0.35, InsuranceDiscount: 0.10, AutomationLevel: 70},
		Deployment: Deployment{Days: 21, Complexity: ComplexityLow},
		Compliance: map[string]int{
			"hipaa": 70, "pci_dss": 72, "sox": 60, "gdpr": 75, "iso27001": 74, "nist": 72,
			"fedramp": 45, "ferpa": 70, "soc2": 80, "cmmc": 55,
		},
	},
}
