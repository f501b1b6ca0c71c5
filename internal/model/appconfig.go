package model

// MaxRecentProjects bounds AppConfig.RecentProjects.
const MaxRecentProjects = 10

// AppConfig holds application-wide preferences and the defaults for new scenarios.
type AppConfig struct {
	// Defaults applied to new scenarios
	DefaultDevices     int     `json:"default_devices"`
	DefaultYears       int     `json:"default_years"`
	DefaultIndustry    string  `json:"default_industry"`
	DefaultRegion      string  `json:"default_region"`
	DefaultRiskProfile string  `json:"default_risk_profile"`
	DefaultInsurance   string  `json:"default_insurance"`
	DefaultFTESalary   float64 `json:"default_fte_salary"` // 0 = region average
	DefaultBaseline    string  `json:"default_baseline"`

	// Application preferences
	CatalogPath    string   `json:"catalog_path,omitempty"` // TOML vendor overrides
	RecentProjects []string `json:"recent_projects"`
	Theme          string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig matching the values of NewScenario.
func DefaultAppConfig() AppConfig {
	defaults := NewScenario("")
	return AppConfig{
		DefaultDevices:     defaults.Devices,
		DefaultYears:       defaults.Years,
		DefaultIndustry:    defaults.Industry,
		DefaultRegion:      defaults.Region,
		DefaultRiskProfile: defaults.RiskProfile,
		DefaultInsurance:   defaults.Insurance,
		DefaultFTESalary:   defaults.AvgFTESalary,
		DefaultBaseline:    defaults.BaselineVendorID,
		RecentProjects:     []string{},
		Theme:              "system",
	}
}

// ApplyToScenario copies the saved defaults into s. Zero values are skipped so
// a partially written config file never produces an invalid scenario.
func (c AppConfig) ApplyToScenario(s *Scenario) {
	if c.DefaultDevices > 0 {
		s.Devices = c.DefaultDevices
	}
	if c.DefaultYears > 0 {
		s.Years = c.DefaultYears
	}
	if c.DefaultIndustry != "" {
		s.Industry = c.DefaultIndustry
	}
	if c.DefaultRegion != "" {
		s.Region = c.DefaultRegion
	}
	if c.DefaultRiskProfile != "" {
		s.RiskProfile = c.DefaultRiskProfile
	}
	if c.DefaultInsurance != "" {
		s.Insurance = c.DefaultInsurance
	}
	if c.DefaultFTESalary > 0 {
		s.AvgFTESalary = c.DefaultFTESalary
	}
	if c.DefaultBaseline != "" {
		s.BaselineVendorID = c.DefaultBaseline
	}
}

// AddRecentProject moves path to the front of the recent list, dropping
// duplicates and trimming the list to MaxRecentProjects.
func (c *AppConfig) AddRecentProject(path string) {
	recent := make([]string, 0, MaxRecentProjects)
	recent = append(recent, path)
	for _, p := range c.RecentProjects {
		if p == path {
			continue
		}
		if len(recent) == MaxRecentProjects {
			break
		}
		recent = append(recent, p)
	}
	c.RecentProjects = recent
}
