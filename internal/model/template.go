package model

import (
	"time"

	"github.com/google/uuid"
)

// ScenarioTemplate is a reusable scenario preset, e.g. an industry profile.
// Templates never carry results.
type ScenarioTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	Builtin     bool     `json:"builtin,omitempty"`
	Scenario    Scenario `json:"scenario"`
}

// NewScenarioTemplate captures a copy of s under a new template ID.
func NewScenarioTemplate(name, description string, s Scenario) ScenarioTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return ScenarioTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Scenario:    s.Clone(),
	}
}

// ToScenario creates an independent scenario from the template with a fresh ID.
func (t ScenarioTemplate) ToScenario(name string) Scenario {
	s := t.Scenario.Clone()
	s.ID = uuid.New().String()[:8]
	s.Name = name
	return s
}

// BuiltinTemplates returns the industry presets shipped with the application.
func BuiltinTemplates() []ScenarioTemplate {
	preset := func(id, name, desc string, devices, years int, industry, risk, insurance string, vendors ...string) ScenarioTemplate {
		s := NewScenario(name)
		s.ID = id
		s.Devices = devices
		s.Years = years
		s.Industry = industry
		s.RiskProfile = risk
		s.Insurance = insurance
		if len(vendors) > 0 {
			s.VendorIDs = append([]string{s.BaselineVendorID}, vendors...)
		}
		return ScenarioTemplate{
			ID:          "builtin-" + id,
			Name:        name,
			Description: desc,
			Builtin:     true,
			Scenario:    s,
		}
	}
	return []ScenarioTemplate{
		preset("healthcare-mid", "Healthcare mid-market", "Hospital group with medical IoT and HIPAA scope",
			5000, 3, "healthcare", "regulated", "comprehensive", "cisco_ise", "forescout", "aruba_clearpass"),
		preset("finance-enterprise", "Financial services enterprise", "Bank with PCI DSS and SOX controls",
			10000, 5, "finance", "high", "comprehensive", "cisco_ise", "aruba_clearpass", "fortinac"),
		preset("retail-chain", "Retail chain", "Distributed stores with point-of-sale devices",
			2500, 3, "retail", "elevated", "standard", "fortinac", "extreme_control", "foxpass"),
		preset("education-campus", "Education campus", "University campus with BYOD",
			10000, 3, "education", "standard", "basic", "aruba_clearpass", "packetfence", "securew2"),
		preset("government-agency", "Government agency", "Agency with FedRAMP and CMMC obligations",
			2500, 5, "government", "regulated", "standard", "cisco_ise", "forescout"),
		preset("manufacturing-ot", "Manufacturing with OT", "Plants mixing IT and OT networks",
			5000, 5, "manufacturing", "high", "standard", "forescout", "cisco_ise", "fortinac"),
		preset("tech-startup", "Technology startup", "Cloud-first company with remote staff",
			500, 3, "technology", "standard", "basic", "foxpass", "securew2", "microsoft_nps"),
	}
}

// TemplateStore holds the user's saved templates. Built-in presets are not
// persisted; All and the lookups include them.
type TemplateStore struct {
	Templates []ScenarioTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []ScenarioTemplate{},
	}
}

// Add adds a user template to the store.
func (ts *TemplateStore) Add(t ScenarioTemplate) {
	t.Builtin = false
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a user template by ID. Built-in templates cannot be removed.
// Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// All returns the built-in templates followed by the user's.
func (ts *TemplateStore) All() []ScenarioTemplate {
	out := BuiltinTemplates()
	return append(out, ts.Templates...)
}

// FindByID returns the template with the given ID, built-in or user.
func (ts *TemplateStore) FindByID(id string) (ScenarioTemplate, bool) {
	for _, t := range ts.All() {
		if t.ID == id {
			return t, true
		}
	}
	return ScenarioTemplate{}, false
}

// FindByName returns the first template with the given name.
func (ts *TemplateStore) FindByName(name string) (ScenarioTemplate, bool) {
	for _, t := range ts.All() {
		if t.Name == name {
			return t, true
		}
	}
	return ScenarioTemplate{}, false
}

// Names returns template names for UI dropdowns, built-ins first.
func (ts *TemplateStore) Names() []string {
	all := ts.All()
	names := make([]string, len(all))
	for i, t := range all {
		names[i] = t.Name
	}
	return names
}
