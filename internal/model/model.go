package model

import (
	"errors"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// ErrInvalidScenario is returned when a Scenario fails validation.
var ErrInvalidScenario = errors.New("invalid scenario")

const (
	MinYears = 1
	MaxYears = 10
)

// Priority names one dimension of the vendor recommendation score.
type Priority string

const (
	PriorityCost       Priority = "cost"
	PrioritySecurity   Priority = "security"
	PriorityCompliance Priority = "compliance"
	PriorityOperations Priority = "operations"
)

// AllPriorities lists every recognised priority in scoring order.
func AllPriorities() []Priority {
	return []Priority{PriorityCost, PrioritySecurity, PriorityCompliance, PriorityOperations}
}

func (p Priority) valid() bool {
	for _, known := range AllPriorities() {
		if p == known {
			return true
		}
	}
	return false
}

// Scenario holds every organisation-side input of a TCO comparison.
type Scenario struct {
	ID               string     `json:"id" yaml:"id"`
	Name             string     `json:"name" yaml:"name"`
	Devices          int        `json:"devices" yaml:"devices"`
	Years            int        `json:"years" yaml:"years"`
	Industry         string     `json:"industry" yaml:"industry"`
	Region           string     `json:"region" yaml:"region"`
	RiskProfile      string     `json:"risk_profile" yaml:"risk_profile"`
	Insurance        string     `json:"insurance" yaml:"insurance"`
	AvgFTESalary     float64    `json:"avg_fte_salary" yaml:"avg_fte_salary"` // 0 = use the region average
	VendorIDs        []string   `json:"vendor_ids" yaml:"vendors"`
	BaselineVendorID string     `json:"baseline_vendor_id" yaml:"baseline"`
	Priorities       []Priority `json:"priorities,omitempty" yaml:"priorities,omitempty"`
}

// NewScenario returns a scenario populated with the default mid-market
// technology setup.
func NewScenario(name string) Scenario {
	return Scenario{
		ID:               uuid.New().String()[:8],
		Name:             name,
		Devices:          2500,
		Years:            3,
		Industry:         "technology",
		Region:           "north_america",
		RiskProfile:      "standard",
		Insurance:        "standard",
		BaselineVendorID: "portnox",
		VendorIDs:        []string{"portnox", "cisco_ise", "aruba_clearpass", "forescout"},
	}
}

// Clone returns a deep copy of the scenario.
func (s Scenario) Clone() Scenario {
	out := s
	out.VendorIDs = append([]string(nil), s.VendorIDs...)
	if s.Priorities != nil {
		out.Priorities = append([]Priority(nil), s.Priorities...)
	}
	return out
}

// Validate checks the numeric ranges the cost formula depends on.
func (s Scenario) Validate() error {
	if s.Devices < 1 {
		return goerr.Wrap(ErrInvalidScenario, "devices must be at least 1",
			goerr.V("field", "devices"), goerr.V("value", s.Devices))
	}
	if s.Years < MinYears || s.Years > MaxYears {
		return goerr.Wrap(ErrInvalidScenario, "years must be between 1 and 10",
			goerr.V("field", "years"), goerr.V("value", s.Years))
	}
	if s.AvgFTESalary < 0 {
		return goerr.Wrap(ErrInvalidScenario, "average FTE salary must not be negative",
			goerr.V("field", "avg_fte_salary"), goerr.V("value", s.AvgFTESalary))
	}
	if len(s.VendorIDs) == 0 {
		return goerr.Wrap(ErrInvalidScenario, "at least one vendor is required",
			goerr.V("field", "vendor_ids"))
	}
	for _, p := range s.Priorities {
		if !p.valid() {
			return goerr.Wrap(ErrInvalidScenario, "unknown priority",
				goerr.V("field", "priorities"), goerr.V("value", string(p)))
		}
	}
	return nil
}

// AllVendorIDs returns the baseline followed by every other selected vendor,
// without duplicates.
func (s Scenario) AllVendorIDs() []string {
	seen := make(map[string]bool, len(s.VendorIDs)+1)
	var ids []string
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}
	add(s.BaselineVendorID)
	for _, id := range s.VendorIDs {
		add(id)
	}
	return ids
}
