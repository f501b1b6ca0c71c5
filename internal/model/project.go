package model

import "time"

// ProjectExtension is the file extension of saved projects.
const ProjectExtension = ".tco.json"

// Project is what the desktop app saves: one scenario, free-form notes and
// the last computed comparison.
type Project struct {
	Name      string      `json:"name"`
	Scenario  Scenario    `json:"scenario"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Result    *Comparison `json:"result,omitempty"`
}

// NewProject returns an untitled project with the default scenario.
func NewProject() Project {
	now := time.Now().UTC()
	return Project{
		Name:      "Untitled",
		Scenario:  NewScenario("Untitled"),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
