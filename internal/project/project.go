package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/piwi3910/tcocompare/internal/model"
)

// SaveProject writes p to path as JSON and refreshes UpdatedAt.
func SaveProject(path string, p *model.Project) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if err := writeJSON(path, p); err != nil {
		return goerr.Wrap(err, "failed to save project", goerr.V("path", path))
	}
	return nil
}

// LoadProject reads a project file. The stored scenario must be valid.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, goerr.Wrap(err, "failed to read project", goerr.V("path", path))
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return model.Project{}, goerr.Wrap(err, "failed to parse project", goerr.V("path", path))
	}
	if err := p.Scenario.Validate(); err != nil {
		return model.Project{}, goerr.Wrap(err, "project holds an invalid scenario", goerr.V("path", path))
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), model.ProjectExtension)
	}
	return p, nil
}
