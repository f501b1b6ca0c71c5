package project

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"

	"github.com/piwi3910/tcocompare/internal/model"
)

// ParseScenarioYAML decodes a scenario document. Omitted fields keep the
// NewScenario defaults and unknown keys are rejected.
func ParseScenarioYAML(data []byte) (model.Scenario, error) {
	s := model.NewScenario("")
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return model.Scenario{}, goerr.Wrap(err, "failed to parse scenario YAML")
	}
	if err := s.Validate(); err != nil {
		return model.Scenario{}, err
	}
	return s, nil
}

// LoadScenarioYAML reads a scenario file. A scenario without a name is named
// after the file.
func LoadScenarioYAML(path string) (model.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Scenario{}, goerr.Wrap(err, "failed to read scenario file", goerr.V("path", path))
	}
	s, err := ParseScenarioYAML(data)
	if err != nil {
		return model.Scenario{}, goerr.Wrap(err, "invalid scenario file", goerr.V("path", path))
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// SaveScenarioYAML writes s to path as YAML.
func SaveScenarioYAML(path string, s model.Scenario) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return goerr.Wrap(err, "failed to encode scenario", goerr.V("path", path))
	}
	if err := enc.Close(); err != nil {
		return goerr.Wrap(err, "failed to encode scenario", goerr.V("path", path))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", path))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return goerr.Wrap(err, "failed to write scenario file", goerr.V("path", path))
	}
	return nil
}
