package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/tcocompare/internal/model"
)

// DefaultTemplatePath returns the default file path for the templates store.
// This is located at ~/.tcocompare/templates.json.
func DefaultTemplatePath() string {
	return filepath.Join(DefaultConfigDir(), "templates.json")
}

// SaveTemplates writes the user templates of store to a JSON file.
func SaveTemplates(path string, store model.TemplateStore) error {
	return writeJSON(path, store)
}

// LoadTemplates reads a template store from a JSON file.
// If the file does not exist, returns an empty store. Built-in entries
// found in the file are dropped, since the store always supplies them.
func LoadTemplates(path string) (model.TemplateStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewTemplateStore(), nil
		}
		return model.TemplateStore{}, err
	}
	var raw model.TemplateStore
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.TemplateStore{}, err
	}
	store := model.NewTemplateStore()
	for _, t := range raw.Templates {
		if t.Builtin {
			continue
		}
		store.Add(t)
	}
	return store, nil
}

// LoadDefaultTemplates loads templates from the default path.
func LoadDefaultTemplates() (model.TemplateStore, error) {
	return LoadTemplates(DefaultTemplatePath())
}

// SaveDefaultTemplates saves templates to the default path.
func SaveDefaultTemplates(store model.TemplateStore) error {
	return SaveTemplates(DefaultTemplatePath(), store)
}
