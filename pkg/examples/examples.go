// Package examples holds starter collections that `shuttle init` writes
// into a directory: a config naming the identity and columns, and an
// available collection to pick from.
package examples

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/shuttle/pkg/models"
	"github.com/pluqqy/shuttle/pkg/store"
)

// ConfigFilename is the config file written by Install
const ConfigFilename = "shuttle.yaml"

// ErrExists is returned when Install would overwrite a file without force
var ErrExists = errors.New("file already exists")

// ExampleSet is one starter: its settings and available items
type ExampleSet struct {
	Category    string
	Name        string
	Description string
	Identity    models.IdentitySettings
	Columns     []models.Column
	UI          models.UISettings
	Items       []models.Record
}

// starterConfig is the subset of settings a starter writes
type starterConfig struct {
	Identity models.IdentitySettings `yaml:"identity"`
	Columns  []models.Column         `yaml:"columns"`
	UI       models.UISettings       `yaml:"ui"`
}

var registry = map[string]func() ExampleSet{
	"people":   peopleExample,
	"packages": packagesExample,
}

// Categories returns the known categories, sorted
func Categories() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetExamples returns the sets for category, or every set for "all".
// Unknown categories give an empty slice.
func GetExamples(category string) []ExampleSet {
	if category == "all" {
		var all []ExampleSet
		for _, name := range Categories() {
			all = append(all, GetExamples(name)...)
		}
		return all
	}

	build, ok := registry[category]
	if !ok {
		return []ExampleSet{}
	}
	set := build()
	set.Category = category
	return []ExampleSet{set}
}

// Install writes the set's config and its available collection into dir.
// format picks the collection file type ("yaml", "json" or "toml"). It
// returns the paths written.
func Install(set ExampleSet, dir, format string, force bool) (configPath, availablePath string, err error) {
	configPath = filepath.Join(dir, ConfigFilename)
	availablePath = filepath.Join(dir, "available."+format)

	if _, err := store.FormatOf(availablePath); err != nil {
		return "", "", err
	}

	if !force {
		for _, p := range []string{configPath, availablePath} {
			if _, err := os.Stat(p); err == nil {
				return "", "", fmt.Errorf("%w: %s", ErrExists, p)
			}
		}
	}

	content, err := yaml.Marshal(starterConfig{
		Identity: set.Identity,
		Columns:  set.Columns,
		UI:       set.UI,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write config: %w", err)
	}

	if err := store.Save(availablePath, set.Items); err != nil {
		return "", "", err
	}
	return configPath, availablePath, nil
}
