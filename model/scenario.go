package model

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Laisky/errors/v2"
)

// ScenarioExt is the extension of scenario fixture files.
const ScenarioExt = ".json"

// Scenario is a stored generation input loaded from a fixture file.
type Scenario struct {
	Name    string `json:"name"`
	Task    string `json:"task"`
	Context string `json:"context"`
	Notes   string `json:"notes"`
}

// LoadScenario reads a fixture. A missing name defaults to the file name
// without its extension; other missing fields stay empty.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenario %q", path)
	}

	scenario := new(Scenario)
	if err = json.Unmarshal(raw, scenario); err != nil {
		return nil, errors.Wrapf(err, "parse scenario %q", path)
	}

	if scenario.Name == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), ScenarioExt)
	}

	return scenario, nil
}

// ListScenarioFiles returns the fixture paths in dir, sorted by file name.
// A missing dir is reported as an error wrapping fs.ErrNotExist.
func ListScenarioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenarios dir %q", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ScenarioExt) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	return paths, nil
}

// ListScenarios loads every fixture in dir. A missing dir yields an empty
// list; any unreadable or malformed fixture fails the whole listing.
func ListScenarios(dir string) ([]Scenario, error) {
	paths, err := ListScenarioFiles(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Scenario{}, nil
		}
		return nil, err
	}

	scenarios := make([]Scenario, 0, len(paths))
	for _, path := range paths {
		scenario, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, *scenario)
	}

	return scenarios, nil
}

// ResolveScenarioPaths maps scenario identifiers to fixture paths. Without
// identifiers every fixture in dir is returned. Identifiers get the .json
// extension appended when absent and are resolved against dir unless absolute.
func ResolveScenarioPaths(dir string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return ListScenarioFiles(dir)
	}

	paths := make([]string, 0, len(ids))
	for _, id := range ids {
		if !strings.HasSuffix(id, ScenarioExt) {
			id += ScenarioExt
		}
		if !filepath.IsAbs(id) {
			id = filepath.Join(dir, id)
		}
		paths = append(paths, id)
	}

	return paths, nil
}
