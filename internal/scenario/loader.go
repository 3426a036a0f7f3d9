package scenario

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"navstack/pkg/logging"
)

// Load reads scenarios from a YAML file or, for a directory, from every
// YAML file beneath it.
func Load(path string) ([]Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scenario path does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to stat scenario path: %w", err)
	}

	if !info.IsDir() {
		sc, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		return []Scenario{sc}, nil
	}

	var scenarios []Scenario
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAMLFile(p) {
			return nil
		}
		sc, err := loadFile(p)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, sc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", path, err)
	}

	logging.Debug("Scenario", "Loaded %d scenarios from %s", len(scenarios), path)
	return scenarios, nil
}

// loadFile reads and validates a single scenario file.
func loadFile(path string) (Scenario, error) {
	var sc Scenario

	content, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &sc); err != nil {
		return sc, fmt.Errorf("failed to parse YAML in %s: %w", path, err)
	}
	if err := validate(sc); err != nil {
		return sc, fmt.Errorf("invalid scenario in %s: %w", path, err)
	}
	return sc, nil
}

// validate checks the fields the runner depends on.
func validate(sc Scenario) error {
	if sc.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("scenario must have at least one step")
	}

	for i, step := range sc.Steps {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func validateStep(step Step) error {
	if step.ID == "" {
		return fmt.Errorf("step id is required")
	}
	if step.Container == "" {
		return fmt.Errorf("step container is required")
	}

	switch step.Op {
	case OpPush, OpBringToFront:
		if step.Path == "" {
			return fmt.Errorf("op %s requires a path", step.Op)
		}
	case OpPop:
	case "":
		return fmt.Errorf("step op is required")
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}

	if step.Pooling != "" && step.Pooling != "default" && step.Pooling != "enabled" && step.Pooling != "disabled" {
		return fmt.Errorf("unknown pooling policy %q", step.Pooling)
	}
	return nil
}

// FilterByTag returns the scenarios carrying the given tag.
func FilterByTag(scenarios []Scenario, tag string) []Scenario {
	var filtered []Scenario
	for _, sc := range scenarios {
		for _, t := range sc.Tags {
			if t == tag {
				filtered = append(filtered, sc)
				break
			}
		}
	}
	return filtered
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
