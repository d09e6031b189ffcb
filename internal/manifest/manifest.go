package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"trp/internal/identify"
	"trp/internal/registry"
)

// Plan is a declarative test plan: modules and the test cases they own.
type Plan struct {
	Modules []ModuleSpec `yaml:"modules"`
}

// ModuleSpec declares one module. Dependencies reference other modules in
// the same plan by name.
type ModuleSpec struct {
	Name         string         `yaml:"name"`
	Description  string         `yaml:"description"`
	Path         string         `yaml:"path"`
	Dependencies []string       `yaml:"dependencies"`
	TestCases    []TestCaseSpec `yaml:"test_cases"`
}

// TestCaseSpec declares one test case.
type TestCaseSpec struct {
	Name             string         `yaml:"name"`
	Description      string         `yaml:"description"`
	Type             string         `yaml:"type"`
	Input            map[string]any `yaml:"input"`
	Expected         any            `yaml:"expected"`
	Valid            *bool          `yaml:"valid"`
	ValidationReason string         `yaml:"validation_reason"`
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse plan file: %w", err)
	}
	if err := plan.validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (p *Plan) validate() error {
	if len(p.Modules) == 0 {
		return fmt.Errorf("plan declares no modules")
	}
	seen := make(map[string]bool)
	for _, m := range p.Modules {
		if m.Name == "" {
			return fmt.Errorf("module with empty name")
		}
		if seen[m.Name] {
			return fmt.Errorf("duplicate module name %q", m.Name)
		}
		seen[m.Name] = true
		for _, tc := range m.TestCases {
			if tc.Name == "" {
				return fmt.Errorf("module %q: test case with empty name", m.Name)
			}
		}
	}
	for _, m := range p.Modules {
		for _, dep := range m.Dependencies {
			if !seen[dep] {
				return fmt.Errorf("module %q depends on unknown module %q", m.Name, dep)
			}
		}
	}
	return nil
}

// Apply registers the plan's modules and test cases with the registry and
// the module identifier. It returns the created test case ids in
// declaration order.
func Apply(plan *Plan, reg *registry.Registry, identifier *identify.Identifier) []string {
	idByName := make(map[string]string, len(plan.Modules))
	var caseIDs []string

	// First pass so forward dependency references resolve.
	for _, spec := range plan.Modules {
		m := reg.CreateModule(spec.Name, spec.Description, spec.Path, nil)
		idByName[spec.Name] = m.ID
		identifier.AddModule(m)
	}

	for _, spec := range plan.Modules {
		m := reg.GetModule(idByName[spec.Name])
		for _, dep := range spec.Dependencies {
			m.Dependencies = append(m.Dependencies, idByName[dep])
		}

		for _, tcSpec := range spec.TestCases {
			valid := true
			if tcSpec.Valid != nil {
				valid = *tcSpec.Valid
			}
			tc := reg.CreateTestCase(
				tcSpec.Name, tcSpec.Description, m.ID, tcSpec.Type,
				tcSpec.Input, tcSpec.Expected, valid, tcSpec.ValidationReason,
			)
			caseIDs = append(caseIDs, tc.ID)
		}
	}
	return caseIDs
}

// FilterByName narrows registered test case ids to those whose name matches
// a wildcard pattern ("*" and "?" supported, bare substrings also match).
func FilterByName(reg *registry.Registry, ids []string, pattern string) []string {
	if pattern == "" {
		return ids
	}
	var filtered []string
	for _, id := range ids {
		tc := reg.GetTestCase(id)
		if tc == nil {
			continue
		}
		if matchName(tc.Name, pattern) {
			filtered = append(filtered, id)
		}
	}
	return filtered
}
