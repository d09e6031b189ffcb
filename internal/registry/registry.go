package registry

import (
	"time"

	"trp/internal/domain"
)

// Registry is the in-memory test case manager: modules and test cases keyed
// by id. Nothing here is persisted. The maps are owned by the Registry and
// created at construction; safe for single-threaded use only.
type Registry struct {
	modules map[string]*domain.Module
	cases   map[string]*domain.TestCase
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]*domain.Module),
		cases:   make(map[string]*domain.TestCase),
	}
}

// CreateModule registers a new module with a generated id.
func (r *Registry) CreateModule(name, description, path string, dependencies []string) *domain.Module {
	deps := make([]string, len(dependencies))
	copy(deps, dependencies)
	m := &domain.Module{
		ID:           domain.NewID(domain.ModuleIDPrefix),
		Name:         name,
		Description:  description,
		Path:         path,
		Dependencies: deps,
		TestCaseIDs:  []string{},
		LastUpdated:  time.Now().UTC(),
	}
	r.modules[m.ID] = m
	return m
}

// CreateTestCase registers a new test case with a generated id. When
// moduleID resolves to a registered module the new id is appended to that
// module's TestCaseIDs; when it doesn't, creation still succeeds and the
// link step is silently skipped.
func (r *Registry) CreateTestCase(
	name, description, moduleID, testType string,
	inputData map[string]any,
	expectedResult any,
	valid bool,
	validationReason string,
) *domain.TestCase {
	now := time.Now().UTC()
	status := domain.TestCaseStatusPending
	if !valid {
		status = domain.TestCaseStatusInvalid
	}
	tc := &domain.TestCase{
		ID:               domain.NewID(domain.TestCaseIDPrefix),
		Name:             name,
		Description:      description,
		ModuleID:         moduleID,
		TestType:         testType,
		InputData:        inputData,
		ExpectedResult:   expectedResult,
		Status:           status,
		CreatedAt:        now,
		LastModified:     now,
		Valid:            valid,
		ValidationReason: validationReason,
	}
	r.cases[tc.ID] = tc

	if m, ok := r.modules[moduleID]; ok {
		m.TestCaseIDs = append(m.TestCaseIDs, tc.ID)
		m.LastUpdated = now
	}
	return tc
}

// GetTestCase returns the test case with the given id, or nil.
func (r *Registry) GetTestCase(id string) *domain.TestCase {
	return r.cases[id]
}

// GetModule returns the module with the given id, or nil.
func (r *Registry) GetModule(id string) *domain.Module {
	return r.modules[id]
}

// GetTestCasesByModule returns every registered test case whose ModuleID
// matches.
func (r *Registry) GetTestCasesByModule(moduleID string) []*domain.TestCase {
	var out []*domain.TestCase
	for _, tc := range r.cases {
		if tc.ModuleID == moduleID {
			out = append(out, tc)
		}
	}
	return out
}

// GetAllModules returns every registered module.
func (r *Registry) GetAllModules() []*domain.Module {
	out := make([]*domain.Module, 0, len(r.modules))
	for _, m := range r.modules {
		out = append(out, m)
	}
	return out
}

// GetAllTestCases returns every registered test case.
func (r *Registry) GetAllTestCases() []*domain.TestCase {
	out := make([]*domain.TestCase, 0, len(r.cases))
	for _, tc := range r.cases {
		out = append(out, tc)
	}
	return out
}

// UpdateTestCase applies field overrides to an existing test case and bumps
// LastModified. Only known fields are applied; unknown keys are ignored.
// Returns false when the id is not registered.
func (r *Registry) UpdateTestCase(id string, overrides map[string]any) bool {
	tc, ok := r.cases[id]
	if !ok {
		return false
	}
	for key, value := range overrides {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				tc.Name = v
			}
		case "description":
			if v, ok := value.(string); ok {
				tc.Description = v
			}
		case "module_id":
			if v, ok := value.(string); ok {
				tc.ModuleID = v
			}
		case "test_type":
			if v, ok := value.(string); ok {
				tc.TestType = v
			}
		case "input_data":
			if v, ok := value.(map[string]any); ok {
				tc.InputData = v
			}
		case "expected_result":
			tc.ExpectedResult = value
		case "status":
			switch v := value.(type) {
			case domain.TestCaseStatus:
				tc.Status = v
			case string:
				tc.Status = domain.TestCaseStatus(v)
			}
		case "valid":
			if v, ok := value.(bool); ok {
				tc.Valid = v
			}
		case "validation_reason":
			if v, ok := value.(string); ok {
				tc.ValidationReason = v
			}
		}
	}
	tc.LastModified = time.Now().UTC()
	return true
}

// DeleteTestCase removes a test case from the registry and, when linked,
// from its owning module's TestCaseIDs. Returns false when the id is not
// registered.
func (r *Registry) DeleteTestCase(id string) bool {
	tc, ok := r.cases[id]
	if !ok {
		return false
	}
	delete(r.cases, id)

	if m, linked := r.modules[tc.ModuleID]; linked {
		for i, caseID := range m.TestCaseIDs {
			if caseID == id {
				m.TestCaseIDs = append(m.TestCaseIDs[:i], m.TestCaseIDs[i+1:]...)
				m.LastUpdated = time.Now().UTC()
				break
			}
		}
	}
	return true
}
