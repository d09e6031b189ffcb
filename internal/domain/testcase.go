package domain

import "time"

// TestCaseStatus is the lifecycle status of a test case.
type TestCaseStatus string

const (
	TestCaseStatusPending TestCaseStatus = "pending"
	TestCaseStatusPassed  TestCaseStatus = "passed"
	TestCaseStatusFailed  TestCaseStatus = "failed"
	TestCaseStatusInvalid TestCaseStatus = "invalid"
)

// TestCase specifies a single test: inputs, expected result, validity flag.
// TestCase objects are owned by the registry; the owning Module only holds
// the id.
type TestCase struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	ModuleID         string         `json:"module_id"`
	TestType         string         `json:"test_type"`
	InputData        map[string]any `json:"input_data"`
	ExpectedResult   any            `json:"expected_result"`
	Status           TestCaseStatus `json:"status"`
	CreatedAt        time.Time      `json:"created_at"`
	LastModified     time.Time      `json:"last_modified"`
	Valid            bool           `json:"valid"`
	ValidationReason string         `json:"validation_reason,omitempty"`
}
