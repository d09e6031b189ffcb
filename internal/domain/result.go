package domain

// ResultStatus is the outcome of one execution attempt. Exactly two values.
type ResultStatus string

const (
	ResultStatusPassed ResultStatus = "passed"
	ResultStatusFailed ResultStatus = "failed"
)

// TestResult is the outcome of one execution attempt of a TestCase.
// Write-once: built by the executor and never mutated after it is persisted.
type TestResult struct {
	ID            string       `json:"id"`
	TestCaseID    string       `json:"test_case_id"`
	ModuleID      string       `json:"module_id"`
	Status        ResultStatus `json:"status"`
	Timestamp     Time         `json:"timestamp"`
	ExecutionTime float64      `json:"execution_time"`
	ErrorDetails  string       `json:"error_details,omitempty"`
	Output        string       `json:"output,omitempty"`
	Diagnosis     string       `json:"diagnosis,omitempty"`
}
