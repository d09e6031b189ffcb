package failure

import (
	"fmt"
	"strings"

	"trp/internal/domain"
	"trp/internal/identify"
)

// Record is one detected failure, attributed to its test case and module.
type Record struct {
	TestResultID string      `json:"test_result_id"`
	TestCaseID   string      `json:"test_case_id"`
	ModuleID     string      `json:"module_id"`
	Timestamp    domain.Time `json:"timestamp"`
	ErrorDetails string      `json:"error_details,omitempty"`
	Diagnosis    string      `json:"diagnosis,omitempty"`
}

// Detector inspects test results, flags failures and keeps an append-only,
// process-lifetime log of everything it has flagged. The log is never
// persisted.
type Detector struct {
	failures []Record
}

// NewDetector creates a Detector with an empty failure log.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectFailure returns nil unless the result failed. For a failed result
// it builds a Record, appends it to the failure log and returns it.
func (d *Detector) DetectFailure(result *domain.TestResult) *Record {
	if result.Status != domain.ResultStatusFailed {
		return nil
	}
	rec := Record{
		TestResultID: result.ID,
		TestCaseID:   result.TestCaseID,
		ModuleID:     result.ModuleID,
		Timestamp:    result.Timestamp,
		ErrorDetails: result.ErrorDetails,
		Diagnosis:    result.Diagnosis,
	}
	d.failures = append(d.failures, rec)
	return &rec
}

// Failures returns a copy of the process-lifetime failure log.
func (d *Detector) Failures() []Record {
	out := make([]Record, len(d.failures))
	copy(out, d.failures)
	return out
}

// GetModuleForFailure attributes a failed result to its owning module,
// synthesizing a placeholder via the shared resolver. Nil when the result
// did not fail.
func (d *Detector) GetModuleForFailure(result *domain.TestResult) *domain.Module {
	if result.Status != domain.ResultStatusFailed {
		return nil
	}
	return identify.PlaceholderModule(result.ModuleID)
}

// GenerateErrorMessage formats a brief diagnostic for a result. Passed
// results get a fixed no-op message; failed results get a multi-line
// summary.
func (d *Detector) GenerateErrorMessage(result *domain.TestResult) string {
	if result.Status == domain.ResultStatusPassed {
		return "Test passed - no error to report"
	}

	details := result.ErrorDetails
	if details == "" {
		details = "Unknown error"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Test '%s' failed in module '%s'\n", result.TestCaseID, result.ModuleID)
	fmt.Fprintf(&b, "Error: %s\n", details)
	fmt.Fprintf(&b, "Execution time: %.3fs\n", result.ExecutionTime)
	fmt.Fprintf(&b, "Timestamp: %s", result.Timestamp)
	if result.Diagnosis != "" {
		fmt.Fprintf(&b, "\nDiagnosis: %s", result.Diagnosis)
	}
	return b.String()
}
