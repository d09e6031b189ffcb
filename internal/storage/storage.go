package storage

import "trp/internal/domain"

// Storage persists test results and error messages, one JSON document per
// record. Store operations report success as a boolean and never return an
// error: an I/O or serialization failure is logged and swallowed so a
// bookkeeping hiccup can't take down a test run. Load operations return nil
// for missing or malformed records.
type Storage interface {
	StoreTestResult(result *domain.TestResult) bool
	LoadTestResult(id string) *domain.TestResult
	GetAllTestResults() []domain.TestResult
	GetTestResultsByModule(moduleID string) []domain.TestResult

	StoreErrorMessage(msg *domain.ErrorMessage) bool
	LoadErrorMessage(id string) *domain.ErrorMessage
	GetErrorMessagesByResult(testResultID string) []domain.ErrorMessage
}

// Document kinds. Every stored document carries an explicit kind tag;
// documents written by older tooling lack it and are classified by the
// presence of a test_case_id field instead.
const (
	KindTestResult   = "result"
	KindErrorMessage = "error"
)
