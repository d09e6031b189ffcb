package domain

import "time"

// Severity classifies an ErrorMessage.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ErrorMessage is a severity-tagged diagnostic note attached to a
// TestResult. Write-once.
type ErrorMessage struct {
	ID           string    `json:"id"`
	TestResultID string    `json:"test_result_id"`
	Message      string    `json:"message"`
	Severity     Severity  `json:"severity"`
	SuggestedFix string    `json:"suggested_fix,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
