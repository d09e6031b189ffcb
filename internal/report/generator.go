package report

import (
	"fmt"
	"strings"
	"time"

	"trp/internal/domain"
	"trp/internal/identify"
	"trp/internal/storage"
)

// Generator composes ErrorMessage records and diagnostic reports, persisting
// the records through the storage manager.
type Generator struct {
	storage    storage.Storage
	identifier *identify.Identifier
}

// NewGenerator creates a Generator.
func NewGenerator(st storage.Storage, identifier *identify.Identifier) *Generator {
	return &Generator{storage: st, identifier: identifier}
}

// GenerateErrorMessage builds an ErrorMessage and persists it. The record is
// always returned; a storage failure is surfaced as the error.
func (g *Generator) GenerateErrorMessage(
	testResultID, message string,
	severity domain.Severity,
	suggestedFix string,
) (*domain.ErrorMessage, error) {
	if severity == "" {
		severity = domain.SeverityError
	}
	msg := &domain.ErrorMessage{
		ID:           domain.NewID(domain.ErrorMessageIDPrefix),
		TestResultID: testResultID,
		Message:      message,
		Severity:     severity,
		SuggestedFix: suggestedFix,
		CreatedAt:    time.Now().UTC(),
	}
	if !g.storage.StoreErrorMessage(msg) {
		return msg, fmt.Errorf("store error message %s: storage failure", msg.ID)
	}
	return msg, nil
}

// GenerateErrorForTestResult composes a "[<type>] <details>" message for a
// result and persists it.
func (g *Generator) GenerateErrorForTestResult(
	result *domain.TestResult,
	errorType, errorDetails, suggestedFix string,
) (*domain.ErrorMessage, error) {
	message := fmt.Sprintf("[%s] %s", errorType, errorDetails)
	return g.GenerateErrorMessage(result.ID, message, domain.SeverityError, suggestedFix)
}

// GenerateDetailedReport produces the structured multi-line failure report
// for a result. The "Test Case ID" line carries the result's own id; report
// consumers key on it to fetch the full record.
func (g *Generator) GenerateDetailedReport(result *domain.TestResult) string {
	moduleName := g.resolveModuleName(result.ModuleID)
	details := result.ErrorDetails
	if details == "" {
		details = "Unknown error"
	}
	diagnosis := result.Diagnosis
	if diagnosis == "" {
		diagnosis = "No diagnosis available"
	}

	var b strings.Builder
	b.WriteString("Test Failure Report\n")
	b.WriteString(strings.Repeat("=", len("Test Failure Report")) + "\n")
	fmt.Fprintf(&b, "Test Case ID: %s\n", result.ID)
	fmt.Fprintf(&b, "Module: %s\n", moduleName)
	fmt.Fprintf(&b, "Error type: %s\n", details)
	fmt.Fprintf(&b, "Root cause analysis: %s\n", diagnosis)
	b.WriteString("Recommended actions:\n")
	for _, action := range g.suggestActions(result) {
		fmt.Fprintf(&b, "  - %s\n", action)
	}
	return b.String()
}

// resolveModuleName prefers the registered module's name and falls back to
// the synthesized placeholder's.
func (g *Generator) resolveModuleName(moduleID string) string {
	if m := g.identifier.GetModuleByID(moduleID); m != nil {
		return m.Name
	}
	return identify.PlaceholderModule(moduleID).Name
}

// suggestActions derives follow-up suggestions from the failure content.
func (g *Generator) suggestActions(result *domain.TestResult) []string {
	actions := []string{
		fmt.Sprintf("Re-run test case '%s' in isolation to confirm the failure", result.TestCaseID),
	}
	if strings.Contains(result.Diagnosis, "Expected") {
		actions = append(actions, "Verify the expected result is still correct for the current behavior")
	}
	lower := strings.ToLower(result.ErrorDetails)
	switch {
	case strings.Contains(lower, "timeout"):
		actions = append(actions, "Check for slow dependencies or raise the test timeout")
	case strings.Contains(lower, "panic"), strings.Contains(lower, "nil"):
		actions = append(actions, "Inspect the stack trace for unguarded nil access")
	}
	actions = append(actions, fmt.Sprintf("Review recent changes to module '%s'", result.ModuleID))
	return actions
}
