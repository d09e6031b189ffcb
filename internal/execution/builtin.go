package execution

import (
	"fmt"

	"trp/internal/domain"
)

// PassthroughRunner is the built-in delegation placeholder used when no
// real test-running capability has been registered. It returns the "value"
// entry of the case's input data, so a plan can express trivially checkable
// cases without an external harness.
type PassthroughRunner struct{}

// NewPassthroughRunner creates a PassthroughRunner.
func NewPassthroughRunner() *PassthroughRunner {
	return &PassthroughRunner{}
}

// Run returns input_data["value"], or an error when the case carries none.
func (PassthroughRunner) Run(tc *domain.TestCase) (any, error) {
	if tc.InputData == nil {
		return nil, fmt.Errorf("test case %s has no input data", tc.ID)
	}
	value, ok := tc.InputData["value"]
	if !ok {
		return nil, fmt.Errorf("test case %s input has no 'value' entry", tc.ID)
	}
	return value, nil
}

// DefaultRunnerSet builds a RunnerSet with the passthrough runner installed
// for unit and integration types and as the fallback. Real harnesses
// replace these registrations with their own runners.
func DefaultRunnerSet() *RunnerSet {
	passthrough := NewPassthroughRunner()
	rs := NewRunnerSet(passthrough)
	rs.Register(TestTypeUnit, passthrough)
	rs.Register(TestTypeIntegration, passthrough)
	return rs
}
