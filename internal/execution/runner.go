package execution

import "trp/internal/domain"

// Runner is the externally supplied test-running capability. It receives a
// test case and returns the value the run produced, or an error describing
// why the run could not complete. The run body itself is not this core's
// concern.
type Runner interface {
	Run(tc *domain.TestCase) (any, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(tc *domain.TestCase) (any, error)

// Run calls f.
func (f RunnerFunc) Run(tc *domain.TestCase) (any, error) {
	return f(tc)
}

// Test type keys used to select a runner.
const (
	TestTypeUnit        = "unit"
	TestTypeIntegration = "integration"
)

// RunnerSet dispatches to a runner by test type. Types without a registered
// runner fall back to the default runner.
type RunnerSet struct {
	runners  map[string]Runner
	fallback Runner
}

// NewRunnerSet creates a RunnerSet with the given default runner.
func NewRunnerSet(fallback Runner) *RunnerSet {
	return &RunnerSet{
		runners:  make(map[string]Runner),
		fallback: fallback,
	}
}

// Register installs a runner for a test type, replacing any previous one.
func (rs *RunnerSet) Register(testType string, r Runner) {
	rs.runners[testType] = r
}

// runnerFor selects the runner for a test type.
func (rs *RunnerSet) runnerFor(testType string) Runner {
	if r, ok := rs.runners[testType]; ok {
		return r
	}
	return rs.fallback
}
