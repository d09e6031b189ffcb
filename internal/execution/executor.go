package execution

import (
	"fmt"
	"reflect"
	"time"

	"trp/internal/domain"
	"trp/internal/logging"
	"trp/internal/registry"
	"trp/internal/storage"
)

// Progress receives per-case completion updates during batch execution.
type Progress interface {
	Update(passed, failed int)
	Finish()
}

// Executor orchestrates one test execution: registry lookup, delegated run,
// wall-clock timing, result construction and persistence. Fully synchronous;
// a delegated run is awaited to completion unconditionally.
type Executor struct {
	registry *registry.Registry
	storage  storage.Storage
	runners  *RunnerSet
	log      *logging.Logger
	progress Progress
}

// NewExecutor creates an Executor.
func NewExecutor(reg *registry.Registry, st storage.Storage, runners *RunnerSet, log *logging.Logger) *Executor {
	return &Executor{
		registry: reg,
		storage:  st,
		runners:  runners,
		log:      log,
	}
}

// SetProgress sets the progress reporter used by ExecuteTestCases.
func (e *Executor) SetProgress(p Progress) {
	e.progress = p
}

// ExecuteTestCase looks up a test case, delegates the run by test type,
// times it, builds a write-once TestResult and persists it. Returns nil
// when the registry does not know the id. A run error is caught, still
// timed and recorded as a failed result; it is never re-raised.
func (e *Executor) ExecuteTestCase(id string) *domain.TestResult {
	tc := e.registry.GetTestCase(id)
	if tc == nil {
		return nil
	}

	runner := e.runners.runnerFor(tc.TestType)
	start := time.Now()
	value, err := runner.Run(tc)
	elapsed := time.Since(start).Seconds()

	result := &domain.TestResult{
		ID:            domain.NewID(domain.TestResultIDPrefix),
		TestCaseID:    tc.ID,
		ModuleID:      tc.ModuleID,
		Timestamp:     domain.Now(),
		ExecutionTime: elapsed,
	}

	switch {
	case err != nil:
		result.Status = domain.ResultStatusFailed
		result.ErrorDetails = err.Error()
	case reflect.DeepEqual(value, tc.ExpectedResult):
		result.Status = domain.ResultStatusPassed
		result.Output = fmt.Sprintf("%v", value)
	default:
		result.Status = domain.ResultStatusFailed
		result.Output = fmt.Sprintf("%v", value)
		result.Diagnosis = fmt.Sprintf("Expected %v but got %v", tc.ExpectedResult, value)
	}

	if !e.storage.StoreTestResult(result) {
		e.log.Warn("test result not persisted", "id", result.ID, "test_case_id", tc.ID)
	}
	return result
}

// ExecuteTestCases runs every id and returns a map of id to result for each
// id that produced one. Unknown ids are simply absent from the map.
func (e *Executor) ExecuteTestCases(ids []string) map[string]*domain.TestResult {
	results := make(map[string]*domain.TestResult)
	passed, failed := 0, 0
	for _, id := range ids {
		result := e.ExecuteTestCase(id)
		if result == nil {
			continue
		}
		results[id] = result
		if result.Status == domain.ResultStatusPassed {
			passed++
		} else {
			failed++
		}
		if e.progress != nil {
			e.progress.Update(passed, failed)
		}
	}
	if e.progress != nil {
		e.progress.Finish()
	}
	return results
}
