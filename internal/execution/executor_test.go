package execution

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trp/internal/config"
	"trp/internal/domain"
	"trp/internal/logging"
	"trp/internal/registry"
	"trp/internal/storage"
)

func newTestExecutor(t *testing.T, runners *RunnerSet) (*Executor, *registry.Registry, *storage.FileStorage) {
	t.Helper()
	cfg := config.New()
	cfg.StorageDir = t.TempDir()
	st := storage.NewFileStorage(cfg, logging.NewNop())
	reg := registry.NewRegistry()
	return NewExecutor(reg, st, runners, logging.NewNop()), reg, st
}

func constantRunner(value any) Runner {
	return RunnerFunc(func(tc *domain.TestCase) (any, error) {
		return value, nil
	})
}

func failingRunner(msg string) Runner {
	return RunnerFunc(func(tc *domain.TestCase) (any, error) {
		return nil, fmt.Errorf("%s", msg)
	})
}

func TestExecutor_ExecuteTestCase(t *testing.T) {
	t.Run("unknown id returns nil", func(t *testing.T) {
		e, _, _ := newTestExecutor(t, NewRunnerSet(constantRunner(1)))
		assert.Nil(t, e.ExecuteTestCase("tc_ghost"))
	})

	t.Run("matching value passes", func(t *testing.T) {
		e, reg, st := newTestExecutor(t, NewRunnerSet(constantRunner(3)))
		tc := reg.CreateTestCase("t1", "", "mod_1", "unit", nil, 3, true, "")

		result := e.ExecuteTestCase(tc.ID)
		require.NotNil(t, result)
		assert.Equal(t, domain.ResultStatusPassed, result.Status)
		assert.Equal(t, tc.ID, result.TestCaseID)
		assert.Equal(t, "mod_1", result.ModuleID)
		assert.Empty(t, result.ErrorDetails)
		assert.Empty(t, result.Diagnosis)
		assert.GreaterOrEqual(t, result.ExecutionTime, 0.0)
		assert.Contains(t, result.ID, domain.TestResultIDPrefix+"_")

		// The result is persisted.
		loaded := st.LoadTestResult(result.ID)
		require.NotNil(t, loaded)
		assert.Equal(t, result.Status, loaded.Status)
	})

	t.Run("mismatching value fails with a diagnosis", func(t *testing.T) {
		e, reg, _ := newTestExecutor(t, NewRunnerSet(constantRunner(1)))
		tc := reg.CreateTestCase("t1", "", "mod_1", "unit", nil, 3, true, "")

		result := e.ExecuteTestCase(tc.ID)
		require.NotNil(t, result)
		assert.Equal(t, domain.ResultStatusFailed, result.Status)
		assert.Equal(t, "Expected 3 but got 1", result.Diagnosis)
	})

	t.Run("run error is caught and recorded", func(t *testing.T) {
		e, reg, _ := newTestExecutor(t, NewRunnerSet(failingRunner("database exploded")))
		tc := reg.CreateTestCase("t1", "", "mod_1", "unit", nil, 3, true, "")

		result := e.ExecuteTestCase(tc.ID)
		require.NotNil(t, result)
		assert.Equal(t, domain.ResultStatusFailed, result.Status)
		assert.Equal(t, "database exploded", result.ErrorDetails)
		assert.GreaterOrEqual(t, result.ExecutionTime, 0.0, "a failed run is still timed")
	})

	t.Run("repeated executions get distinct result ids", func(t *testing.T) {
		e, reg, _ := newTestExecutor(t, NewRunnerSet(constantRunner(3)))
		tc := reg.CreateTestCase("t1", "", "mod_1", "unit", nil, 3, true, "")

		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			result := e.ExecuteTestCase(tc.ID)
			require.NotNil(t, result)
			assert.False(t, seen[result.ID], "result ids must not collide")
			seen[result.ID] = true
		}
	})
}

func TestExecutor_DispatchByTestType(t *testing.T) {
	rs := NewRunnerSet(constantRunner("generic"))
	rs.Register(TestTypeUnit, constantRunner("unit"))
	rs.Register(TestTypeIntegration, constantRunner("integration"))
	e, reg, _ := newTestExecutor(t, rs)

	tests := []struct {
		testType string
		expected any
	}{
		{TestTypeUnit, "unit"},
		{TestTypeIntegration, "integration"},
		{"smoke", "generic"},
	}
	for _, tt := range tests {
		t.Run(tt.testType, func(t *testing.T) {
			tc := reg.CreateTestCase("t", "", "mod_1", tt.testType, nil, tt.expected, true, "")
			result := e.ExecuteTestCase(tc.ID)
			require.NotNil(t, result)
			assert.Equal(t, domain.ResultStatusPassed, result.Status)
		})
	}
}

func TestExecutor_ExecuteTestCases(t *testing.T) {
	e, reg, _ := newTestExecutor(t, NewRunnerSet(constantRunner(3)))
	t1 := reg.CreateTestCase("t1", "", "mod_1", "unit", nil, 3, true, "")
	t2 := reg.CreateTestCase("t2", "", "mod_1", "unit", nil, 9, true, "")

	results := e.ExecuteTestCases([]string{t1.ID, t2.ID, "tc_ghost"})

	require.Len(t, results, 2, "unknown ids are absent from the map")
	assert.Equal(t, domain.ResultStatusPassed, results[t1.ID].Status)
	assert.Equal(t, domain.ResultStatusFailed, results[t2.ID].Status)
}

func TestPassthroughRunner(t *testing.T) {
	r := NewPassthroughRunner()

	t.Run("returns the value entry", func(t *testing.T) {
		got, err := r.Run(&domain.TestCase{InputData: map[string]any{"value": 3}})
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("errors without input data", func(t *testing.T) {
		_, err := r.Run(&domain.TestCase{ID: "tc_1"})
		assert.Error(t, err)
	})

	t.Run("errors without a value entry", func(t *testing.T) {
		_, err := r.Run(&domain.TestCase{ID: "tc_1", InputData: map[string]any{"other": 1}})
		assert.Error(t, err)
	})
}
