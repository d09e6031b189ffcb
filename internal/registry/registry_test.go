package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trp/internal/domain"
)

func TestRegistry_CreateModule(t *testing.T) {
	r := NewRegistry()
	m := r.CreateModule("auth", "authentication module", "/src/auth", []string{"mod_db"})

	assert.Contains(t, m.ID, domain.ModuleIDPrefix+"_")
	assert.Equal(t, "auth", m.Name)
	assert.Equal(t, "/src/auth", m.Path)
	assert.Equal(t, []string{"mod_db"}, m.Dependencies)
	assert.Empty(t, m.TestCaseIDs)
	assert.Same(t, m, r.GetModule(m.ID))
}

func TestRegistry_CreateTestCase(t *testing.T) {
	t.Run("valid case starts pending with no reason", func(t *testing.T) {
		r := NewRegistry()
		m := r.CreateModule("m1", "", "/p", nil)
		tc := r.CreateTestCase("t1", "adds numbers", m.ID, "unit",
			map[string]any{"value": 3}, 3, true, "")

		assert.Contains(t, tc.ID, domain.TestCaseIDPrefix+"_")
		assert.Equal(t, domain.TestCaseStatusPending, tc.Status)
		assert.True(t, tc.Valid)
		assert.Empty(t, tc.ValidationReason)
		assert.Equal(t, []string{tc.ID}, m.TestCaseIDs)
	})

	t.Run("invalid case starts invalid", func(t *testing.T) {
		r := NewRegistry()
		tc := r.CreateTestCase("bad", "", "mod_nope", "unit", nil, nil, false, "missing fixture")

		assert.Equal(t, domain.TestCaseStatusInvalid, tc.Status)
		assert.Equal(t, "missing fixture", tc.ValidationReason)
	})

	t.Run("unknown module id still succeeds without linking", func(t *testing.T) {
		r := NewRegistry()
		tc := r.CreateTestCase("orphan", "", "mod_unknown", "unit", nil, 1, true, "")

		require.NotNil(t, tc)
		assert.Equal(t, "mod_unknown", tc.ModuleID)
		assert.Same(t, tc, r.GetTestCase(tc.ID))
	})
}

func TestRegistry_GetTestCasesByModule(t *testing.T) {
	r := NewRegistry()
	m1 := r.CreateModule("m1", "", "/p1", nil)
	m2 := r.CreateModule("m2", "", "/p2", nil)
	a := r.CreateTestCase("a", "", m1.ID, "unit", nil, 1, true, "")
	b := r.CreateTestCase("b", "", m1.ID, "unit", nil, 2, true, "")
	r.CreateTestCase("c", "", m2.ID, "unit", nil, 3, true, "")

	cases := r.GetTestCasesByModule(m1.ID)
	require.Len(t, cases, 2)
	ids := []string{cases[0].ID, cases[1].ID}
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)
}

func TestRegistry_UpdateTestCase(t *testing.T) {
	r := NewRegistry()
	m := r.CreateModule("m1", "", "/p", nil)
	tc := r.CreateTestCase("t1", "", m.ID, "unit", nil, 3, true, "")
	before := tc.LastModified
	time.Sleep(time.Millisecond)

	ok := r.UpdateTestCase(tc.ID, map[string]any{
		"name":            "t1-renamed",
		"status":          "failed",
		"expected_result": 5,
		"bogus_field":     "ignored",
	})

	require.True(t, ok)
	assert.Equal(t, "t1-renamed", tc.Name)
	assert.Equal(t, domain.TestCaseStatusFailed, tc.Status)
	assert.Equal(t, 5, tc.ExpectedResult)
	assert.True(t, tc.LastModified.After(before), "LastModified should be bumped")

	assert.False(t, r.UpdateTestCase("tc_unknown", map[string]any{"name": "x"}))
}

func TestRegistry_DeleteTestCase(t *testing.T) {
	t.Run("unlinks from the owning module", func(t *testing.T) {
		r := NewRegistry()
		m1 := r.CreateModule("m1", "", "/p", nil)
		t1 := r.CreateTestCase("t1", "", m1.ID, "unit", nil, 3, true, "")
		t2 := r.CreateTestCase("t2", "", m1.ID, "unit", nil, 4, true, "")

		require.True(t, r.DeleteTestCase(t1.ID))

		assert.Nil(t, r.GetTestCase(t1.ID))
		assert.Equal(t, []string{t2.ID}, m1.TestCaseIDs)
	})

	t.Run("unknown id returns false", func(t *testing.T) {
		r := NewRegistry()
		assert.False(t, r.DeleteTestCase("tc_ghost"))
	})

	t.Run("orphan case deletes cleanly", func(t *testing.T) {
		r := NewRegistry()
		tc := r.CreateTestCase("orphan", "", "mod_unknown", "unit", nil, 1, true, "")
		assert.True(t, r.DeleteTestCase(tc.ID))
	})
}
