package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trp/internal/identify"
	"trp/internal/registry"
)

const samplePlan = `
modules:
  - name: auth
    description: authentication
    path: /src/auth
    dependencies: [storage]
    test_cases:
      - name: LoginTest
        type: unit
        input:
          value: true
        expected: true
      - name: TokenExpiryTest
        type: integration
        input:
          value: 3600
        expected: 3600
  - name: storage
    path: /src/storage
    test_cases:
      - name: SaveTest
        type: unit
        input:
          value: ok
        expected: ok
      - name: BrokenFixtureTest
        type: unit
        valid: false
        validation_reason: fixture missing
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid plan", func(t *testing.T) {
		plan, err := Load(writePlan(t, samplePlan))
		require.NoError(t, err)
		require.Len(t, plan.Modules, 2)
		assert.Equal(t, "auth", plan.Modules[0].Name)
		assert.Len(t, plan.Modules[0].TestCases, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("unparseable yaml", func(t *testing.T) {
		_, err := Load(writePlan(t, "modules: ["))
		assert.Error(t, err)
	})

	t.Run("empty plan", func(t *testing.T) {
		_, err := Load(writePlan(t, "modules: []"))
		assert.Error(t, err)
	})

	t.Run("duplicate module name", func(t *testing.T) {
		_, err := Load(writePlan(t, `
modules:
  - name: a
  - name: a
`))
		assert.Error(t, err)
	})

	t.Run("unknown dependency", func(t *testing.T) {
		_, err := Load(writePlan(t, `
modules:
  - name: a
    dependencies: [ghost]
`))
		assert.Error(t, err)
	})
}

func TestApply(t *testing.T) {
	plan, err := Load(writePlan(t, samplePlan))
	require.NoError(t, err)

	reg := registry.NewRegistry()
	identifier := identify.NewIdentifier()
	caseIDs := Apply(plan, reg, identifier)

	require.Len(t, caseIDs, 4)
	assert.Len(t, reg.GetAllModules(), 2)
	assert.Len(t, identifier.GetAllModules(), 2, "modules are registered with the identifier too")

	// Forward dependency reference resolves to the storage module's id.
	var authID, storageID string
	for _, m := range reg.GetAllModules() {
		switch m.Name {
		case "auth":
			authID = m.ID
		case "storage":
			storageID = m.ID
		}
	}
	auth := reg.GetModule(authID)
	require.NotNil(t, auth)
	assert.Equal(t, []string{storageID}, auth.Dependencies)
	assert.Len(t, auth.TestCaseIDs, 2)

	// Validity flows through to the created case.
	invalid := reg.GetTestCase(caseIDs[3])
	require.NotNil(t, invalid)
	assert.False(t, invalid.Valid)
	assert.Equal(t, "fixture missing", invalid.ValidationReason)
}

func TestFilterByName(t *testing.T) {
	reg := registry.NewRegistry()
	m := reg.CreateModule("m", "", "/p", nil)
	login := reg.CreateTestCase("LoginTest", "", m.ID, "unit", nil, 1, true, "")
	payment := reg.CreateTestCase("PaymentFlowTest", "", m.ID, "unit", nil, 1, true, "")
	ids := []string{login.ID, payment.ID}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"empty pattern keeps all", "", ids},
		{"exact wildcard", "Login*", []string{login.ID}},
		{"inner wildcard", "*Payment*", []string{payment.ID}},
		{"substring", "Flow", []string{payment.ID}},
		{"no match", "*Ghost*", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByName(reg, ids, tt.pattern)
			assert.Equal(t, tt.want, got)
		})
	}
}
