package identify

import "trp/internal/domain"

// Identifier is a module registry used by failure-attribution flows. It
// offers two resolution strategies: a strict lookup against registered
// modules, and a best-effort lookup that always synthesizes a placeholder.
// The map is owned by the Identifier; single-threaded use only.
type Identifier struct {
	modules map[string]*domain.Module
}

// NewIdentifier creates an empty Identifier.
func NewIdentifier() *Identifier {
	return &Identifier{modules: make(map[string]*domain.Module)}
}

// AddModule registers a module.
func (i *Identifier) AddModule(m *domain.Module) {
	i.modules[m.ID] = m
}

// GetModuleByID is the strict lookup: a registered module or nil.
func (i *Identifier) GetModuleByID(id string) *domain.Module {
	return i.modules[id]
}

// GetModuleByTestCase is the best-effort lookup: it always returns a
// synthesized placeholder built from the case's module id, regardless of
// what is registered.
func (i *Identifier) GetModuleByTestCase(tc *domain.TestCase) *domain.Module {
	return PlaceholderModule(tc.ModuleID)
}

// GetAllModules returns every registered module.
func (i *Identifier) GetAllModules() []*domain.Module {
	out := make([]*domain.Module, 0, len(i.modules))
	for _, m := range i.modules {
		out = append(out, m)
	}
	return out
}
