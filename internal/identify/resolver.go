package identify

import (
	"time"

	"trp/internal/domain"
)

// PlaceholderModule synthesizes an unregistered stand-in module for a
// module id. Failure attribution prefers a synthesized owner over no owner
// at all; this is the single implementation every best-effort path shares.
func PlaceholderModule(moduleID string) *domain.Module {
	return &domain.Module{
		ID:           moduleID,
		Name:         "Module " + moduleID,
		Path:         "/path/to/" + moduleID,
		Dependencies: []string{},
		TestCaseIDs:  []string{},
		LastUpdated:  time.Now().UTC(),
	}
}
