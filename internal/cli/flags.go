package cli

import "trp/internal/config"

// Flags holds command-line flags
type Flags struct {
	PlanFile   string
	StorageDir string
	ModuleID   string
	TestCaseID string
	ResultID   string
	NameFilter string
	LogMode    string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		PlanFile:   f.PlanFile,
		StorageDir: f.StorageDir,
		ModuleID:   f.ModuleID,
		TestCaseID: f.TestCaseID,
		ResultID:   f.ResultID,
		NameFilter: f.NameFilter,
		LogMode:    f.LogMode,
	}
}
