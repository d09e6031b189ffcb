package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultStorageDir is the default directory for persisted records,
	// relative to the project path
	DefaultStorageDir = "storage/results"
	// DefaultPlanFile is the default test plan manifest file name
	DefaultPlanFile = "trp.yaml"
	// DefaultLogMode is the default logger mode
	DefaultLogMode = "dev"
	// DefaultArchiveTable is the MySQL table the archive exporter writes to
	DefaultArchiveTable = "trp_results"
)
