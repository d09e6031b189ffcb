package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string

	// Storage settings
	StorageDir string

	// Test plan manifest
	PlanFile string

	// Logger mode ("dev" or "prod")
	LogMode string

	// Command flags
	Flags Flags
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath: DefaultProjectPath,
		StorageDir:  DefaultStorageDir,
		PlanFile:    DefaultPlanFile,
		LogMode:     DefaultLogMode,
	}
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags
	cfg.ApplyFlags()
	return cfg
}

// ApplyFlags applies flag overrides onto the config
func (c *Config) ApplyFlags() {
	if c.Flags.StorageDir != "" {
		c.StorageDir = c.Flags.StorageDir
	}
	if c.Flags.PlanFile != "" {
		c.PlanFile = c.Flags.PlanFile
	}
	if c.Flags.LogMode != "" {
		c.LogMode = c.Flags.LogMode
	}
}

// LoadEnv loads the project's .env file if present. Missing files are fine;
// the environment keeps whatever is already set.
func (c *Config) LoadEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	_ = godotenv.Load(envPath)
}

// GetStoragePath returns the absolute path of the record storage directory,
// so every command reads and writes the same files regardless of cwd.
func (c *Config) GetStoragePath() string {
	p := c.StorageDir
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.ProjectPath, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetPlanPath returns the path to the test plan manifest, relative paths
// resolved against the project path.
func (c *Config) GetPlanPath() string {
	if filepath.IsAbs(c.PlanFile) {
		return c.PlanFile
	}
	return filepath.Join(c.ProjectPath, c.PlanFile)
}

// GetArchiveDSN builds the MySQL DSN for the archive exporter from the
// environment (set directly or via .env).
func (c *Config) GetArchiveDSN() string {
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "127.0.0.1"
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "3306"
	}
	user := os.Getenv("DB_USERNAME")
	if user == "" {
		user = "root"
	}
	password := os.Getenv("DB_PASSWORD")
	database := os.Getenv("DB_DATABASE")
	if database == "" {
		database = "trp"
	}
	return user + ":" + password + "@tcp(" + host + ":" + port + ")/" + database + "?parseTime=true"
}
