package config

import (
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}
	if cfg.StorageDir != DefaultStorageDir {
		t.Errorf("expected StorageDir %s, got %s", DefaultStorageDir, cfg.StorageDir)
	}
	if cfg.PlanFile != DefaultPlanFile {
		t.Errorf("expected PlanFile %s, got %s", DefaultPlanFile, cfg.PlanFile)
	}
}

func TestLoad_AppliesFlags(t *testing.T) {
	cfg := Load(Flags{
		PlanFile:   "custom.yaml",
		StorageDir: "/var/lib/trp",
		LogMode:    "prod",
	})

	if cfg.PlanFile != "custom.yaml" {
		t.Errorf("expected PlanFile custom.yaml, got %s", cfg.PlanFile)
	}
	if cfg.StorageDir != "/var/lib/trp" {
		t.Errorf("expected StorageDir /var/lib/trp, got %s", cfg.StorageDir)
	}
	if cfg.LogMode != "prod" {
		t.Errorf("expected LogMode prod, got %s", cfg.LogMode)
	}
}

func TestConfig_GetStoragePath(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		check  func(t *testing.T, got string)
	}{
		{
			name:   "absolute dir is kept",
			config: &Config{ProjectPath: "/project", StorageDir: "/data/results"},
			check: func(t *testing.T, got string) {
				if got != "/data/results" {
					t.Errorf("expected /data/results, got %s", got)
				}
			},
		},
		{
			name:   "relative dir joins the project path",
			config: &Config{ProjectPath: "/project", StorageDir: "storage/results"},
			check: func(t *testing.T, got string) {
				if got != "/project/storage/results" {
					t.Errorf("expected /project/storage/results, got %s", got)
				}
			},
		},
		{
			name:   "result is always absolute",
			config: &Config{ProjectPath: ".", StorageDir: "storage/results"},
			check: func(t *testing.T, got string) {
				if !filepath.IsAbs(got) {
					t.Errorf("expected an absolute path, got %s", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.config.GetStoragePath())
		})
	}
}

func TestConfig_GetPlanPath(t *testing.T) {
	cfg := &Config{ProjectPath: "/project", PlanFile: "trp.yaml"}
	if got := cfg.GetPlanPath(); got != "/project/trp.yaml" {
		t.Errorf("expected /project/trp.yaml, got %s", got)
	}

	cfg.PlanFile = "/abs/plan.yaml"
	if got := cfg.GetPlanPath(); got != "/abs/plan.yaml" {
		t.Errorf("expected /abs/plan.yaml, got %s", got)
	}
}

func TestConfig_GetArchiveDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USERNAME", "ci")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_DATABASE", "results")

	cfg := New()
	want := "ci:secret@tcp(db.internal:3307)/results?parseTime=true"
	if got := cfg.GetArchiveDSN(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
