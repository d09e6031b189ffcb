package commands

import (
	"github.com/spf13/cobra"

	"trp/internal/config"
	"trp/internal/domain"
	"trp/internal/failure"
	"trp/internal/storage"
	"trp/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config    *config.Config
	storage   storage.Storage
	detector  *failure.Detector
	formatter *ui.Formatter
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(
	cfg *config.Config,
	st storage.Storage,
	detector *failure.Detector,
	formatter *ui.Formatter,
) *FailuresCommand {
	return &FailuresCommand{
		config:    cfg,
		storage:   st,
		detector:  detector,
		formatter: formatter,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	var results []domain.TestResult
	if moduleID := fc.config.Flags.ModuleID; moduleID != "" {
		results = fc.storage.GetTestResultsByModule(moduleID)
	} else {
		results = fc.storage.GetAllTestResults()
	}

	var messages []string
	for i := range results {
		if rec := fc.detector.DetectFailure(&results[i]); rec != nil {
			messages = append(messages, fc.detector.GenerateErrorMessage(&results[i]))
		}
	}

	fc.formatter.PrintFailureMessages(messages)
	return nil
}
