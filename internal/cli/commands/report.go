package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"trp/internal/config"
	"trp/internal/domain"
	"trp/internal/failure"
	"trp/internal/report"
	"trp/internal/storage"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config    *config.Config
	storage   storage.Storage
	detector  *failure.Detector
	generator *report.Generator
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(
	cfg *config.Config,
	st storage.Storage,
	detector *failure.Detector,
	generator *report.Generator,
) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		storage:   st,
		detector:  detector,
		generator: generator,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	resultID := rc.config.Flags.ResultID
	if resultID == "" {
		return fmt.Errorf("--result is required")
	}

	result := rc.storage.LoadTestResult(resultID)
	if result == nil {
		return fmt.Errorf("no test result stored with id %s", resultID)
	}

	fmt.Println(rc.detector.GenerateErrorMessage(result))

	if result.Status != domain.ResultStatusFailed {
		return nil
	}

	fmt.Println()
	fmt.Println(rc.generator.GenerateDetailedReport(result))

	details := result.ErrorDetails
	if details == "" {
		details = result.Diagnosis
	}
	msg, err := rc.generator.GenerateErrorForTestResult(result, "reported_failure", details, "")
	if err != nil {
		return err
	}
	color.Cyan("Recorded error message %s", msg.ID)

	if stored := rc.storage.GetErrorMessagesByResult(result.ID); len(stored) > 1 {
		fmt.Println()
		color.Cyan("Previously recorded messages:")
		for _, m := range stored[:len(stored)-1] {
			fmt.Printf("  %s [%s] %s\n", m.ID, m.Severity, m.Message)
		}
	}
	return nil
}
