package commands

import (
	"fmt"

	"trp/internal/analysis"
	"trp/internal/config"
	"trp/internal/domain"
	"trp/internal/execution"
	"trp/internal/failure"
	"trp/internal/identify"
	"trp/internal/manifest"
	"trp/internal/registry"
	"trp/internal/report"
	"trp/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config     *config.Config
	registry   *registry.Registry
	identifier *identify.Identifier
	executor   *execution.Executor
	detector   *failure.Detector
	generator  *report.Generator
	analyzer   *analysis.Analyzer
	formatter  *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	reg *registry.Registry,
	identifier *identify.Identifier,
	executor *execution.Executor,
	detector *failure.Detector,
	generator *report.Generator,
	analyzer *analysis.Analyzer,
	formatter *ui.Formatter,
) *RunCommand {
	return &RunCommand{
		config:     cfg,
		registry:   reg,
		identifier: identifier,
		executor:   executor,
		detector:   detector,
		generator:  generator,
		analyzer:   analyzer,
		formatter:  formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	plan, err := manifest.Load(rc.config.GetPlanPath())
	if err != nil {
		return err
	}

	caseIDs := manifest.Apply(plan, rc.registry, rc.identifier)
	caseIDs = manifest.FilterByName(rc.registry, caseIDs, rc.config.Flags.NameFilter)

	if len(caseIDs) == 0 {
		color.Yellow("No test cases to execute")
		return nil
	}

	progressBar := ui.NewProgressBar(len(caseIDs))
	rc.executor.SetProgress(progressBar)

	results := rc.executor.ExecuteTestCases(caseIDs)

	// Flag failures and persist a diagnostic record for each one.
	var messages []string
	for _, result := range results {
		if rec := rc.detector.DetectFailure(result); rec != nil {
			messages = append(messages, rc.detector.GenerateErrorMessage(result))
			details := result.ErrorDetails
			if details == "" {
				details = result.Diagnosis
			}
			if _, err := rc.generator.GenerateErrorForTestResult(result, "execution_failure", details, ""); err != nil {
				return fmt.Errorf("record failure diagnostic: %w", err)
			}
		}
		rc.registry.UpdateTestCase(result.TestCaseID, map[string]any{
			"status": domain.TestCaseStatus(result.Status),
		})
	}

	summary := rc.analyzer.GetTestResultsSummary(executedCaseIDs(results)...)
	rc.formatter.PrintSummary("Run summary", summary)
	if len(messages) > 0 {
		fmt.Println()
		rc.formatter.PrintFailureMessages(messages)
	}
	return nil
}

func executedCaseIDs(results map[string]*domain.TestResult) []string {
	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	return ids
}
