package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"trp/internal/analysis"
	"trp/internal/config"
	"trp/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	analyzer  *analysis.Analyzer
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, analyzer *analysis.Analyzer, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{config: cfg, analyzer: analyzer, formatter: formatter}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	testCaseID := hc.config.Flags.TestCaseID
	if testCaseID == "" {
		return fmt.Errorf("--test-case is required")
	}

	history := hc.analyzer.GetTestCaseHistory(testCaseID)
	hc.formatter.PrintHistory(testCaseID, history)

	status := hc.analyzer.GetTestCaseStatus(testCaseID)
	fmt.Println()
	color.Cyan("Current status: %s", status)
	return nil
}
