package commands

import (
	"github.com/spf13/cobra"

	"trp/internal/analysis"
	"trp/internal/config"
	"trp/internal/ui"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	config    *config.Config
	analyzer  *analysis.Analyzer
	formatter *ui.Formatter
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(cfg *config.Config, analyzer *analysis.Analyzer, formatter *ui.Formatter) *SummaryCommand {
	return &SummaryCommand{config: cfg, analyzer: analyzer, formatter: formatter}
}

// Execute runs the command
func (sc *SummaryCommand) Execute(cmd *cobra.Command, args []string) error {
	if moduleID := sc.config.Flags.ModuleID; moduleID != "" {
		summary := sc.analyzer.GetModuleTestSummary(moduleID)
		sc.formatter.PrintSummary("Module "+moduleID, summary)
		return nil
	}
	summary := sc.analyzer.GetTestResultsSummary()
	sc.formatter.PrintSummary("All results", summary)
	return nil
}
