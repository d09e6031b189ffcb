package commands

import (
	"trp/internal/analysis"
	"trp/internal/archive"
	"trp/internal/cli"
	"trp/internal/config"
	"trp/internal/execution"
	"trp/internal/failure"
	"trp/internal/identify"
	"trp/internal/logging"
	"trp/internal/registry"
	"trp/internal/report"
	"trp/internal/storage"
	"trp/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Summary  *SummaryCommand
	History  *HistoryCommand
	Report   *ReportCommand
	Failures *FailuresCommand
	Archive  *ArchiveCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, log *logging.Logger) *Commands {
	// Initialize dependencies
	fileStorage := storage.NewFileStorage(cfg, log)
	reg := registry.NewRegistry()
	identifier := identify.NewIdentifier()
	detector := failure.NewDetector()
	generator := report.NewGenerator(fileStorage, identifier)
	analyzer := analysis.NewAnalyzer(fileStorage, reg)
	runners := execution.DefaultRunnerSet()
	executor := execution.NewExecutor(reg, fileStorage, runners, log)
	exporter := archive.NewExporter(cfg, fileStorage, log)
	formatter := ui.NewFormatter()

	return &Commands{
		Run:      NewRunCommand(cfg, reg, identifier, executor, detector, generator, analyzer, formatter),
		List:     NewListCommand(cfg, reg, identifier, formatter),
		Summary:  NewSummaryCommand(cfg, analyzer, formatter),
		History:  NewHistoryCommand(cfg, analyzer, formatter),
		Report:   NewReportCommand(cfg, fileStorage, detector, generator),
		Failures: NewFailuresCommand(cfg, fileStorage, detector, formatter),
		Archive:  NewArchiveCommand(cfg, exporter),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		cfg.ApplyFlags()
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Execute the test plan and record results",
		Long:    "Load the test plan, execute every test case and persist the results",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.PlanFile, "plan", "P", "", "Path to the test plan manifest")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test cases by name pattern (supports wildcards, e.g. '*Payment*')")
	runCmd.Flags().StringVarP(&flags.StorageDir, "storage-dir", "s", "", "Directory for persisted results")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List the test plan",
		Long:    "Load the test plan and list its modules and test cases without executing them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.PlanFile, "plan", "P", "", "Path to the test plan manifest")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test cases by name pattern")
	rootCmd.AddCommand(listCmd)

	// Summary command
	summaryCmd := &cobra.Command{
		Use:     "summary",
		Short:   "Show aggregate pass/fail statistics",
		Long:    "Aggregate every persisted test result into pass/fail counts and a pass rate",
		RunE:    c.Summary.Execute,
		PreRunE: applyFlags,
	}
	summaryCmd.Flags().StringVarP(&flags.ModuleID, "module", "m", "", "Restrict the summary to one module id")
	summaryCmd.Flags().StringVarP(&flags.StorageDir, "storage-dir", "s", "", "Directory for persisted results")
	rootCmd.AddCommand(summaryCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "Show the execution history of a test case",
		Long:    "List every persisted result for a test case, oldest first, with its current status",
		RunE:    c.History.Execute,
		PreRunE: applyFlags,
	}
	historyCmd.Flags().StringVarP(&flags.TestCaseID, "test-case", "t", "", "Test case id")
	historyCmd.Flags().StringVarP(&flags.StorageDir, "storage-dir", "s", "", "Directory for persisted results")
	rootCmd.AddCommand(historyCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:     "report",
		Short:   "Generate a failure report for a test result",
		Long:    "Build the brief and detailed failure reports for a persisted result and record an error message",
		RunE:    c.Report.Execute,
		PreRunE: applyFlags,
	}
	reportCmd.Flags().StringVarP(&flags.ResultID, "result", "r", "", "Test result id")
	reportCmd.Flags().StringVarP(&flags.StorageDir, "storage-dir", "s", "", "Directory for persisted results")
	rootCmd.AddCommand(reportCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "List failed results with brief diagnostics",
		Long:    "Scan persisted results and print a brief diagnostic for every failure",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	failuresCmd.Flags().StringVarP(&flags.ModuleID, "module", "m", "", "Restrict to one module id")
	failuresCmd.Flags().StringVarP(&flags.StorageDir, "storage-dir", "s", "", "Directory for persisted results")
	rootCmd.AddCommand(failuresCmd)

	// Archive command
	archiveCmd := &cobra.Command{
		Use:     "archive",
		Short:   "Export persisted results to the MySQL archive",
		Long:    "Copy every persisted test result into the MySQL archive table for cross-run trend queries",
		RunE:    c.Archive.Execute,
		PreRunE: applyFlags,
	}
	archiveCmd.Flags().StringVarP(&flags.StorageDir, "storage-dir", "s", "", "Directory for persisted results")
	rootCmd.AddCommand(archiveCmd)
}
