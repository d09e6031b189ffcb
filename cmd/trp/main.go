package main

import (
	"fmt"
	"os"

	"trp/internal/cli"
	"trp/internal/cli/commands"
	"trp/internal/config"
	"trp/internal/logging"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "trp",
		Short:   "Test result processor",
		Long:    `A test-result bookkeeping and analysis harness. Track test cases grouped into modules, execute them, persist the results and generate pass/fail analytics and failure reports.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	log, err := logging.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, log)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
