package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"trp/internal/archive"
	"trp/internal/config"
)

// ArchiveCommand handles the archive command
type ArchiveCommand struct {
	config   *config.Config
	exporter *archive.Exporter
}

// NewArchiveCommand creates a new ArchiveCommand
func NewArchiveCommand(cfg *config.Config, exporter *archive.Exporter) *ArchiveCommand {
	return &ArchiveCommand{config: cfg, exporter: exporter}
}

// Execute runs the command
func (ac *ArchiveCommand) Execute(cmd *cobra.Command, args []string) error {
	archived, err := ac.exporter.Export()
	if err != nil {
		return err
	}
	color.Green("Archived %d new result(s)", archived)
	return nil
}
