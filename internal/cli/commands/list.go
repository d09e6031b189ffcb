package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"trp/internal/config"
	"trp/internal/identify"
	"trp/internal/manifest"
	"trp/internal/registry"
	"trp/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config     *config.Config
	registry   *registry.Registry
	identifier *identify.Identifier
	formatter  *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	reg *registry.Registry,
	identifier *identify.Identifier,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:     cfg,
		registry:   reg,
		identifier: identifier,
		formatter:  formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	plan, err := manifest.Load(lc.config.GetPlanPath())
	if err != nil {
		return err
	}

	caseIDs := manifest.Apply(plan, lc.registry, lc.identifier)
	caseIDs = manifest.FilterByName(lc.registry, caseIDs, lc.config.Flags.NameFilter)

	if len(caseIDs) == 0 {
		color.Yellow("No test cases found")
		return nil
	}

	lc.formatter.PrintPlan(lc.registry)
	return nil
}
