package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/shuttle/internal/cli"
	"github.com/pluqqy/shuttle/pkg/examples"
)

var (
	initList   bool
	initForce  bool
	initFormat string
	initDir    string
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [category]",
		Short: "Write a starter config and available collection",
		Long: `Write shuttle.yaml and an available collection from one of the
bundled starters into a directory.

Examples:
  # List starters
  shuttle init --list

  # Team roster starter in the working directory
  shuttle init people

  # Dependency picker as JSON into ./picker
  shuttle init packages --format json --dir picker`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: examples.Categories(),
		RunE:      runInit,
	}

	cmd.Flags().BoolVarP(&initList, "list", "l", false, "List starters without installing")
	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing files")
	cmd.Flags().StringVar(&initFormat, "format", "yaml", "Collection format: yaml, json or toml")
	cmd.Flags().StringVar(&initDir, "dir", ".", "Directory to write into")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	category := "people"
	if len(args) > 0 {
		category = args[0]
	}

	out := cmd.OutOrStdout()

	if initList {
		fmt.Fprintln(out, "Available starters:")
		for _, set := range examples.GetExamples("all") {
			fmt.Fprintf(out, "  %-10s %s (%s items)\n    %s\n",
				set.Category, set.Name, cli.FormatCount(len(set.Items)), set.Description)
		}
		return nil
	}

	sets := examples.GetExamples(category)
	if len(sets) == 0 {
		return fmt.Errorf("unknown starter %q (available: %v)", category, examples.Categories())
	}

	if err := os.MkdirAll(initDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	set := sets[0]
	configPath, availablePath, err := examples.Install(set, initDir, initFormat, initForce)
	if err != nil {
		return fmt.Errorf("failed to install %s: %w", category, err)
	}

	cli.PrintSuccess(out, "Wrote %s", configPath)
	cli.PrintSuccess(out, "Wrote %s (%s items)", availablePath, cli.FormatCount(len(set.Items)))
	cli.PrintInfo(out, "Run 'shuttle --config %s --available %s' to start picking", configPath, availablePath)
	return nil
}
