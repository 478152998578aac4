package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/shuttle/internal/cli"
)

// ShowResult represents the output structure for the show command
type ShowResult struct {
	Available SideResult `json:"available" yaml:"available"`
	Selected  SideResult `json:"selected" yaml:"selected"`
}

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display both sides of the transfer list",
		Long: `Display the unselected available items and the selected items,
each under its configured title with a count.

Examples:
  # Show both sides
  shuttle show

  # Output as YAML
  shuttle show -o yaml`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, err := openContext()
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd, ctx)
	if err != nil {
		return err
	}

	r := ctx.NewReconciler()
	visible := r.Visible()
	selected := r.Selected()

	result := ShowResult{
		Available: SideResult{Title: r.LeftTitle(), Count: len(visible), Items: visible},
		Selected:  SideResult{Title: r.RightTitle(), Count: len(selected), Items: selected},
	}
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	out := cmd.OutOrStdout()
	for _, side := range []SideResult{result.Available, result.Selected} {
		fmt.Fprintf(out, "\n%s (%s)\n", strings.ToUpper(side.Title), cli.FormatCount(side.Count))
		fmt.Fprintln(out, strings.Repeat("-", 80))
		if side.Count == 0 {
			fmt.Fprintln(out, "(none)")
			continue
		}
		writeRecordTable(out, r, ctx.Settings.Columns, side.Items)
	}
	return nil
}
