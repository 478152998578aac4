package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/shuttle/internal/cli"
	"github.com/pluqqy/shuttle/pkg/models"
)

// FilterResult represents the output structure for the filter command
type FilterResult struct {
	Query string          `json:"query" yaml:"query"`
	Count int             `json:"count" yaml:"count"`
	Items []models.Record `json:"items" yaml:"items"`
}

// NewFilterCommand creates the filter command
func NewFilterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter [query]",
		Short: "List available items that are not selected",
		Long: `List the items of the available collection that are not selected
and whose configured columns contain the query, case-insensitively.

Without a query every unselected item is listed.

Examples:
  # Everything still available
  shuttle filter

  # Items with "ali" in any column
  shuttle filter ali

  # As JSON
  shuttle filter ali -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFilter,
	}

	return cmd
}

func runFilter(cmd *cobra.Command, args []string) error {
	ctx, err := openContext()
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd, ctx)
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	r := ctx.NewReconciler()
	r.SetSearch(query)
	visible := r.Visible()

	result := FilterResult{Query: query, Count: len(visible), Items: visible}
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	out := cmd.OutOrStdout()
	if result.Count == 0 {
		cli.PrintInfo(out, "No items found")
		return nil
	}
	writeRecordTable(out, r, ctx.Settings.Columns, visible)
	fmt.Fprintf(out, "\nTotal: %s of %s available\n", cli.FormatCount(result.Count), cli.FormatCount(len(ctx.Available)))
	return nil
}
