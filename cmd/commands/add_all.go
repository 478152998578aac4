package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/shuttle/pkg/transfer"
)

// NewAddAllCommand creates the add-all command
func NewAddAllCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-all [query]",
		Short: "Select every available item matching a query",
		Long: `Append every unselected available item that matches the query to the
selection, in available order, and save it. Without a query every
unselected item is added.

Examples:
  # Select everything
  shuttle add-all

  # Select everything with "core" in a column
  shuttle add-all core`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAddAll,
	}

	return cmd
}

func runAddAll(cmd *cobra.Command, args []string) error {
	ctx, err := openContext()
	if err != nil {
		return err
	}

	getID := ctx.KeyFunc()
	before := transfer.Keys(ctx.Selected, getID)

	r := ctx.NewReconciler()
	if len(args) > 0 {
		r.SetSearch(args[0])
	}
	r.TransferAllVisibleToRight()

	if err := saveSelection(ctx); err != nil {
		return err
	}

	return writeChange(cmd, ctx, ChangeResult{
		Operation: "add-all",
		Changed:   diffKeys(before, transfer.Keys(ctx.Selected, getID)),
		Selected:  len(ctx.Selected),
	}, "Added")
}
