package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/shuttle/pkg/store"
	"github.com/pluqqy/shuttle/pkg/transfer"
)

// NewRemoveCommand creates the remove command
func NewRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <key>...",
		Aliases: []string{"rm"},
		Short:   "Move selected items back to available",
		Long: `Remove the items with the given keys from the selection and save it.
The order of the remaining items is kept. Keys that are not selected are
reported and skipped.

Examples:
  shuttle remove 01HZX3
  shuttle rm 42 43`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRemove,
	}

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx, err := openContext()
	if err != nil {
		return err
	}

	getID := ctx.KeyFunc()
	before := transfer.Keys(ctx.Selected, getID)
	found, missing := store.FindByKeys(ctx.Selected, args, getID)

	r := ctx.NewReconciler()
	for _, item := range found {
		r.TransferToLeft(item)
	}

	if err := saveSelection(ctx); err != nil {
		return err
	}

	return writeChange(cmd, ctx, ChangeResult{
		Operation: "remove",
		Changed:   diffKeys(transfer.Keys(ctx.Selected, getID), before),
		Missing:   missing,
		Selected:  len(ctx.Selected),
	}, "Removed")
}
