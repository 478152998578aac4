package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/shuttle/pkg/store"
	"github.com/pluqqy/shuttle/pkg/transfer"
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <key>...",
		Short: "Move available items to the selection",
		Long: `Append the available items with the given keys to the selection and
save it. Keys already selected are left where they are. Unknown keys are
reported and skipped.

Examples:
  # Select two items
  shuttle add 01HZX3 01HZX4

  # Select into a different file
  shuttle add 42 --selected picked.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx, err := openContext()
	if err != nil {
		return err
	}

	getID := ctx.KeyFunc()
	before := transfer.Keys(ctx.Selected, getID)
	found, missing := store.FindByKeys(ctx.Available, args, getID)

	r := ctx.NewReconciler()
	for _, item := range found {
		r.TransferToRight(item)
	}

	if err := saveSelection(ctx); err != nil {
		return err
	}

	return writeChange(cmd, ctx, ChangeResult{
		Operation: "add",
		Changed:   diffKeys(before, transfer.Keys(ctx.Selected, getID)),
		Missing:   missing,
		Selected:  len(ctx.Selected),
	}, "Added")
}
