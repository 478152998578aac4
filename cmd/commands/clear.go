package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/shuttle/internal/cli"
	"github.com/pluqqy/shuttle/pkg/transfer"
)

// NewClearCommand creates the clear command
func NewClearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the selection",
		Long: `Move every selected item back to available and save the empty
selection. Asks for confirmation unless --yes is given.

Examples:
  shuttle clear
  shuttle clear --yes`,
		Args: cobra.NoArgs,
		RunE: runClear,
	}

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx, err := openContext()
	if err != nil {
		return err
	}

	if len(ctx.Selected) == 0 {
		cli.PrintInfo(cmd.OutOrStdout(), "Selection is already empty")
		return nil
	}

	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if !skipConfirm {
		prompt := fmt.Sprintf("Remove all %s selected item(s)?", cli.FormatCount(len(ctx.Selected)))
		confirmed, err := cli.ConfirmFrom(cmd.InOrStdin(), cmd.OutOrStdout(), prompt, false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.PrintInfo(cmd.OutOrStdout(), "Clear cancelled")
			return nil
		}
	}

	getID := ctx.KeyFunc()
	before := transfer.Keys(ctx.Selected, getID)

	r := ctx.NewReconciler()
	r.TransferAllToLeft()

	if err := saveSelection(ctx); err != nil {
		return err
	}

	return writeChange(cmd, ctx, ChangeResult{
		Operation: "clear",
		Changed:   diffKeys(transfer.Keys(ctx.Selected, getID), before),
		Selected:  len(ctx.Selected),
	}, "Removed")
}
