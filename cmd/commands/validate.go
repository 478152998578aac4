package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/shuttle/internal/cli"
	"github.com/pluqqy/shuttle/pkg/store"
)

// ErrProblemsFound is returned when validation reports any problem
var ErrProblemsFound = errors.New("collections have problems")

// ValidateResult represents the output structure for the validate command
type ValidateResult struct {
	Valid    bool            `json:"valid" yaml:"valid"`
	Problems []store.Problem `json:"problems" yaml:"problems"`
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check keys in both collections",
		Long: `Check that every item has a key, that no key repeats within a
collection, and that every selected key is available. Exits non-zero if
any problem is found.

Examples:
  shuttle validate
  shuttle validate -o json`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx, err := openContext()
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd, ctx)
	if err != nil {
		return err
	}

	problems := store.Validate(ctx.Available, ctx.Selected, ctx.KeyFunc())
	result := ValidateResult{Valid: len(problems) == 0, Problems: problems}
	if result.Problems == nil {
		result.Problems = []store.Problem{}
	}

	out := cmd.OutOrStdout()
	if format != string(cli.FormatText) {
		if err := cli.OutputResults(out, format, result); err != nil {
			return err
		}
	} else if result.Valid {
		cli.PrintSuccess(out, "%s available and %s selected item(s) are valid",
			cli.FormatCount(len(ctx.Available)), cli.FormatCount(len(ctx.Selected)))
	} else {
		for _, p := range problems {
			cli.PrintError(out, "%s", p)
		}
	}

	if !result.Valid {
		return fmt.Errorf("%w: %d", ErrProblemsFound, len(problems))
	}
	return nil
}
