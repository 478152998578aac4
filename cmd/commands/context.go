package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pluqqy/shuttle/internal/cli"
	"github.com/pluqqy/shuttle/pkg/models"
)

const maxCellWidth = 40

// openContext validates paths and loads settings and both collections
func openContext() (*cli.CommandContext, error) {
	ctx := cli.NewCommandContext()
	if err := ctx.ValidatePaths(); err != nil {
		return nil, err
	}
	if err := ctx.InitLogger(false); err != nil {
		return nil, err
	}
	if err := ctx.Load(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// outputFormat reads the --output flag and resolves it against settings
func outputFormat(cmd *cobra.Command, ctx *cli.CommandContext) (string, error) {
	flag, _ := cmd.Flags().GetString("output")
	return ctx.OutputFormat(flag)
}

// saveSelection writes the selection and logs failures through the context
func saveSelection(ctx *cli.CommandContext) error {
	if err := ctx.SaveSelected(); err != nil {
		ctx.Logger.Error("failed to save selection",
			zap.String("path", ctx.SelectedPath),
			zap.Error(err))
		return fmt.Errorf("failed to save selection: %w", err)
	}
	return nil
}

// writeRecordTable prints records under the configured column headers,
// prefixed with their key
func writeRecordTable(w io.Writer, r *cli.RecordReconciler, columns []models.Column, records []models.Record) {
	table := cli.NewTableFormatter(w)

	headers := []string{"Key"}
	for _, c := range columns {
		headers = append(headers, c.Header)
	}
	table.Header(headers...)

	for _, rec := range records {
		row := []string{r.Key(rec)}
		for _, c := range columns {
			cell := r.Cell(rec, c)
			if cell == "" {
				cell = "-"
			}
			row = append(row, cli.TruncateString(cell, maxCellWidth))
		}
		table.Row(row...)
	}
	table.Flush()
}

// SideResult is the output structure for one side of the transfer list
type SideResult struct {
	Title string          `json:"title" yaml:"title"`
	Count int             `json:"count" yaml:"count"`
	Items []models.Record `json:"items" yaml:"items"`
}

// ChangeResult is the output structure for commands that modify the selection
type ChangeResult struct {
	Operation string   `json:"operation" yaml:"operation"`
	Changed   []string `json:"changed" yaml:"changed"`
	Missing   []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Selected  int      `json:"selected" yaml:"selected"`
}

// diffKeys returns keys present in after but not before
func diffKeys(before, after []string) []string {
	seen := make(map[string]struct{}, len(before))
	for _, k := range before {
		seen[k] = struct{}{}
	}
	changed := []string{}
	for _, k := range after {
		if _, ok := seen[k]; !ok {
			changed = append(changed, k)
		}
	}
	return changed
}

// writeChange reports the outcome of a selection change. done is the past
// tense of the operation, as in "Added".
func writeChange(cmd *cobra.Command, ctx *cli.CommandContext, result ChangeResult, done string) error {
	format, err := outputFormat(cmd, ctx)
	if err != nil {
		return err
	}
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	out := cmd.OutOrStdout()
	for _, key := range result.Missing {
		cli.PrintWarning(out, "Key '%s' not found", key)
	}
	if len(result.Changed) == 0 {
		cli.PrintInfo(out, "No items %s", strings.ToLower(done))
	} else {
		cli.PrintSuccess(out, "%s %s item(s): %s", done, cli.FormatCount(len(result.Changed)), joinKeys(result.Changed))
	}
	cli.PrintInfo(out, "Selected: %s", cli.FormatCount(result.Selected))
	return nil
}

func joinKeys(keys []string) string {
	const limit = 10
	if len(keys) <= limit {
		return strings.Join(keys, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(keys[:limit], ", "), len(keys)-limit)
}
