package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pluqqy/shuttle/cmd/commands"
	"github.com/pluqqy/shuttle/internal/cli"
	"github.com/pluqqy/shuttle/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	configFile    string
	availablePath string
	selectedPath  string
	quiet         bool
	noColor       bool
	skipConfirm   bool
)

var rootCmd = &cobra.Command{
	Use:   "shuttle",
	Short: "Move items between an available and a selected list",
	Long: `Shuttle is a terminal transfer list. It shows the items of an available
collection next to a selected collection and moves items between them,
filtered by a case-insensitive search over the configured columns.

Collections are YAML, JSON or TOML files. Run without a subcommand to open
the interactive view.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, skipConfirm)
		cli.SetSourcePaths(configFile, availablePath, selectedPath)
	},
	RunE: runTUI,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Shuttle",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Shuttle version %s\n", version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: shuttle.{yaml,json,toml} in the working directory)")
	flags.StringVar(&availablePath, "available", cli.DefaultAvailablePath, "available collection file")
	flags.StringVar(&selectedPath, "selected", cli.DefaultSelectedPath, "selected collection file")
	flags.StringP("output", "o", "", "output format: text, json or yaml")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	flags.BoolVar(&noColor, "no-color", false, "disable symbols in messages")
	flags.BoolVarP(&skipConfirm, "yes", "y", false, "skip confirmation prompts")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewFilterCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewRemoveCommand())
	rootCmd.AddCommand(commands.NewAddAllCommand())
	rootCmd.AddCommand(commands.NewClearCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	if err := ctx.ValidatePaths(); err != nil {
		return err
	}
	if err := ctx.InitLogger(true); err != nil {
		return err
	}
	defer ctx.Logger.Sync() //nolint:errcheck

	if err := ctx.Load(); err != nil {
		return err
	}

	app := tui.NewApp(tui.Options{
		Reconciler: ctx.NewReconciler(),
		Columns:    ctx.Settings.Columns,
		UI:         ctx.Settings.UI,
		Save:       ctx.SaveSelected,
		Logger:     ctx.Logger,
	}, fmt.Sprintf("%s ⇄ %s", filepath.Base(ctx.AvailablePath), filepath.Base(ctx.SelectedPath)))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	if app.Transfer().Dirty() {
		ctx.Logger.Info("exited with unsaved changes", zap.Int("selected", len(ctx.Selected)))
		cli.PrintWarning(cmd.ErrOrStderr(), "Selection has unsaved changes; press ctrl+s before quitting to keep them")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
