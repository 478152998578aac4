package cli

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pluqqy/shuttle/pkg/config"
	"github.com/pluqqy/shuttle/pkg/logger"
	"github.com/pluqqy/shuttle/pkg/models"
	"github.com/pluqqy/shuttle/pkg/store"
	"github.com/pluqqy/shuttle/pkg/transfer"
)

const (
	DefaultAvailablePath = "available.yaml"
	DefaultSelectedPath  = "selected.yaml"
)

// RecordReconciler is the reconciler specialised for collection records
type RecordReconciler = transfer.Reconciler[models.Record, string]

// CommandContext owns the state a command works on: settings, logger and
// both collections. It is the source of truth for the selection; the
// reconciler it builds reports changes back here.
type CommandContext struct {
	ConfigFile    string
	AvailablePath string
	SelectedPath  string

	Settings  *models.Settings
	Logger    *zap.Logger
	Available []models.Record
	Selected  []models.Record

	changes int
}

// NewCommandContext creates a command context from the global flags
func NewCommandContext() *CommandContext {
	ctx := &CommandContext{
		ConfigFile:    configFile,
		AvailablePath: availablePath,
		SelectedPath:  selectedPath,
		Logger:        zap.NewNop(),
	}
	if ctx.AvailablePath == "" {
		ctx.AvailablePath = DefaultAvailablePath
	}
	if ctx.SelectedPath == "" {
		ctx.SelectedPath = DefaultSelectedPath
	}
	return ctx
}

// ValidatePaths ensures both collection paths are usable
func (c *CommandContext) ValidatePaths() error {
	if err := ValidateCollectionPath(c.AvailablePath, true); err != nil {
		return fmt.Errorf("available collection: %w", err)
	}
	if err := ValidateCollectionPath(c.SelectedPath, false); err != nil {
		return fmt.Errorf("selected collection: %w", err)
	}
	return nil
}

// LoadSettings loads settings once
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, err := config.Load(config.Options{ConfigFile: c.ConfigFile})
	if err != nil {
		return nil, err
	}
	c.Settings = settings
	return settings, nil
}

// InitLogger builds the command logger from the loaded settings
func (c *CommandContext) InitLogger(forTUI bool) error {
	settings, err := c.LoadSettings()
	if err != nil {
		return err
	}

	var log *zap.Logger
	if forTUI {
		log, err = logger.ForTUI(settings.Log)
	} else {
		log, err = logger.New(settings.Log)
	}
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	c.Logger = log
	return nil
}

// Load reads settings and both collections. A missing selected file is an
// empty selection.
func (c *CommandContext) Load() error {
	settings, err := c.LoadSettings()
	if err != nil {
		return err
	}

	available, err := store.Load(c.AvailablePath)
	if err != nil {
		return err
	}
	selected, err := store.LoadOptional(c.SelectedPath)
	if err != nil {
		return err
	}

	if settings.Identity.GenerateMissing {
		if n := store.StampIDs(available, settings.Identity.Accessor); n > 0 {
			c.Logger.Info("assigned missing keys",
				zap.Int("count", n),
				zap.String("accessor", settings.Identity.Accessor))
		}
	}

	c.Available = available
	c.Selected = selected
	c.Logger.Debug("collections loaded",
		zap.String("available", c.AvailablePath),
		zap.Int("available_count", len(available)),
		zap.String("selected", c.SelectedPath),
		zap.Int("selected_count", len(selected)))
	return nil
}

// KeyFunc returns the configured identity function
func (c *CommandContext) KeyFunc() func(models.Record) string {
	return store.KeyFunc(c.Settings.Identity.Accessor)
}

// NewReconciler builds a reconciler wired to this context
func (c *CommandContext) NewReconciler() *RecordReconciler {
	r := transfer.New(c.KeyFunc(), transfer.WithLogger[models.Record, string](c.Logger))
	c.Render(r)
	return r
}

// Render supplies the current state to r
func (c *CommandContext) Render(r *RecordReconciler) {
	r.SetProps(c.Props(func(next []models.Record) {
		c.Adopt(next)
		c.Render(r)
	}))
}

// Props builds reconciler props from the current state
func (c *CommandContext) Props(onChange func([]models.Record)) transfer.Props[models.Record] {
	return transfer.Props[models.Record]{
		Available:  c.Available,
		Selected:   c.Selected,
		Columns:    c.Settings.Columns,
		LeftTitle:  c.Settings.UI.LeftTitle,
		RightTitle: c.Settings.UI.RightTitle,
		OnChange:   onChange,
	}
}

// Adopt makes next the current selection
func (c *CommandContext) Adopt(next []models.Record) {
	c.Selected = next
	c.changes++
}

// Changes returns how many selections have been adopted since loading
func (c *CommandContext) Changes() int {
	return c.changes
}

// SaveSelected writes the selection to the selected path
func (c *CommandContext) SaveSelected() error {
	if err := store.Save(c.SelectedPath, c.Selected); err != nil {
		return err
	}
	c.Logger.Debug("selection saved",
		zap.String("path", c.SelectedPath),
		zap.Int("count", len(c.Selected)))
	return nil
}

// OutputFormat resolves the format flag against settings
func (c *CommandContext) OutputFormat(flag string) (string, error) {
	format := flag
	if format == "" && c.Settings != nil {
		format = c.Settings.Output.Format
	}
	if format == "" {
		format = string(FormatText)
	}
	if err := ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
