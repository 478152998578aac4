// Package config loads shuttle settings from defaults, an optional config
// file, an optional .env file and SHUTTLE_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pluqqy/shuttle/pkg/fieldpath"
	"github.com/pluqqy/shuttle/pkg/models"
)

const (
	// ConfigName is the base name searched for when no file is given
	ConfigName = "shuttle"
	EnvPrefix  = "SHUTTLE"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Options controls where settings are read from
type Options struct {
	// ConfigFile is an explicit config path; it must exist when set
	ConfigFile string
	// SearchPaths are searched for shuttle.{yaml,json,toml} when
	// ConfigFile is empty. Defaults to the working directory.
	SearchPaths []string
	// EnvFile is loaded before reading the environment if it exists.
	// Defaults to ".env".
	EnvFile string
}

// Load resolves settings. Precedence from lowest to highest: defaults,
// config file, environment.
func Load(opts Options) (*models.Settings, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v, models.DefaultSettings())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName(ConfigName)
		paths := opts.SearchPaths
		if len(paths) == 0 {
			paths = []string{"."}
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var settings models.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := Validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// setDefaults registers every key so that AutomaticEnv can override it
func setDefaults(v *viper.Viper, d *models.Settings) {
	v.SetDefault("identity.accessor", d.Identity.Accessor)
	v.SetDefault("identity.generate_missing", d.Identity.GenerateMissing)
	v.SetDefault("columns", d.Columns)
	v.SetDefault("ui.left_title", d.UI.LeftTitle)
	v.SetDefault("ui.right_title", d.UI.RightTitle)
	v.SetDefault("ui.show_counts", d.UI.ShowCounts)
	v.SetDefault("ui.action_hints", d.UI.ActionHints)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
}

// Validate checks settings that would otherwise fail at render time
func Validate(s *models.Settings) error {
	if _, ok := fieldpath.Split(s.Identity.Accessor); !ok {
		return fmt.Errorf("%w: identity accessor %q is not a valid path", ErrInvalidSettings, s.Identity.Accessor)
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("%w: at least one column is required", ErrInvalidSettings)
	}
	for i, col := range s.Columns {
		if _, ok := fieldpath.Split(col.Accessor); !ok {
			return fmt.Errorf("%w: column %d accessor %q is not a valid path", ErrInvalidSettings, i+1, col.Accessor)
		}
	}
	switch s.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: unsupported output format %q", ErrInvalidSettings, s.Output.Format)
	}
	return nil
}
