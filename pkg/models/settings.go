package models

// Settings represents the application configuration
type Settings struct {
	Identity IdentitySettings `yaml:"identity" mapstructure:"identity"`
	Columns  []Column         `yaml:"columns" mapstructure:"columns"`
	UI       UISettings       `yaml:"ui" mapstructure:"ui"`
	Output   OutputSettings   `yaml:"output" mapstructure:"output"`
	Log      LogSettings      `yaml:"log" mapstructure:"log"`
}

// IdentitySettings controls how item keys are derived
type IdentitySettings struct {
	Accessor        string `yaml:"accessor" mapstructure:"accessor"`
	GenerateMissing bool   `yaml:"generate_missing" mapstructure:"generate_missing"`
}

// UISettings controls UI preferences
type UISettings struct {
	LeftTitle   string `yaml:"left_title" mapstructure:"left_title"`
	RightTitle  string `yaml:"right_title" mapstructure:"right_title"`
	ShowCounts  bool   `yaml:"show_counts" mapstructure:"show_counts"`
	ActionHints bool   `yaml:"action_hints" mapstructure:"action_hints"`
}

// OutputSettings controls command output
type OutputSettings struct {
	Format string `yaml:"format" mapstructure:"format"` // "text", "json" or "yaml"
}

// LogSettings controls the zap logger
type LogSettings struct {
	Level  string `yaml:"level" mapstructure:"level"`   // "debug", "info", "warn", "error"
	Format string `yaml:"format" mapstructure:"format"` // "console" or "json"
	File   string `yaml:"file" mapstructure:"file"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Identity: IdentitySettings{
			Accessor:        "id",
			GenerateMissing: false,
		},
		Columns: []Column{
			{Header: "Name", Accessor: "name"},
		},
		UI: UISettings{
			LeftTitle:   "Available",
			RightTitle:  "Selected",
			ShowCounts:  true,
			ActionHints: true,
		},
		Output: OutputSettings{
			Format: "text",
		},
		Log: LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}
