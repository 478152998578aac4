package models

// Record is a single item in a collection file. Records are schemaless;
// fields are reached through dotted accessor paths.
type Record map[string]any

// Column describes one displayed and searchable field of an item
type Column struct {
	Header    string `yaml:"header" json:"header" mapstructure:"header"`
	Accessor  string `yaml:"accessor" json:"accessor" mapstructure:"accessor"`
	ClassName string `yaml:"class_name,omitempty" json:"class_name,omitempty" mapstructure:"class_name"`
}

// Side identifies which list an item is rendered in
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Collection is the on-disk document shape for YAML, JSON and TOML files
type Collection struct {
	Items []Record `yaml:"items" json:"items" toml:"items"`
}
