// Package store reads and writes item collections. A collection file is
// YAML, JSON or TOML, chosen by extension, and holds a list of records
// either at the top level or under an "items" key.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pluqqy/shuttle/pkg/models"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"

	// ItemsKey is the document key holding the record list
	ItemsKey = "items"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported collection format")
	ErrInvalidCollection = errors.New("invalid collection")
)

// FormatOf returns the collection format for a file path
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads a collection file
func Load(path string) ([]models.Record, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", path, err)
	}

	records, err := Decode(content, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse collection %s: %w", path, err)
	}
	return records, nil
}

// LoadOptional is Load, except that a missing file is an empty collection
func LoadOptional(path string) ([]models.Record, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if _, err := FormatOf(path); err != nil {
			return nil, err
		}
		return []models.Record{}, nil
	}
	return Load(path)
}

// Decode parses collection content in the given format
func Decode(content []byte, format string) ([]models.Record, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(content)
	case FormatJSON:
		return decodeJSON(content)
	case FormatTOML:
		return decodeTOML(content)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Save writes records to path, creating parent directories. For JSON an
// existing document keeps its other keys.
func Save(path string, records []models.Record) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read collection %s: %w", path, err)
	}

	content, err := Encode(existing, records, format)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for collection: %w", err)
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", path, err)
	}
	return nil
}

// Encode renders records in format. existing is the current file content,
// if any.
func Encode(existing []byte, records []models.Record, format string) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	switch format {
	case FormatYAML:
		return encodeYAML(records)
	case FormatJSON:
		return encodeJSON(existing, records)
	case FormatTOML:
		return encodeTOML(records)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// toRecords converts a decoded list into records
func toRecords(items []any) ([]models.Record, error) {
	records := make([]models.Record, 0, len(items))
	for i, item := range items {
		switch rec := item.(type) {
		case map[string]any:
			records = append(records, models.Record(rec))
		case models.Record:
			records = append(records, rec)
		case map[any]any:
			converted := make(models.Record, len(rec))
			for k, v := range rec {
				converted[fmt.Sprint(k)] = v
			}
			records = append(records, converted)
		default:
			return nil, fmt.Errorf("%w: item %d is not a mapping", ErrInvalidCollection, i+1)
		}
	}
	return records, nil
}
