package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pluqqy/shuttle/pkg/store"
)

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateCollectionPath checks the extension of a collection file and,
// when mustExist is set, that the file exists
func ValidateCollectionPath(path string, mustExist bool) error {
	if path == "" {
		return fmt.Errorf("collection path cannot be empty")
	}
	if _, err := store.FormatOf(path); err != nil {
		return fmt.Errorf("%w (use .yaml, .yml, .json or .toml)", err)
	}
	if mustExist {
		return ValidateFilePath(path)
	}
	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
