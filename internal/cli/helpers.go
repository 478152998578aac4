package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm prompts the user for confirmation
func Confirm(prompt string, defaultYes bool) (bool, error) {
	return ConfirmFrom(os.Stdin, os.Stdout, prompt, defaultYes)
}

// ConfirmFrom prompts on out and reads the answer from in
func ConfirmFrom(in io.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	fmt.Fprint(out, prompt+suffix)

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(w io.Writer, format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Fprintf(w, "✓ %s\n", msg)
		} else {
			fmt.Fprintf(w, "OK: %s\n", msg)
		}
	}
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(w io.Writer, format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Fprintf(w, "ℹ %s\n", msg)
		} else {
			fmt.Fprintf(w, "INFO: %s\n", msg)
		}
	}
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(w, "⚠ %s\n", msg)
	} else {
		fmt.Fprintf(w, "WARNING: %s\n", msg)
	}
}

// PrintError prints an error message
func PrintError(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(w, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(w, "ERROR: %s\n", msg)
	}
}

// Global flags (set from the cmd package)
var (
	quiet       bool
	noColor     bool
	skipConfirm bool

	configFile    string
	availablePath string
	selectedPath  string
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// SetSourcePaths sets the config and collection paths from the cmd package
func SetSourcePaths(config, available, selected string) {
	configFile = config
	availablePath = available
	selectedPath = selected
}
