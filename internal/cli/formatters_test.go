package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("Key", "Name")
	table.Row("a", "Alice")
	table.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Key"))
	assert.Contains(t, lines[1], "---")
	assert.Contains(t, lines[2], "Alice")
}

func TestOutputResults(t *testing.T) {
	data := map[string]int{"count": 2}

	var buf bytes.Buffer
	require.NoError(t, OutputResults(&buf, "json", data))
	assert.Contains(t, buf.String(), `"count": 2`)

	buf.Reset()
	require.NoError(t, OutputResults(&buf, "yaml", data))
	assert.Equal(t, "count: 2\n", buf.String())

	assert.Error(t, OutputResults(&buf, "xml", data))
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is long", 8, "this ..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.in, tt.max))
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "7", FormatCount(7))
	assert.Equal(t, "12,345", FormatCount(12345))
}

func TestConfirmFrom(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty default no", "\n", false, false},
		{"empty default yes", "\n", true, true},
		{"eof", "", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ConfirmFrom(strings.NewReader(tt.input), &out, "Clear?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Clear?")
		})
	}
}

func TestPrintHelpersRespectFlags(t *testing.T) {
	t.Cleanup(func() { SetGlobalFlags(false, false, false) })

	var buf bytes.Buffer
	SetGlobalFlags(false, true, false)
	PrintSuccess(&buf, "saved %d", 3)
	assert.Equal(t, "OK: saved 3\n", buf.String())

	buf.Reset()
	SetGlobalFlags(true, false, false)
	PrintInfo(&buf, "hidden")
	assert.Empty(t, buf.String())

	PrintWarning(&buf, "shown")
	assert.Contains(t, buf.String(), "shown")
}
