package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/shuttle/pkg/store"
)

func newTestContext(t *testing.T, available string) *CommandContext {
	t.Helper()
	dir := t.TempDir()

	availablePath := filepath.Join(dir, "available.yaml")
	require.NoError(t, os.WriteFile(availablePath, []byte(available), 0644))
	configPath := filepath.Join(dir, "shuttle.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("columns:\n  - header: Name\n    accessor: name\n"), 0644))

	SetSourcePaths(configPath, availablePath, filepath.Join(dir, "selected.yaml"))
	t.Cleanup(func() { SetSourcePaths("", "", "") })

	ctx := NewCommandContext()
	require.NoError(t, ctx.ValidatePaths())
	require.NoError(t, ctx.Load())
	return ctx
}

func TestCommandContextDefaults(t *testing.T) {
	SetSourcePaths("", "", "")
	ctx := NewCommandContext()
	assert.Equal(t, DefaultAvailablePath, ctx.AvailablePath)
	assert.Equal(t, DefaultSelectedPath, ctx.SelectedPath)
}

func TestCommandContextLoad(t *testing.T) {
	ctx := newTestContext(t, "- {id: a, name: Alice}\n- {id: b, name: Bob}\n")

	assert.Len(t, ctx.Available, 2)
	assert.Empty(t, ctx.Selected)
	assert.Equal(t, "a", ctx.KeyFunc()(ctx.Available[0]))
}

func TestCommandContextReconcilerAdoptsChanges(t *testing.T) {
	ctx := newTestContext(t, "- {id: a, name: Alice}\n- {id: b, name: Bob}\n- {id: c, name: Carol}\n")
	r := ctx.NewReconciler()

	r.TransferToRight(ctx.Available[1])
	r.TransferToRight(ctx.Available[0])
	assert.Equal(t, []string{"b", "a"}, keys(ctx))

	r.SetSearch("car")
	r.TransferAllVisibleToRight()
	assert.Equal(t, []string{"b", "a", "c"}, keys(ctx))

	r.TransferToLeft(ctx.Available[0])
	assert.Equal(t, []string{"b", "c"}, keys(ctx))
	assert.Equal(t, 4, ctx.Changes())

	require.NoError(t, ctx.SaveSelected())
	saved, err := store.Load(ctx.SelectedPath)
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func TestCommandContextGeneratesMissingKeys(t *testing.T) {
	dir := t.TempDir()
	availablePath := filepath.Join(dir, "available.json")
	require.NoError(t, os.WriteFile(availablePath, []byte(`[{"name":"Alice"},{"id":"x","name":"Bob"}]`), 0644))
	configPath := filepath.Join(dir, "shuttle.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("identity:\n  accessor: id\n  generate_missing: true\n"), 0644))

	SetSourcePaths(configPath, availablePath, filepath.Join(dir, "selected.json"))
	t.Cleanup(func() { SetSourcePaths("", "", "") })

	ctx := NewCommandContext()
	require.NoError(t, ctx.Load())

	getID := ctx.KeyFunc()
	assert.NotEmpty(t, getID(ctx.Available[0]))
	assert.Equal(t, "x", getID(ctx.Available[1]))
}

func TestCommandContextValidatePaths(t *testing.T) {
	dir := t.TempDir()

	SetSourcePaths("", filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "selected.yaml"))
	t.Cleanup(func() { SetSourcePaths("", "", "") })
	assert.Error(t, NewCommandContext().ValidatePaths())

	available := filepath.Join(dir, "available.yaml")
	require.NoError(t, os.WriteFile(available, []byte("[]"), 0644))
	SetSourcePaths("", available, filepath.Join(dir, "selected.csv"))
	err := NewCommandContext().ValidatePaths()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "selected collection"))
}

func TestOutputFormat(t *testing.T) {
	ctx := newTestContext(t, "[]")

	format, err := ctx.OutputFormat("")
	require.NoError(t, err)
	assert.Equal(t, "text", format)

	format, err = ctx.OutputFormat("json")
	require.NoError(t, err)
	assert.Equal(t, "json", format)

	_, err = ctx.OutputFormat("xml")
	assert.Error(t, err)
}

func keys(ctx *CommandContext) []string {
	getID := ctx.KeyFunc()
	out := make([]string, len(ctx.Selected))
	for i, r := range ctx.Selected {
		out[i] = getID(r)
	}
	return out
}
