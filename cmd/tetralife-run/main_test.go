package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tetralife/internal/config"
	"tetralife/internal/saves"
)

func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cfg := config.Default()
	cfg.SavesDir = dir
	cfg.LogLevel = "error"
	root := newRootCmd(cfg)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--no-color"))
	err := root.Execute()
	return out.String(), err
}

func TestSeedThenInspect(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "seed", "breeding-cube", "--name", "cube", "--size", "6")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cube.yaml"), strings.TrimSpace(out))

	out, err = execute(t, dir, "inspect", "cube", "--slice", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "slot: cube")
	assert.Contains(t, out, "size:       6 (1296 cells)")
	assert.Contains(t, out, "generation: 0000001")
	assert.Contains(t, out, "counter:    0000003")
	assert.Contains(t, out, "layer z=3")
	assert.Equal(t, 3, strings.Count(out, "█"))
}

func TestInspectOneOrientation(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "seed", "breeding-cube", "--name", "cube", "--size", "6")
	require.NoError(t, err)

	out, err := execute(t, dir, "inspect", "cube", "--slice", "3", "--orientation", "red")
	require.NoError(t, err)
	assert.Contains(t, out, "red")
	assert.NotContains(t, out, "white")
	assert.NotContains(t, out, "light-blue")
	assert.Equal(t, 1, strings.Count(out, "█"))

	out, err = execute(t, dir, "inspect", "cube", "--orientation", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "light-blue")
	assert.NotContains(t, out, "red")

	_, err = execute(t, dir, "inspect", "cube", "--orientation", "purple")
	assert.Error(t, err)
}

func TestListEmpty(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "list")
	require.NoError(t, err)
	assert.Equal(t, "no saves in "+dir, strings.TrimSpace(out))
}

func TestRunPatternAndSave(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, dir, "run", "--pattern", "breeding-cube", "--size", "10",
		"--generations", "4", "--fast", "--save")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "Generation:"))
	for _, hud := range []string{
		"Generation: 0000002\nLife detected: 0000003",
		"Generation: 0000003\nLife detected: 0000006",
		"Generation: 0000004\nLife detected: 0000012",
		"Generation: 0000005\nLife detected: 0000036",
	} {
		assert.Contains(t, out, hud)
	}
	assert.Contains(t, out, "saved "+filepath.Join(dir, "latest.yaml"))

	out, err = execute(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, saves.Latest)

	out, err = execute(t, dir, "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "counter:    0000036")
}

func TestRunFromSave(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "seed", "die-off", "--size", "10")
	require.NoError(t, err)

	out, err := execute(t, dir, "run", "--load", "die-off", "--size", "10", "--generations", "2", "--fast")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Generation:"))
	assert.Contains(t, out, "Generation: 0000002\nLife detected: 0000002")
	assert.Contains(t, out, "Generation: 0000003\nLife detected: 0000000")
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "inspect", "missing")
	var le *saves.LoadError
	assert.ErrorAs(t, err, &le)

	_, err = execute(t, dir, "seed", "glider")
	assert.Error(t, err)

	_, err = execute(t, dir, "run", "--size", "0")
	assert.Error(t, err)

	_, err = execute(t, dir, "run", "--load", "a", "--pattern", "soup")
	assert.Error(t, err)
}
