package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsonsift/internal/config"
)

func resetCLI(t *testing.T) {
	t.Helper()
	originalCLI := CLI
	t.Cleanup(func() { CLI = originalCLI })
	CLI.Input = ""
	CLI.Output = ""
	CLI.Keep = nil
	CLI.Drop = nil
	CLI.Tree = false
	CLI.List = false
	CLI.Search = ""
}

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_PassThrough(t *testing.T) {
	resetCLI(t)
	CLI.Input = writeTempJSON(t, `{"name": "John", "age": 30, "active": true}`)
	CLI.Output = filepath.Join(t.TempDir(), "out.json")

	err := run(&Context{Config: config.NewConfig()})
	require.NoError(t, err)

	out, err := os.ReadFile(CLI.Output)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "John", "age": 30, "active": true}`, string(out))
}

func TestRun_DropRemovesSubtree(t *testing.T) {
	resetCLI(t)
	CLI.Input = writeTempJSON(t, `{"users": [{"name": "Al", "age": 1}], "meta": {"v": 2}}`)
	CLI.Output = filepath.Join(t.TempDir(), "out.json")
	CLI.Drop = []string{"meta", "users.[].age"}

	err := run(&Context{Config: config.NewConfig()})
	require.NoError(t, err)

	out, err := os.ReadFile(CLI.Output)
	require.NoError(t, err)
	assert.JSONEq(t, `{"users": [{"name": "Al"}]}`, string(out))
}

func TestRun_KeepSelectsAncestorsAndSubtree(t *testing.T) {
	resetCLI(t)
	CLI.Input = writeTempJSON(t, `{"users": [{"name": "Al", "age": 1}], "meta": {"v": 2}}`)
	CLI.Output = filepath.Join(t.TempDir(), "out.json")
	CLI.Keep = []string{"users.[].name"}

	err := run(&Context{Config: config.NewConfig()})
	require.NoError(t, err)

	out, err := os.ReadFile(CLI.Output)
	require.NoError(t, err)
	assert.JSONEq(t, `{"users": [{"name": "Al"}]}`, string(out))
}

func TestRun_UnknownKeepPath(t *testing.T) {
	resetCLI(t)
	CLI.Input = writeTempJSON(t, `{"a": 1}`)
	CLI.Keep = []string{"a.b.c"}

	err := run(&Context{Config: config.NewConfig()})
	assert.Error(t, err)
}

func TestRun_ScalarRootIsAnError(t *testing.T) {
	resetCLI(t)
	CLI.Input = writeTempJSON(t, `42`)

	err := run(&Context{Config: config.NewConfig()})
	assert.Error(t, err)
}

func TestRun_TreeOutput(t *testing.T) {
	resetCLI(t)
	CLI.Input = writeTempJSON(t, `{"a": 1, "b": {"c": 2}}`)
	CLI.Output = filepath.Join(t.TempDir(), "tree.txt")
	CLI.Tree = true
	CLI.Drop = []string{"b.c"}

	err := run(&Context{Config: config.NewConfig()})
	require.NoError(t, err)

	out, err := os.ReadFile(CLI.Output)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[x] a")
	assert.Contains(t, string(out), "[ ] c")
}

func TestRun_ListOutputWithSearch(t *testing.T) {
	resetCLI(t)
	CLI.Input = writeTempJSON(t, `{"users": [{"name": "Al"}], "meta": {"version": 2}}`)
	CLI.Output = filepath.Join(t.TempDir(), "list.txt")
	CLI.List = true
	CLI.Search = "version"

	err := run(&Context{Config: config.NewConfig()})
	require.NoError(t, err)

	out, err := os.ReadFile(CLI.Output)
	require.NoError(t, err)
	assert.Equal(t, "[x] meta.version\n", string(out))
}
