package cli_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLI_FileInputOutput tests the CLI with file input and output
func TestCLI_FileInputOutput(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "jsonsift-test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	jsonContent := `{
		"name": "John Doe",
		"age": 30,
		"address": {
			"street": "123 Main St",
			"city": "Anytown",
			"zip": "12345"
		},
		"phones": [
			{
				"type": "home",
				"number": "555-1234"
			},
			{
				"type": "work",
				"number": "555-5678"
			}
		]
	}`
	jsonFile := filepath.Join(tempDir, "test.json")
	err = os.WriteFile(jsonFile, []byte(jsonContent), 0644)
	require.NoError(t, err)

	outputFile := filepath.Join(tempDir, "filtered.json")

	cmd := exec.Command("go", "run", "../../main.go", "-i", jsonFile, "-o", outputFile, "-x", "address.zip", "-x", "phones.[].number")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "CLI command failed: %s", string(output))

	filtered, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"name": "John Doe",
		"age": 30,
		"address": {"street": "123 Main St", "city": "Anytown"},
		"phones": [{"type": "home"}, {"type": "work"}]
	}`, string(filtered))
}

// TestCLI_StdinToStdout tests piping JSON through the CLI
func TestCLI_StdinToStdout(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "-k", "b")
	cmd.Stdin = bytes.NewBufferString(`{"a": 1, "b": {"c": 2}}`)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	require.NoError(t, err)

	assert.JSONEq(t, `{"b": {"c": 2}}`, stdout.String())
}

// TestCLI_ListView tests the flat index listing
func TestCLI_ListView(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "--list")
	cmd.Stdin = bytes.NewBufferString(`{"a": 1, "b": {"c": 2}}`)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	require.NoError(t, err)

	assert.Equal(t, "[x] a\n[x] b\n[x] b.c\n", stdout.String())
}

// TestCLI_InvalidJSON tests the error path for malformed input
func TestCLI_InvalidJSON(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go")
	cmd.Stdin = bytes.NewBufferString(`{"a": `)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()

	assert.Error(t, err, "malformed JSON should exit non-zero")
	assert.Contains(t, stderr.String(), "JSON parsing error")
}

// TestCLI_ScalarRoot tests the empty-index error path
func TestCLI_ScalarRoot(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go")
	cmd.Stdin = bytes.NewBufferString(`42`)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()

	assert.Error(t, err)
	assert.Contains(t, stderr.String(), "Key index error")
}
