package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/datapkg/internal/cli"
)

func TestRun_InvalidManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	invalidHCL := `
		package "Broken" {
			source = "data.json"
		// Missing closing brace here
	`
	tempDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tempDir, "main.hcl"), []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	var out, errOut bytes.Buffer

	// --- Act ---
	runErr := run(context.Background(), &out, &errOut, []string{"--manifests", tempDir, "list"})

	// --- Assert ---
	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), "failed to load manifests")
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(runErr))
	assert.Empty(t, out.String())
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{"--help"})

	require.NoError(t, err, "run() should return a nil error for --help")
	assert.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	assert.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestRun_CoreModules(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{"provides", "Env"})

	require.NoError(t, err)
	assert.Equal(t, "Env.Map\nEnv.List\n", out.String())
}
