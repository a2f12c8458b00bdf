package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/datapkg/internal/datapkg"
	"github.com/specialistvlad/datapkg/internal/registry"
)

type fixedModule struct{}

func (fixedModule) Register(r *registry.Registry) {
	if err := r.Taxonomy().Declare("IniMap", "Map", "Structured"); err != nil {
		panic(err)
	}
	r.Register(datapkg.Define("Config", "1.0.0").
		Provide("IniMap", func(context.Context, *datapkg.Handle) (any, error) {
			return map[string]any{"host": "localhost"}, nil
		}).
		Provide("Text", func(context.Context, *datapkg.Handle) (any, error) {
			return "plain text", nil
		}).
		Provide("Broken", func(context.Context, *datapkg.Handle) (any, error) {
			return nil, errors.New("boom")
		}).
		Build())
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), args, &out, &errOut, fixedModule{})
	return out.String(), errOut.String(), err
}

func TestExecute_List(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Config")
	assert.Contains(t, out, "IniMap, Text, Broken")

	out, _, err = execute(t, "list", "--format", "yaml")
	require.NoError(t, err)
	var summaries []packageSummary
	require.NoError(t, yaml.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, packageSummary{Name: "Config", Version: "1.0.0", Provides: []string{"IniMap", "Text", "Broken"}}, summaries[0])
}

func TestExecute_Provides(t *testing.T) {
	out, _, err := execute(t, "provides", "Config")
	require.NoError(t, err)
	assert.Equal(t, "IniMap\nText\nBroken\n", out)

	out, _, err = execute(t, "provides", "Config", "--type", "Text", "--count")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, _, err = execute(t, "provides", "Config", "--type", "Map", "-c")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, _, err = execute(t, "provides", "Config", "--type", "Xml", "--count")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, _, err = execute(t, "provides", "Missing", "--count")
	assert.True(t, errors.Is(err, datapkg.ErrUnknownPackage))

	_, _, err = execute(t, "provides", "Missing")
	assert.True(t, errors.Is(err, datapkg.ErrUnknownPackage))
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestExecute_Types(t *testing.T) {
	out, _, err := execute(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "IniMap")
	assert.Contains(t, out, "Map, Structured")

	out, _, err = execute(t, "types", "-o", "yaml")
	require.NoError(t, err)
	var summaries []typeSummary
	require.NoError(t, yaml.Unmarshal([]byte(out), &summaries))
	assert.Equal(t, []typeSummary{{Name: "IniMap", IsA: []string{"Map", "Structured"}}}, summaries)
}

func TestExecute_Get(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "default json", args: []string{"get", "Config"}, want: "{\n  \"host\": \"localhost\"\n}\n"},
		{name: "yaml", args: []string{"get", "Config", "-o", "yaml"}, want: "host: localhost\n"},
		{name: "raw text", args: []string{"get", "Config", "--type", "Text", "--format", "raw"}, want: "plain text"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestExecute_GetDump(t *testing.T) {
	out, _, err := execute(t, "get", "Config", "--format", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "map[string]interface {}")
	assert.Contains(t, out, `"localhost"`)
}

func TestExecute_GetAbsent(t *testing.T) {
	out, _, err := execute(t, "get", "Config", "--type", "XmlDoc")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, ExitAbsent, ExitCode(err))
	assert.Contains(t, err.Error(), `cannot provide XmlDoc`)
}

func TestExecute_GetProviderFailure(t *testing.T) {
	_, _, err := execute(t, "get", "Config", "--type", "Broken")
	var coercionErr *datapkg.CoercionError
	require.True(t, errors.As(err, &coercionErr))
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestExecute_UsageErrors(t *testing.T) {
	_, _, err := execute(t, "list", "--no-such-flag")
	assert.Equal(t, ExitUsage, ExitCode(err))

	_, _, err = execute(t, "--log-level", "trace", "list")
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, err.Error(), "invalid log level")

	_, _, err = execute(t, "get", "Config", "--format", "xml")
	assert.Equal(t, ExitUsage, ExitCode(err))
}

func TestExecute_ManifestsFromEnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(`{"k": "v"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.hcl"), []byte(`package "Data" { source = "data.json" }`), 0644))

	t.Run("env", func(t *testing.T) {
		t.Setenv("DATAPKG_MANIFESTS", dir)
		out, _, err := execute(t, "get", "Data", "--type", "Document")
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"k\": \"v\"\n}\n", out)
	})

	t.Run("config file", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "datapkg.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("manifests:\n  - "+dir+"\nlog-level: debug\n"), 0644))

		out, logs, err := execute(t, "--config", cfgPath, "provides", "Data")
		require.NoError(t, err)
		assert.Equal(t, "Document\nRaw\n", out)
		assert.Contains(t, logs, "level=DEBUG")
	})

	t.Run("missing config file", func(t *testing.T) {
		_, _, err := execute(t, "--config", filepath.Join(dir, "nope.yaml"), "list")
		assert.Equal(t, ExitUsage, ExitCode(err))
	})
}

func TestExecute_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "datapkg.log")
	_, logs, err := execute(t, "--log-file", logPath, "--log-level", "debug", "list")
	require.NoError(t, err)
	assert.Empty(t, logs)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Registry validation passed.")
}
