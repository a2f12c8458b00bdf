package integrationtests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/specialistvlad/datapkg/internal/datapkg"
	"github.com/specialistvlad/datapkg/internal/testutil"
	"github.com/specialistvlad/datapkg/modules/env_vars"
)

const configManifest = `
type "JsonDoc" {
  is_a = ["Document"]
}

package "Config" {
  version  = "1.0.0"
  source   = "config.json"
  provides = ["IniMap", "JsonDoc"]

  representation "IniMap" {
    schema = map(string)
  }
  representation "JsonDoc" {
    schema = any
  }
}

package "Empty" {
  provides = []
}
`

func TestScenario_ManifestCapabilities(t *testing.T) {
	files := map[string]string{
		"config.hcl":  configManifest,
		"config.json": `{"host": "localhost", "mode": "dev"}`,
	}
	result := testutil.RunIntegrationTest(t, files, &env_vars.Module{})
	testutil.RequireStarted(t, result)
	a := result.App

	all, err := a.Provides("Config", datapkg.Any)
	require.NoError(t, err)
	assert.Equal(t, []datapkg.Type{"IniMap", "JsonDoc"}, all)

	docs, err := a.Provides("Config", "Document")
	require.NoError(t, err)
	assert.Equal(t, []datapkg.Type{"JsonDoc"}, docs, "is_a relation should match JsonDoc against Document")

	preferred := testutil.RequireGet(t, result, "Config", datapkg.Any)
	val, ok := preferred.(cty.Value)
	require.True(t, ok)
	assert.True(t, val.Type().IsMapType(), "the first listed representation should be chosen")

	empty, err := a.Provides("Empty", datapkg.Any)
	require.NoError(t, err)
	assert.Empty(t, empty)

	v, ok, err := a.Get(context.Background(), "Empty", datapkg.Any)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)

	v, ok, err = a.Get(context.Background(), "Config", "XmlDoc")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestScenario_FailingProviderLeavesPackageUsable(t *testing.T) {
	files := map[string]string{
		"config.hcl":  configManifest,
		"config.json": `{"host": "localhost", "nested": {"not": "a string"}}`,
	}
	result := testutil.RunIntegrationTest(t, files, &env_vars.Module{})
	testutil.RequireStarted(t, result)
	a := result.App

	_, ok, err := a.Get(context.Background(), "Config", "IniMap")
	assert.False(t, ok)
	var coercionErr *datapkg.CoercionError
	require.True(t, errors.As(err, &coercionErr), "expected CoercionError, got %v", err)
	assert.Equal(t, datapkg.Type("IniMap"), coercionErr.Type)

	all, err := a.Provides("Config", datapkg.Any)
	require.NoError(t, err)
	assert.Equal(t, []datapkg.Type{"IniMap", "JsonDoc"}, all)

	doc := testutil.RequireGet(t, result, "Config", "JsonDoc")
	assert.NotNil(t, doc)
}

func TestScenario_MissingSourceFile(t *testing.T) {
	files := map[string]string{
		"gone.hcl": `package "Gone" { source = "missing.json" }`,
	}
	result := testutil.RunIntegrationTest(t, files, &env_vars.Module{})
	testutil.RequireStarted(t, result)

	_, ok, err := result.App.Get(context.Background(), "Gone", "Raw")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, datapkg.ErrNotFound))
}

func TestScenario_StartupFailures(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "invalid hcl",
			files:   map[string]string{"bad.hcl": `package "X" {`},
			wantErr: "failed to load manifests",
		},
		{
			name: "taxonomy cycle",
			files: map[string]string{"types.hcl": `
type "A" { is_a = ["B"] }
type "B" { is_a = ["A"] }
`},
			wantErr: "cycle",
		},
		{
			name:    "manifest collides with module",
			files:   map[string]string{"env.hcl": `package "Env" {}`},
			wantErr: "conflicts",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := testutil.RunIntegrationTest(t, tc.files, &env_vars.Module{})
			require.Error(t, result.Err)
			assert.Contains(t, result.Err.Error(), tc.wantErr)
			assert.Nil(t, result.App)
		})
	}
}
