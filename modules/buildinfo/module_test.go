package buildinfo

import (
	"context"
	"errors"
	"runtime/debug"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/datapkg/internal/datapkg"
	"github.com/specialistvlad/datapkg/internal/registry"
	"github.com/specialistvlad/datapkg/internal/resolver"
)

func TestBuild_Info(t *testing.T) {
	reg := registry.New()
	m := &Module{Read: func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: "go1.24.5",
			Main:      debug.Module{Path: "github.com/specialistvlad/datapkg", Version: "v1.2.3"},
			Settings:  []debug.BuildSetting{{Key: "vcs", Value: "git"}},
		}, true
	}}
	m.Register(reg)

	pkg, ok := reg.Lookup(PackageName)
	require.True(t, ok)
	types, err := reg.Provides(pkg, datapkg.Any)
	require.NoError(t, err)
	assert.Equal(t, []datapkg.Type{TypeInfo}, types)

	v, ok, err := resolver.New(reg).GetByName(context.Background(), PackageName, TypeInfo)
	require.NoError(t, err)
	require.True(t, ok)

	want := Info{
		Path:      "github.com/specialistvlad/datapkg",
		Version:   "v1.2.3",
		GoVersion: "go1.24.5",
		Settings:  map[string]string{"vcs": "git"},
	}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("Build.Info mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_InfoUnavailable(t *testing.T) {
	reg := registry.New()
	(&Module{Read: func() (*debug.BuildInfo, bool) { return nil, false }}).Register(reg)

	_, ok, err := resolver.New(reg).GetByName(context.Background(), PackageName, TypeInfo)
	assert.False(t, ok)
	var ce *datapkg.CoercionError
	require.True(t, errors.As(err, &ce))
	assert.ErrorContains(t, err, "build info is not available")
}
