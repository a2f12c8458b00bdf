package formats

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/datapkg/internal/codec"
	"github.com/specialistvlad/datapkg/internal/datapkg"
	"github.com/specialistvlad/datapkg/internal/registry"
	"github.com/specialistvlad/datapkg/internal/resolver"
)

func newResolver(t *testing.T) *resolver.Resolver {
	t.Helper()
	reg := registry.New()
	(&Module{}).Register(reg)
	return resolver.New(reg)
}

func TestFormats_Provides(t *testing.T) {
	r := newResolver(t)
	pkg, ok := r.Registry().Lookup(PackageName)
	require.True(t, ok)

	types, err := r.Registry().Provides(pkg, datapkg.Any)
	require.NoError(t, err)
	assert.Equal(t, []datapkg.Type{TypeTable, TypeNames, TypeDocument}, types)
}

func TestFormats_TableMatchesBuiltinCodecs(t *testing.T) {
	r := newResolver(t)

	v, ok, err := r.GetByName(context.Background(), PackageName, datapkg.Any)
	require.NoError(t, err)
	require.True(t, ok)

	rows, isTable := v.([]Format)
	require.True(t, isTable, "preferred representation should be the table, got %T", v)
	require.NotEmpty(t, rows)

	codecs := codec.NewRegistry()
	for _, row := range rows {
		c, found := codecs.Get(row.Name)
		require.True(t, found, "format %s has no codec", row.Name)
		assert.Equal(t, c.Extensions(), row.Extensions)
		assert.NotEmpty(t, row.MediaType)
	}
}

func TestFormats_Names(t *testing.T) {
	v, ok, err := newResolver(t).GetByName(context.Background(), PackageName, TypeNames)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"json", "yaml", "toml", "cbor", "hcl"}, v)
}

func TestFormats_Document(t *testing.T) {
	v, ok, err := newResolver(t).GetByName(context.Background(), PackageName, TypeDocument)
	require.NoError(t, err)
	require.True(t, ok)
	assert.IsType(t, []any{}, v)
}

// countingSource serves the embedded table and counts reads.
type countingSource struct {
	reads atomic.Int32
}

func (s *countingSource) Raw(context.Context, *datapkg.Package) ([]byte, error) {
	s.reads.Add(1)
	return content.ReadFile("formats.yaml")
}

func TestFormats_EachGetReadsContentOnce(t *testing.T) {
	for _, want := range []datapkg.Type{TypeTable, TypeNames, TypeDocument} {
		t.Run(string(want), func(t *testing.T) {
			src := &countingSource{}
			reg := registry.New()
			(&Module{Source: src}).Register(reg)

			_, ok, err := resolver.New(reg).GetByName(context.Background(), PackageName, want)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, int32(1), src.reads.Load())
		})
	}
}
