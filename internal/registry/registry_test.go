package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

func noop(context.Context, *datapkg.Handle) (any, error) { return nil, nil }

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()
	a := datapkg.Define("A", "1").Build()
	b := datapkg.Define("B", "1").Build()
	r.Register(b)
	r.Register(a)

	got, ok := r.Lookup("A")
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = r.Lookup("C")
	assert.False(t, ok)

	assert.Equal(t, []string{"B", "A"}, r.Names())
}

func TestRegistry_RegisterDuplicatePanics(t *testing.T) {
	r := New()
	r.Register(datapkg.Define("A", "1").Build())

	assert.PanicsWithValue(t, "data package with name 'A' already registered", func() {
		r.Register(datapkg.Define("A", "2").Build())
	})
	assert.Panics(t, func() { r.Register(nil) })
}

func TestRegistry_WithTaxonomy(t *testing.T) {
	tx := NewTaxonomy()
	r := New(WithTaxonomy(tx))
	assert.Same(t, tx, r.Taxonomy())
	assert.NotNil(t, New().Taxonomy())
}
