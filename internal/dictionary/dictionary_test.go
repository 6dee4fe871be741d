package dictionary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nstefanovic/folproof/pkg/fol"
)

func TestInsertAndLookup(t *testing.T) {
	d := New()
	sym := fol.FreshConstant()

	require.True(t, d.Insert("c_a", sym))
	got, ok := d.LookupByName("c_a")
	require.True(t, ok)
	require.True(t, got.Equal(sym))

	name, ok := d.LookupBySymbol(sym)
	require.True(t, ok)
	require.Equal(t, "c_a", name)
}

func TestInsertRefusesRebind(t *testing.T) {
	d := New()
	require.True(t, d.Insert("c_a", fol.FreshConstant()))
	require.False(t, d.Insert("c_a", fol.FreshConstant()))
}

func TestInnerScopeShadowsOuter(t *testing.T) {
	d := New()
	outer := fol.FreshVariable()
	d.Insert("v_x", outer)

	d.Push()
	inner := fol.FreshVariable()
	d.Insert("v_x", inner)

	got, ok := d.LookupByName("v_x")
	require.True(t, ok)
	require.True(t, got.Equal(inner))

	require.True(t, d.Pop())
	got, ok = d.LookupByName("v_x")
	require.True(t, ok)
	require.True(t, got.Equal(outer))
}

func TestPopRefusesLastScope(t *testing.T) {
	d := New()
	require.False(t, d.Pop())
	require.Equal(t, 1, d.Depth())
}

func TestMergeTopTwoPrefersInnermost(t *testing.T) {
	d := New()
	outer := fol.FreshVariable()
	d.Insert("v_x", outer)
	d.Push()
	inner := fol.FreshVariable()
	d.Insert("v_x", inner)
	d.Insert("v_y", inner)

	require.True(t, d.MergeTopTwo())
	require.Equal(t, 1, d.Depth())

	got, ok := d.LookupByName("v_x")
	require.True(t, ok)
	require.True(t, got.Equal(inner))

	_, ok = d.LookupByName("v_y")
	require.True(t, ok)
}

func TestMergeTopTwoRequiresTwoScopes(t *testing.T) {
	d := New()
	require.False(t, d.MergeTopTwo())
}

func TestLookupMissingSymbolAndName(t *testing.T) {
	d := New()
	_, ok := d.LookupByName("c_missing")
	require.False(t, ok)

	_, ok = d.LookupBySymbol(fol.FreshConstant())
	require.False(t, ok)
}
