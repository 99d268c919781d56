package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedefinition(t *testing.T) {
	p := New("DESCR")
	require.NoError(t, p.Define(TInt, "X,XXX,ZZZ", "value 1"))
	require.NoError(t, p.Define(TInt, "Y,YYY,WWW", "value 2"))
	require.NoError(t, p.Define(TInt, "A", "non-optional value"))
	require.NoError(t, p.DefineDefault(TInt, "K", "optional value", 10))

	// The declared type is fixed for every name of the group.
	assert.ErrorIs(t, p.Define(TFloat, "X", "redefined X"), ErrRedefinition)
	assert.ErrorIs(t, p.Define(TFloat, "XXX", "redefined X"), ErrRedefinition)
	assert.ErrorIs(t, p.Define(TFloat, "ZZZ", "redefined X"), ErrRedefinition)

	// Same type any number of times is fine.
	require.NoError(t, p.Define(TInt, "X", "redefined X"))
	require.NoError(t, p.Define(TInt, "XXX", "redefined X"))
	require.NoError(t, p.Define(TInt, "ZZZ", "redefined X"))

	// Two existing names from different groups cannot merge.
	assert.ErrorIs(t, p.Define(TInt, "X,Y", "redefined X"), ErrRedefinition)

	// Extending a group with new aliases is a merge, not an error.
	require.NoError(t, p.Define(TInt, "X,XXX", "redefined X"))
	require.NoError(t, p.Define(TInt, "X,XXX,QQQ", "redefined X"))
	require.NoError(t, p.Define(TInt, "Y,TTT", "redefined Y"))

	// Optionality upgrades but never downgrades.
	require.NoError(t, p.DefineDefault(TInt, "A,B", "make optional", 1))
	require.NoError(t, p.Define(TInt, "M,K", "should still be optional"))

	_, err := p.ParseString("test -X 12 --TTT 45")
	require.NoError(t, err)

	x, err := p.Int64("X")
	require.NoError(t, err)
	q, err := p.Int64("QQQ")
	require.NoError(t, err)
	assert.Equal(t, x, q)
	assert.Equal(t, int64(12), x)

	y, err := p.Int64("Y")
	require.NoError(t, err)
	assert.Equal(t, int64(45), y)

	a, err := p.Int64("A")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a)

	k, err := p.Int64("K")
	require.NoError(t, err)
	assert.Equal(t, int64(10), k)

	m, err := p.Int64("M")
	require.NoError(t, err)
	assert.Equal(t, int64(10), m)
}

func TestRedefinitionOrderIndependence(t *testing.T) {
	t.Run("AliasFirst", func(t *testing.T) {
		p := New("DESCR")
		require.NoError(t, p.Define(TInt, "X,XXX", "value"))
		assert.ErrorIs(t, p.Define(TFloat, "XXX,NEW", "other type via alias"), ErrRedefinition)
		// The failed call must not leave the new name behind.
		assert.NotContains(t, p.Names(), "NEW")
	})

	t.Run("NameFirst", func(t *testing.T) {
		p := New("DESCR")
		require.NoError(t, p.Define(TInt, "X", "value"))
		assert.ErrorIs(t, p.Define(TFloat, "NEW,X", "other type via primary"), ErrRedefinition)
		assert.NotContains(t, p.Names(), "NEW")
	})
}

func TestAliasGroupSharesValue(t *testing.T) {
	p := New("DESCR")
	require.NoError(t, p.Define(TInt, "X,XXX,ZZZ", "value"))
	_, err := p.ParseString("test --XXX 7")
	require.NoError(t, err)

	for _, name := range []string{"X", "XXX", "ZZZ"} {
		v, err := p.Int64(name)
		require.NoError(t, err)
		assert.Equal(t, int64(7), v)
	}

	e, err := p.Get("ZZZ")
	require.NoError(t, err)
	assert.Equal(t, "X", e.Name())
	assert.ElementsMatch(t, []string{"XXX", "ZZZ"}, e.Aliases())
}

func TestDefineEmptyName(t *testing.T) {
	p := New("DESCR")
	assert.ErrorIs(t, p.Define(TInt, "", "empty"), ErrName)
	assert.ErrorIs(t, p.Define(TInt, "X,,Y", "empty alias"), ErrName)
	assert.Zero(t, p.Len())
}

func TestDefineInvalidType(t *testing.T) {
	p := New("DESCR")
	assert.Error(t, p.Define(Type{kind: KindEnum}, "E", "enum without table"))
	assert.Error(t, p.Define(SeqOf(SeqOf(TInt)), "S", "nested sequence"))
}

func TestOptionalUpgradeKeepsAliases(t *testing.T) {
	p := New("DESCR")
	require.NoError(t, p.Define(TInt, "X,XXX", "value"))
	require.NoError(t, p.DefineDefault(TInt, "X", "now optional", 3))

	_, err := p.ParseString("test")
	require.NoError(t, err)

	e, err := p.Get("XXX")
	require.NoError(t, err)
	assert.True(t, e.Optional())

	v, err := p.Int64("XXX")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}
