package csphash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rfielding/csp-lts/csphash"
)

func TestSameInputsSameDigest(t *testing.T) {
	scope := csphash.NewScope()

	v1 := csphash.New(scope).AddUint64(1).AddString("a").Value()
	v2 := csphash.New(scope).AddUint64(1).AddString("a").Value()

	require.Equal(t, v1, v2)
}

func TestDifferentScopesDifferentDigests(t *testing.T) {
	scopeA := csphash.NewScope()
	scopeB := csphash.NewScope()

	va := csphash.New(scopeA).AddUint64(1).AddUint64(2).Value()
	vb := csphash.New(scopeB).AddUint64(1).AddUint64(2).Value()

	require.NotEqual(t, va, vb, "distinct scopes with the same operand fingerprint must hash differently")
}

func TestAddSortedIsLengthPrefixed(t *testing.T) {
	scope := csphash.NewScope()

	short := csphash.New(scope).AddSorted([]uint64{1, 2}).Value()
	long := csphash.New(scope).AddSorted([]uint64{1, 2, 0}).Value()

	require.NotEqual(t, short, long, "a set of two elements must not collide with a set of three that shares a prefix")
}
