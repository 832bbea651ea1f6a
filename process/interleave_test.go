package process_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rfielding/csp-lts/process"
)

func TestInterleaveOffersBothOperandsIndependently(t *testing.T) {
	e := process.New()
	a := e.Registry().Event("a")
	b := e.Registry().Event("b")
	term := e.Interleave(e.Prefix(a, e.Skip()), e.Prefix(b, e.Skip()))

	initials := process.InitialsSet(term)
	require.Equal(t, 2, initials.Len())
	require.True(t, initials.Has(a))
	require.True(t, initials.Has(b))
	require.False(t, initials.Has(e.Tick()))

	afters := process.AftersSet(term, a)
	require.Equal(t, 1, afters.Len())
	require.True(t, process.InitialsSet(afters.Sorted()[0]).Has(b))
}

func TestInterleaveTerminatesOnlyWhenBothOperandsTerminate(t *testing.T) {
	e := process.New()
	term := e.Interleave(e.Skip(), e.Skip())

	require.True(t, process.InitialsSet(term).Has(e.Tick()))
	afters := process.AftersSet(term, e.Tick())
	require.Equal(t, 1, afters.Len())
	require.True(t, afters.Has(e.Stop()))
}

func TestInterleaveDoesNotTerminateWhenOnlyOneOperandCan(t *testing.T) {
	e := process.New()
	a := e.Registry().Event("a")
	term := e.Interleave(e.Skip(), e.Prefix(a, e.Skip()))

	require.False(t, process.InitialsSet(term).Has(e.Tick()))
	require.Equal(t, 0, process.AftersSet(term, e.Tick()).Len())
}
