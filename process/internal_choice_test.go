package process_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rfielding/csp-lts/process"
)

func TestInternalChoiceOnlyOffersTau(t *testing.T) {
	e := process.New()
	a := e.Registry().Event("a")
	b := e.Registry().Event("b")
	left := e.Prefix(a, e.Stop())
	right := e.Prefix(b, e.Stop())
	choice := e.InternalChoice(left, right)

	initials := process.InitialsSet(choice)
	require.Equal(t, 1, initials.Len())
	require.True(t, initials.Has(e.Tau()))
	require.Equal(t, 0, process.AftersSet(choice, a).Len())

	afters := process.AftersSet(choice, e.Tau())
	require.Equal(t, 2, afters.Len())
	require.True(t, afters.Has(left))
	require.True(t, afters.Has(right))
}

func TestInternalChoicePrintsInfixForTwoOperands(t *testing.T) {
	e := process.New()
	a := e.Registry().Event("a")
	b := e.Registry().Event("b")
	choice := e.InternalChoice(e.Prefix(a, e.Stop()), e.Prefix(b, e.Stop()))

	require.Equal(t, "a → STOP ⊓ b → STOP", process.String(choice))
}
