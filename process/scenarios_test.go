package process_test

// Literal end-to-end scenarios (§8): built directly via Env factory calls
// since no csp0.Loader grammar is implemented (§6), each asserting the
// expected rendered name and the expected initials/afters at every step.

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rfielding/csp-lts/process"
)

func TestScenarioPrefixThenStop(t *testing.T) {
	e := process.New()
	a := e.Registry().Event("a")
	term := e.Prefix(a, e.Stop())

	require.Equal(t, "a → STOP", process.String(term))
	require.True(t, process.InitialsSet(term).Has(a))
	require.True(t, process.AftersSet(term, a).Has(e.Stop()))
}

func TestScenarioExternalChoiceOfIdenticalStopIsASingleton(t *testing.T) {
	e := process.New()
	choice := e.ExternalChoice(e.Stop(), e.Stop())

	require.Equal(t, "□ {STOP}", process.String(choice))
}

func TestScenarioExternalChoiceOverPrefixAndInternalChoice(t *testing.T) {
	e := process.New()
	a := e.Registry().Event("a")
	b := e.Registry().Event("b")
	c := e.Registry().Event("c")

	term := e.ExternalChoice(
		e.Prefix(a, e.Stop()),
		e.InternalChoice(e.Prefix(b, e.Stop()), e.Prefix(c, e.Stop())),
	)

	require.Equal(t, "a → STOP □ (b → STOP ⊓ c → STOP)", process.String(term))

	tauAfters := process.AftersSet(term, e.Tau())
	require.Equal(t, 2, tauAfters.Len())
	got := make(map[string]bool)
	for _, p := range tauAfters.Sorted() {
		got[process.String(p)] = true
	}
	require.True(t, got["a → STOP □ b → STOP"])
	require.True(t, got["a → STOP □ c → STOP"])
}

func TestScenarioInterleaveOfTwoSkippingPrefixes(t *testing.T) {
	e := process.New()
	a := e.Registry().Event("a")
	b := e.Registry().Event("b")

	term := e.Interleave(e.Prefix(a, e.Skip()), e.Prefix(b, e.Skip()))

	initials := process.InitialsSet(term)
	require.Equal(t, 2, initials.Len())
	require.True(t, initials.Has(a))
	require.True(t, initials.Has(b))

	afters := process.AftersSet(term, a)
	require.Equal(t, 1, afters.Len())
	require.Equal(t, "SKIP ⫴ b → SKIP", process.String(afters.Sorted()[0]))
}

func TestScenarioSequentialCompositionOfExternalChoiceAndStop(t *testing.T) {
	e := process.New()
	a := e.Registry().Event("a")
	b := e.Registry().Event("b")

	left := e.ExternalChoice(e.Skip(), e.Prefix(a, e.Prefix(b, e.Stop())))
	term := e.SequentialComposition(left, e.Stop())

	require.Equal(t, "(SKIP □ a → b → STOP) ; STOP", process.String(term))

	afters := process.AftersSet(term, a)
	require.Equal(t, 1, afters.Len())
	require.Equal(t, "b → STOP ; STOP", process.String(afters.Sorted()[0]))

	require.True(t, process.InitialsSet(term).Has(e.Tau()))
	tauAfters := process.AftersSet(term, e.Tau())
	require.Equal(t, 1, tauAfters.Len())
	require.Equal(t, "STOP", process.String(tauAfters.Sorted()[0]))

	require.Equal(t, 0, process.AftersSet(term, e.Tick()).Len())
}
