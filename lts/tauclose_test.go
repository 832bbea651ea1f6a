package lts_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/csp-lts/lts"
	"github.com/rfielding/csp-lts/process"
)

func TestTauClosureIncludesSeedAndTauSuccessors(t *testing.T) {
	e := process.New()
	b := e.Registry().Event("b")
	c := e.Registry().Event("c")
	seed := e.InternalChoice(e.Prefix(b, e.Stop()), e.Prefix(c, e.Stop()))

	closure := lts.TauClosure(seed, e.Tau(), zerolog.Nop())

	require.True(t, closure.Has(seed))
	require.Equal(t, 3, closure.Len()) // seed, b→STOP, c→STOP
}

func TestTauClosureOfAProcessWithNoTauIsJustItself(t *testing.T) {
	e := process.New()
	closure := lts.TauClosure(e.Stop(), e.Tau(), zerolog.Nop())

	require.Equal(t, 1, closure.Len())
	require.True(t, closure.Has(e.Stop()))
}

func TestTauCloseIsAFixpoint(t *testing.T) {
	e := process.New()
	a := e.Registry().Event("a")
	inner := e.InternalChoice(e.Stop(), e.Prefix(a, e.Stop()))
	outer := e.InternalChoice(inner, e.Stop())

	closure := lts.TauClosure(outer, e.Tau(), zerolog.Nop())

	require.True(t, closure.Has(outer))
	require.True(t, closure.Has(inner))
	require.True(t, closure.Has(e.Stop()))
	require.True(t, closure.Has(e.Prefix(a, e.Stop())))
}
