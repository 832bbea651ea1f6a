package lts_test

// Property tests over randomly generated terms (§8's τ-closure monotonicity
// and idempotence invariants), mirroring process/property_test.go's
// hand-rolled generator rather than pinning a single fixed shape.

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/csp-lts/lts"
	"github.com/rfielding/csp-lts/process"
)

const propertyTrials = 40

// genTerm mirrors process/property_test.go's generator; duplicated locally
// since it is a small, package-local test helper rather than public API.
func genTerm(rng *rand.Rand, e *process.Env, depth int) process.Process {
	if depth <= 0 {
		if rng.Intn(2) == 0 {
			return e.Stop()
		}
		return e.Skip()
	}
	switch rng.Intn(7) {
	case 0:
		return e.Stop()
	case 1:
		return e.Skip()
	case 2:
		a := e.Registry().Event(fmt.Sprintf("e%d", rng.Intn(3)))
		return e.Prefix(a, genTerm(rng, e, depth-1))
	case 3:
		return e.ExternalChoice(genTerm(rng, e, depth-1), genTerm(rng, e, depth-1))
	case 4:
		return e.InternalChoice(genTerm(rng, e, depth-1), genTerm(rng, e, depth-1))
	case 5:
		return e.Interleave(genTerm(rng, e, depth-1), genTerm(rng, e, depth-1))
	default:
		return e.SequentialComposition(genTerm(rng, e, depth-1), genTerm(rng, e, depth-1))
	}
}

func TestPropertyTauCloseContainsTheSeed(t *testing.T) {
	for seed := int64(0); seed < propertyTrials; seed++ {
		e := process.New()
		p := genTerm(rand.New(rand.NewSource(seed)), e, 4)

		closure := lts.TauClosure(p, e.Tau(), zerolog.Nop())
		require.True(t, closure.Has(p), "seed %d: closure dropped its own seed", seed)
	}
}

func TestPropertyTauCloseIsIdempotent(t *testing.T) {
	for seed := int64(0); seed < propertyTrials; seed++ {
		e := process.New()
		p := genTerm(rand.New(rand.NewSource(seed)), e, 4)

		once := lts.TauClosure(p, e.Tau(), zerolog.Nop())
		twice := lts.TauClose(once, e.Tau(), zerolog.Nop())
		require.True(t, once.Equals(twice), "seed %d: closing an already-closed set changed it", seed)
	}
}

func TestPropertyTauCloseIsMonotonicInItsSeed(t *testing.T) {
	for seed := int64(0); seed < propertyTrials; seed++ {
		e := process.New()
		rng := rand.New(rand.NewSource(seed))
		p := genTerm(rng, e, 3)
		q := genTerm(rng, e, 3)

		seedSet := process.NewSet(p, q)
		closure := lts.TauClose(seedSet, e.Tau(), zerolog.Nop())

		for _, member := range seedSet.Sorted() {
			require.True(t, closure.Has(member), "seed %d: closure lost a seed member", seed)
		}
	}
}
