// Package lts implements derived queries over the process-term LTS (§4.5's
// "Derived queries" component): τ-closure, a normalised single-successor
// view, and a bounded DOT exporter for visual inspection.
package lts

import (
	"github.com/rs/zerolog"

	"github.com/rfielding/csp-lts/event"
	"github.com/rfielding/csp-lts/process"
)

// TauClosure returns the least set of Processes reachable from p by zero or
// more τ transitions, including p itself (§4.5, grounded on the
// least-fixpoint tau_close algorithm). logger receives a Debug-level record
// of the fixpoint's iteration count and final size (§2a); pass
// zerolog.Nop() to log nothing.
func TauClosure(p process.Process, tau event.Event, logger zerolog.Logger) process.Set {
	return TauClose(process.NewSet(p), tau, logger)
}

// TauClose extends TauClosure to a whole seed set at once: the least set
// containing seed and closed under one-step τ-successors.
func TauClose(seed process.Set, tau event.Event, logger zerolog.Logger) process.Set {
	closure := seed.Copy()
	frontier := seed.Sorted()
	iterations := 0
	for len(frontier) > 0 {
		iterations++
		var next []process.Process
		for _, p := range frontier {
			p.Afters(tau, func(q process.Process) {
				if !closure.Has(q) {
					closure.Add(q)
					next = append(next, q)
				}
			})
		}
		frontier = next
	}
	logger.Debug().Int("iterations", iterations).Int("size", closure.Len()).Msg("tau closure fixpoint")
	return closure
}
