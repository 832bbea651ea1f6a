package lts

import (
	"github.com/rs/zerolog"

	"github.com/rfielding/csp-lts/event"
	"github.com/rfielding/csp-lts/process"
)

// NormalisedProcess is a deterministic, single-successor-per-event view
// over the underlying (possibly nondeterministic) LTS (§4.5). It is not a
// full subset-construction determiniser: it does not preserve every
// behaviour of the underlying process, only a single deterministic run
// through it, which is what DeterminizeStep below implements.
type NormalisedProcess interface {
	// Initials returns the visible (non-τ) events on offer.
	Initials() event.Set
	// After returns the normalised successor for a, if any.
	After(a event.Event) (NormalisedProcess, bool)
	// Underlying returns the τ-closed set of raw Processes this node
	// represents.
	Underlying() process.Set
}

// DeterminizeStep is the one concrete NormalisedProcess this package
// ships: at each step it τ-closes its seed, and on a visible event picks
// the successor with the lowest canonical index whenever the underlying
// LTS offers more than one. That tie-break is arbitrary but deterministic,
// which is all a single-run adapter needs; it does not, unlike real
// subset construction, merge the other candidates into the resulting
// state.
type DeterminizeStep struct {
	tau     event.Event
	closure process.Set
	logger  zerolog.Logger
}

// NewDeterminizeStep wraps seed's τ-closure as a NormalisedProcess. logger is
// forwarded to every τ-closure computed along the way (§2a); pass
// zerolog.Nop() to log nothing.
func NewDeterminizeStep(seed process.Process, tau event.Event, logger zerolog.Logger) *DeterminizeStep {
	return &DeterminizeStep{tau: tau, closure: TauClosure(seed, tau, logger), logger: logger}
}

func (d *DeterminizeStep) Initials() event.Set {
	out := event.NewSet()
	for _, p := range d.closure {
		p.Initials(func(e event.Event) {
			if e.Index() != d.tau.Index() {
				out.Add(e)
			}
		})
	}
	return out
}

func (d *DeterminizeStep) After(a event.Event) (NormalisedProcess, bool) {
	var best process.Process
	for _, p := range d.closure.Sorted() {
		p.Afters(a, func(q process.Process) {
			if best == nil || q.Index() < best.Index() {
				best = q
			}
		})
	}
	if best == nil {
		return nil, false
	}
	return NewDeterminizeStep(best, d.tau, d.logger), true
}

func (d *DeterminizeStep) Underlying() process.Set { return d.closure }
