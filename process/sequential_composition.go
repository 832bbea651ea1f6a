package process

import (
	"io"

	"github.com/rfielding/csp-lts/csphash"
	"github.com/rfielding/csp-lts/event"
)

var scopeSequentialComposition = csphash.NewScope()

// SequentialComposition is p ; q (§4.5): behaves as p until p terminates
// (✔), at which point control passes to q via an implicit τ. p's ✔ is
// never itself visible on p ; q.
type SequentialComposition struct {
	base
	p Process
	q Process
}

func (n *SequentialComposition) Initials(sink func(event.Event)) {
	tick := n.owner.Tick()
	tau := n.owner.Tau()
	sawTau := false
	n.p.Initials(func(e event.Event) {
		switch e.Index() {
		case tick.Index():
			if !sawTau {
				sawTau = true
				sink(tau)
			}
		case tau.Index():
			if !sawTau {
				sawTau = true
				sink(tau)
			}
		default:
			sink(e)
		}
	})
}

func (n *SequentialComposition) Afters(a event.Event, sink func(Process)) {
	tick := n.owner.Tick()
	tau := n.owner.Tau()
	switch {
	case a.Index() == tick.Index():
		return
	case a.Index() == tau.Index():
		n.p.Afters(tau, func(pPrime Process) {
			sink(n.owner.SequentialComposition(pPrime, n.q))
		})
		n.p.Afters(tick, func(Process) {
			sink(n.q)
		})
	default:
		n.p.Afters(a, func(pPrime Process) {
			sink(n.owner.SequentialComposition(pPrime, n.q))
		})
	}
}

func (n *SequentialComposition) Subprocesses(sink func(Process)) {
	sink(n.p)
	sink(n.q)
}

func (n *SequentialComposition) Hash() uint64 {
	return csphash.New(scopeSequentialComposition).AddUint64(n.p.Hash()).AddUint64(n.q.Hash()).Value()
}

func (n *SequentialComposition) Equals(other Process) bool {
	o, ok := other.(*SequentialComposition)
	if !ok {
		return false
	}
	return n.p == o.p && n.q == o.q
}

func (n *SequentialComposition) Precedence() int { return 3 }

func (n *SequentialComposition) Print(w io.Writer) {
	printSubprocess(w, n.p, n.Precedence())
	io.WriteString(w, " ; ")
	printSubprocess(w, n.q, n.Precedence())
}
