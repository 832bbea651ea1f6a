package process

import (
	"io"

	"github.com/rfielding/csp-lts/csphash"
	"github.com/rfielding/csp-lts/event"
)

var scopeInterleave = csphash.NewScope()

// Interleave is ⫴ ps (§4.5): every operand offers its own events
// independently and advances alone; the whole term terminates only when
// every operand simultaneously offers ✔, at which point it becomes STOP.
type Interleave struct {
	base
	ps Set
}

func (n *Interleave) Initials(sink func(event.Event)) {
	tick := n.owner.Tick()
	allTick := n.ps.Len() > 0
	for _, p := range n.ps {
		has := false
		p.Initials(func(e event.Event) {
			if e.Index() == tick.Index() {
				has = true
				return
			}
			sink(e)
		})
		if !has {
			allTick = false
		}
	}
	if allTick {
		sink(tick)
	}
}

func (n *Interleave) Afters(a event.Event, sink func(Process)) {
	if a.Index() == n.owner.Tick().Index() {
		if n.ps.Len() == 0 {
			return
		}
		for _, p := range n.ps {
			if !InitialsSet(p).Has(a) {
				return
			}
		}
		sink(n.owner.Stop())
		return
	}
	for _, p := range n.ps {
		rest := n.ps.Copy()
		rest.Remove(p)
		p.Afters(a, func(pPrime Process) {
			next := rest.Copy()
			next.Add(pPrime)
			sink(n.owner.InterleaveSet(next))
		})
	}
}

func (n *Interleave) Subprocesses(sink func(Process)) {
	for _, p := range n.ps.Sorted() {
		sink(p)
	}
}

func (n *Interleave) Hash() uint64 {
	return csphash.New(scopeInterleave).AddUint64(n.ps.Hash()).Value()
}

func (n *Interleave) Equals(other Process) bool {
	o, ok := other.(*Interleave)
	if !ok {
		return false
	}
	return n.ps.Equals(o.ps)
}

func (n *Interleave) Precedence() int { return 4 }

func (n *Interleave) Print(w io.Writer) {
	printChoiceLike(w, n.ps, "⫴", n.Precedence())
}
