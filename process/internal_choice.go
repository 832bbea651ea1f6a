package process

import (
	"io"

	"github.com/rfielding/csp-lts/csphash"
	"github.com/rfielding/csp-lts/event"
)

var scopeInternalChoice = csphash.NewScope()

// InternalChoice is ⊓ ps (§4.5): silently commits to one operand. Its only
// initial event is τ, one per operand, each leading to that operand
// unchanged.
type InternalChoice struct {
	base
	ps Set
}

func (n *InternalChoice) Initials(sink func(event.Event)) {
	if n.ps.Len() == 0 {
		return
	}
	sink(n.owner.Tau())
}

func (n *InternalChoice) Afters(a event.Event, sink func(Process)) {
	if a.Index() != n.owner.Tau().Index() {
		return
	}
	for _, p := range n.ps.Sorted() {
		sink(p)
	}
}

func (n *InternalChoice) Subprocesses(sink func(Process)) {
	for _, p := range n.ps.Sorted() {
		sink(p)
	}
}

func (n *InternalChoice) Hash() uint64 {
	return csphash.New(scopeInternalChoice).AddUint64(n.ps.Hash()).Value()
}

func (n *InternalChoice) Equals(other Process) bool {
	o, ok := other.(*InternalChoice)
	if !ok {
		return false
	}
	return n.ps.Equals(o.ps)
}

func (n *InternalChoice) Precedence() int { return 2 }

func (n *InternalChoice) Print(w io.Writer) {
	printChoiceLike(w, n.ps, "⊓", n.Precedence())
}
