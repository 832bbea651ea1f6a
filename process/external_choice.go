package process

import (
	"io"

	"github.com/rfielding/csp-lts/csphash"
	"github.com/rfielding/csp-lts/event"
)

var scopeExternalChoice = csphash.NewScope()

// ExternalChoice is □ ps (§4.5): the environment resolves the choice on the
// first visible event offered by any operand. A τ move by one operand does
// not resolve the choice; it replaces that operand with its τ-successor and
// the choice remains in contention.
type ExternalChoice struct {
	base
	ps Set
}

func (n *ExternalChoice) Initials(sink func(event.Event)) {
	for _, p := range n.ps {
		p.Initials(sink)
	}
}

func (n *ExternalChoice) Afters(a event.Event, sink func(Process)) {
	if a.Index() == n.owner.Tau().Index() {
		for _, p := range n.ps {
			rest := n.ps.Copy()
			rest.Remove(p)
			p.Afters(a, func(pPrime Process) {
				next := rest.Copy()
				next.Add(pPrime)
				sink(n.owner.ExternalChoiceSet(next))
			})
		}
		return
	}
	for _, p := range n.ps {
		p.Afters(a, sink)
	}
}

func (n *ExternalChoice) Subprocesses(sink func(Process)) {
	for _, p := range n.ps.Sorted() {
		sink(p)
	}
}

func (n *ExternalChoice) Hash() uint64 {
	return csphash.New(scopeExternalChoice).AddUint64(n.ps.Hash()).Value()
}

func (n *ExternalChoice) Equals(other Process) bool {
	o, ok := other.(*ExternalChoice)
	if !ok {
		return false
	}
	return n.ps.Equals(o.ps)
}

func (n *ExternalChoice) Precedence() int { return 6 }

func (n *ExternalChoice) Print(w io.Writer) {
	printChoiceLike(w, n.ps, "□", n.Precedence())
}
