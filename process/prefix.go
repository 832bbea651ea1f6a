package process

import (
	"io"

	"github.com/rfielding/csp-lts/csphash"
	"github.com/rfielding/csp-lts/event"
)

var scopePrefix = csphash.NewScope()

// Prefix is a → p (§4.5): engages in a once, then behaves as p. a may be an
// ordinary visible event; whether τ or ✔ are legal prefixes is a parser
// concern (§6, csp0.Loader), not something this type rejects.
type Prefix struct {
	base
	a event.Event
	p Process
}

func (n *Prefix) Initials(sink func(event.Event)) { sink(n.a) }

func (n *Prefix) Afters(a event.Event, sink func(Process)) {
	if a.Index() == n.a.Index() {
		sink(n.p)
	}
}

func (n *Prefix) Subprocesses(sink func(Process)) { sink(n.p) }

func (n *Prefix) Hash() uint64 {
	return csphash.New(scopePrefix).AddUint64(uint64(n.a.Index())).AddUint64(n.p.Hash()).Value()
}

func (n *Prefix) Equals(other Process) bool {
	o, ok := other.(*Prefix)
	if !ok {
		return false
	}
	return n.a.Index() == o.a.Index() && n.p == o.p
}

func (n *Prefix) Precedence() int { return 1 }

func (n *Prefix) Print(w io.Writer) {
	io.WriteString(w, n.a.Name())
	io.WriteString(w, " → ")
	printSubprocess(w, n.p, n.Precedence())
}
