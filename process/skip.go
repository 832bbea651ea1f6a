package process

import (
	"io"

	"github.com/rfielding/csp-lts/csphash"
	"github.com/rfielding/csp-lts/event"
)

var scopeSkip = csphash.NewScope()

// Skip is SKIP (§4.5): immediately engages in ✔ and then behaves as STOP.
type Skip struct{ base }

func (s *Skip) Initials(sink func(event.Event)) {
	sink(s.owner.Tick())
}

func (s *Skip) Afters(a event.Event, sink func(Process)) {
	if a.Index() == s.owner.Tick().Index() {
		sink(s.owner.Stop())
	}
}

func (s *Skip) Subprocesses(func(Process)) {}

func (s *Skip) Hash() uint64 { return csphash.New(scopeSkip).Value() }

func (s *Skip) Equals(other Process) bool {
	_, ok := other.(*Skip)
	return ok
}

func (s *Skip) Precedence() int { return 1 }

func (s *Skip) Print(w io.Writer) { io.WriteString(w, "SKIP") }
