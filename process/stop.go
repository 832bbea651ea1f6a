package process

import (
	"io"

	"github.com/rfielding/csp-lts/csphash"
	"github.com/rfielding/csp-lts/event"
)

var scopeStop = csphash.NewScope()

// Stop is STOP (§4.5): engages in no event and has no successors.
type Stop struct{ base }

func (s *Stop) Initials(func(event.Event))       {}
func (s *Stop) Afters(event.Event, func(Process)) {}
func (s *Stop) Subprocesses(func(Process))        {}

func (s *Stop) Hash() uint64 { return csphash.New(scopeStop).Value() }

func (s *Stop) Equals(other Process) bool {
	_, ok := other.(*Stop)
	return ok
}

func (s *Stop) Precedence() int { return 1 }

func (s *Stop) Print(w io.Writer) { io.WriteString(w, "STOP") }
