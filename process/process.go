// Package process implements the process-term model and its operational
// semantics (§1, §3, §4): the Process node contract, the hash-consing Env
// that owns every canonical node, and the seven operator variants (Stop,
// Skip, Prefix, ExternalChoice, InternalChoice, Interleave,
// SequentialComposition).
package process

import (
	"io"
	"strings"

	"github.com/rfielding/csp-lts/event"
)

// Process is an immutable node in the LTS (§3). Every operator in this
// package implements it; clients only ever hold non-owning references
// returned by an Env's factories, and structural equality reduces to
// pointer identity because of hash-consing (§3 invariants).
type Process interface {
	// Initials pushes every event p may immediately engage in into sink,
	// including τ and ✔ where applicable (§4.4).
	Initials(sink func(event.Event))
	// Afters pushes every successor reachable from p by performing a into
	// sink (§4.4).
	Afters(a event.Event, sink func(Process))
	// Subprocesses pushes p's direct operands into sink, used for
	// traversal and pretty-printing (§4.4).
	Subprocesses(sink func(Process))

	// Hash is p's structural, per-operator-salted digest (§3, §4.2).
	Hash() uint64
	// Equals reports structural equality; two canonical Processes are
	// Equals iff they are the same pointer (§3 invariant).
	Equals(other Process) bool
	// Precedence is the operator binding strength used only by Print
	// (§4.6).
	Precedence() int
	// Print emits p's canonical human form (§4.6).
	Print(w io.Writer)

	// Index is the stable, dense-in-creation-order integer the owning Env
	// assigned this node on first interning (§3).
	Index() int
}

// InitialsSet is the set-valued convenience derived from the callback form
// (§4.4).
func InitialsSet(p Process) event.Set {
	out := event.NewSet()
	p.Initials(func(e event.Event) { out.Add(e) })
	return out
}

// AftersSet is the set-valued convenience derived from the callback form
// (§4.4).
func AftersSet(p Process, a event.Event) Set {
	out := NewSet()
	p.Afters(a, func(q Process) { out.Add(q) })
	return out
}

// SubprocessesSet is the set-valued convenience derived from the callback
// form (§4.4).
func SubprocessesSet(p Process) Set {
	out := NewSet()
	p.Subprocesses(func(q Process) { out.Add(q) })
	return out
}

// String renders p's canonical form (§4.6).
func String(p Process) string {
	var sb strings.Builder
	p.Print(&sb)
	return sb.String()
}
