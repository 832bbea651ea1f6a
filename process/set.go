package process

import (
	"sort"

	"github.com/rfielding/csp-lts/csphash"
)

// Set is a finite, deduplicated collection of canonical Process references,
// keyed by each member's owning Env index so membership is an O(1) map
// lookup (§3). External choice, internal choice and interleave all take
// their operands as a Set: a branch that textually appears twice is already
// the same canonical node, so it is already a single set member.
type Set map[int]Process

// NewSet returns a Set containing ps, deduplicated by canonical identity.
func NewSet(ps ...Process) Set {
	s := make(Set, len(ps))
	for _, p := range ps {
		s.Add(p)
	}
	return s
}

// Add inserts p into the set.
func (s Set) Add(p Process) { s[p.Index()] = p }

// Remove deletes p from the set, if present.
func (s Set) Remove(p Process) { delete(s, p.Index()) }

// Has reports whether p is a member.
func (s Set) Has(p Process) bool {
	_, ok := s[p.Index()]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int { return len(s) }

// Copy returns an independent shallow copy.
func (s Set) Copy() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Sorted returns the set's members ordered by ascending canonical index,
// the deterministic order rendering and hashing require (§3, §4.2, §4.6).
func (s Set) Sorted() []Process {
	out := make([]Process, 0, len(s))
	for _, p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })
	return out
}

// Equals reports whether s and other contain exactly the same members.
func (s Set) Equals(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

var scopeSet = csphash.NewScope()

// Hash combines the set's members' hashes in canonical-index order, so the
// result is independent of Go's randomized map iteration order (§3, §4.2).
func (s Set) Hash() uint64 {
	sorted := s.Sorted()
	hashes := make([]uint64, len(sorted))
	for i, p := range sorted {
		hashes[i] = p.Hash()
	}
	return csphash.New(scopeSet).AddSorted(hashes).Value()
}
