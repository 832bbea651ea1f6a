package process

import (
	"sort"

	"github.com/rfielding/csp-lts/csphash"
)

// Bag is a finite multiset of canonical Process references: unlike Set it
// preserves multiplicity (§3). No operator in this package takes a Bag
// operand — external choice, internal choice and interleave are all
// genuinely set-valued in the surface syntax (§4.5), and hash-consing means
// a textually repeated operand is already one canonical member, not two.
// Bag exists for the data model's own sake and for callers (lts.WriteDOT)
// that need to count how many distinct paths land on the same successor.
type Bag map[int]bagEntry

type bagEntry struct {
	p     Process
	count int
}

// NewBag returns an empty Bag.
func NewBag() Bag { return make(Bag) }

// Add increments p's multiplicity by one.
func (b Bag) Add(p Process) {
	e := b[p.Index()]
	e.p = p
	e.count++
	b[p.Index()] = e
}

// Count returns p's multiplicity, zero if absent.
func (b Bag) Count(p Process) int { return b[p.Index()].count }

// Len returns the number of distinct members (not the sum of multiplicities).
func (b Bag) Len() int { return len(b) }

// BagMember is one distinct Process in a Bag together with its multiplicity.
type BagMember struct {
	Process Process
	Count   int
}

// Sorted returns the bag's distinct members with their multiplicities,
// ordered by ascending canonical index.
func (b Bag) Sorted() []BagMember {
	out := make([]BagMember, 0, len(b))
	for _, e := range b {
		out = append(out, BagMember{Process: e.p, Count: e.count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Process.Index() < out[j].Process.Index() })
	return out
}

var scopeBag = csphash.NewScope()

// Hash combines the bag's members' hashes and multiplicities in
// canonical-index order (§3, §4.2).
func (b Bag) Hash() uint64 {
	sorted := b.Sorted()
	h := csphash.New(scopeBag).AddInt(len(sorted))
	for _, m := range sorted {
		h.AddUint64(m.Process.Hash()).AddInt(m.Count)
	}
	return h.Value()
}
