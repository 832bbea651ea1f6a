// Package csphash implements the structural hash combinator used for
// hash-consing (§4.2): a deterministic, non-cryptographic combinator scoped
// by a per-call-site salt, so that two different operators applied to
// operands with the same fingerprint still hash differently.
package csphash

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// nextScopeID hands out the salts backing every Scope. A monotonic counter
// is simpler and safer than deriving a salt from a value's address (which
// would tie correctness to the allocator never moving the value), while
// still giving each call site a distinct, stable salt for the life of the
// process.
var nextScopeID uint64

// Scope is a per-call-site salt. Every operator implementation declares one
// package-level Scope value per operator kind (e.g. "var scopePrefix =
// csphash.NewScope()"); its salt is distinct from every other Scope's,
// which is all the "distinct salt per operator suffices" contract in §4.2
// requires.
type Scope struct{ id uint64 }

// NewScope allocates a fresh Scope with a salt distinct from every other
// Scope allocated during this process's lifetime.
func NewScope() *Scope {
	return &Scope{id: atomic.AddUint64(&nextScopeID, 1)}
}

func (s *Scope) salt() uint64 {
	return s.id
}

// Hasher accumulates values into a single 64-bit digest. The zero value is
// not usable; construct one with New.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// New returns a Hasher seeded with scope's salt.
func New(scope *Scope) *Hasher {
	h := &Hasher{d: xxhash.New()}
	h.writeUint64(scope.salt())
	return h
}

func (h *Hasher) writeUint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

// AddUint64 mixes a raw 64-bit value (an event index, another process's
// hash, ...) into the digest. Returns h so calls can be chained the way the
// original C++ implementation chains hasher(scope).add(a).add(*p).value().
func (h *Hasher) AddUint64(v uint64) *Hasher {
	h.writeUint64(v)
	return h
}

// AddInt mixes a small integer (a set's size, say) into the digest.
func (h *Hasher) AddInt(v int) *Hasher {
	return h.AddUint64(uint64(v))
}

// AddString mixes a string (an event's display name, for the rare case a
// caller hashes names directly rather than indices) into the digest.
func (h *Hasher) AddString(s string) *Hasher {
	h.writeUint64(uint64(len(s)))
	_, _ = h.d.WriteString(s)
	return h
}

// AddSorted mixes a sequence of already order-independent hashes (the hashes
// of a Process::Set's or Process::Bag's members, sorted by canonical index
// before this is called) into the digest, prefixed with the count so that
// two sets of different sizes never collide on a shared prefix.
func (h *Hasher) AddSorted(hashes []uint64) *Hasher {
	h.AddInt(len(hashes))
	for _, v := range hashes {
		h.writeUint64(v)
	}
	return h
}

// Value returns the final digest.
func (h *Hasher) Value() uint64 {
	return h.d.Sum64()
}
