package process

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rfielding/csp-lts/event"
)

// Hooks lets a caller observe interning activity without this package
// depending on any particular instrumentation library; metrics.Registry
// implements it (§2a, §3a).
type Hooks interface {
	NodeInterned(kind string)
	HashHit()
	HashMiss()
	// EventRegistrySize reports the owning Env's event.Registry size every
	// time it grows by one (§2a's "live event-registry size" gauge).
	EventRegistrySize(size int)
}

type noopHooks struct{}

func (noopHooks) NodeInterned(string)   {}
func (noopHooks) HashHit()              {}
func (noopHooks) HashMiss()             {}
func (noopHooks) EventRegistrySize(int) {}

// Env is the hash-consing environment (§4.3): the sole owner of every
// canonical Process it creates, and of the event.Registry those Processes'
// events are drawn from. It is not safe for concurrent use (§5); give each
// goroutine its own Env.
type Env struct {
	id       uuid.UUID
	logger   zerolog.Logger
	hooks    Hooks
	registry *event.Registry

	table     map[uint64][]Process
	nextIndex int

	stop Process
	skip Process
}

// Option configures an Env at construction time.
type Option func(*Env)

// WithLogger attaches a zerolog.Logger that Env uses for Debug-level
// interning diagnostics (§2a). The default is zerolog.Nop(), so an Env
// built with no options logs nothing.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Env) { e.logger = l }
}

// WithMetrics attaches Hooks an Env notifies on every intern decision
// (§2a, §3a). The default hooks are no-ops.
func WithMetrics(h Hooks) Option {
	return func(e *Env) {
		if h != nil {
			e.hooks = h
		}
	}
}

// WithID fixes the Env's correlation id, overriding the random uuid.New
// default (§2a). Mainly useful in tests that assert on logged fields.
func WithID(id uuid.UUID) Option {
	return func(e *Env) { e.id = id }
}

// New returns an Env with its own event.Registry, STOP and SKIP already
// interned as indices 1 and 2 respectively.
func New(opts ...Option) *Env {
	e := &Env{
		logger:   zerolog.Nop(),
		hooks:    noopHooks{},
		registry: event.NewRegistry(),
		table:    make(map[uint64][]Process),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.id == uuid.Nil {
		e.id = uuid.New()
	}
	e.logger = e.logger.With().Str("env", e.id.String()).Logger()
	e.registry.SetObserver(e.onEventRegistered)

	e.stop = e.intern(&Stop{}, "Stop")
	e.skip = e.intern(&Skip{}, "Skip")
	return e
}

// ID returns the Env's correlation id, logged against every Debug record it
// emits.
func (e *Env) ID() uuid.UUID { return e.id }

// Logger returns the zerolog.Logger this Env logs interning and registration
// diagnostics to, for callers (e.g. lts.TauClose) that want to log against
// the same sink.
func (e *Env) Logger() zerolog.Logger { return e.logger }

// onEventRegistered is the event.Registry observer installed by New: it logs
// the new registration at Debug level and forwards the registry's resulting
// size to Hooks (§2a).
func (e *Env) onEventRegistered(name string, index event.Index, size int) {
	e.logger.Debug().Str("name", name).Uint32("index", uint32(index)).Int("size", size).Msg("event registered")
	e.hooks.EventRegistrySize(size)
}

// Registry returns the event.Registry owned by this Env. Events from a
// different Env's Registry must never be passed to this Env's factories;
// doing so is undefined (the index namespaces happen to coincide, or
// don't, by accident).
func (e *Env) Registry() *event.Registry { return e.registry }

// Tau returns this Env's silent event.
func (e *Env) Tau() event.Event { return e.registry.Tau() }

// Tick returns this Env's termination event.
func (e *Env) Tick() event.Event { return e.registry.Tick() }

// intern canonicalises candidate: if a structurally-equal Process already
// exists it is returned and candidate is discarded, otherwise candidate is
// assigned the next dense index, recorded as this Process's owner, and
// becomes the new canonical representative (§3, §4.3).
func (e *Env) intern(candidate Process, kind string) Process {
	fp := candidate.Hash()
	bucket := e.table[fp]
	for _, existing := range bucket {
		if existing.Equals(candidate) {
			e.hooks.HashHit()
			e.logger.Debug().Str("kind", kind).Uint64("hash", fp).Int("index", existing.Index()).Msg("intern hit")
			return existing
		}
	}
	e.hooks.HashMiss()
	e.nextIndex++
	if ob, ok := candidate.(ownable); ok {
		ob.setOwner(e.nextIndex, e)
	} else {
		panic(errors.AssertionFailedf("process: %T does not embed process.base", candidate))
	}
	e.table[fp] = append(bucket, candidate)
	e.hooks.NodeInterned(kind)
	e.logger.Debug().Str("kind", kind).Uint64("hash", fp).Int("index", candidate.Index()).Msg("intern miss")
	return candidate
}

// checkOwner panics with an assertion failure if any of ps was not built by
// e (§7.2: mixing Processes from two Envs is a programmer error, not a
// runtime condition callers can recover from).
func (e *Env) checkOwner(ps ...Process) {
	for _, p := range ps {
		ob, ok := p.(ownable)
		if !ok {
			panic(errors.AssertionFailedf("process: %T does not embed process.base", p))
		}
		if ob.ownerEnv() != e {
			panic(errors.AssertionFailedf("process: operand %s was built by a different Env", String(p)))
		}
	}
}

func (e *Env) checkOwnerSet(ps Set) {
	for _, p := range ps {
		e.checkOwner(p)
	}
}

// Stop returns the canonical STOP process (§4.5).
func (e *Env) Stop() Process { return e.stop }

// Skip returns the canonical SKIP process (§4.5).
func (e *Env) Skip() Process { return e.skip }

// Prefix returns the canonical a → p (§4.5).
func (e *Env) Prefix(a event.Event, p Process) Process {
	e.checkOwner(p)
	return e.intern(&Prefix{a: a, p: p}, "Prefix")
}

// ExternalChoice returns the canonical □ ps (§4.5). Two or more operands are
// the ordinary case; a single operand still yields a distinct node from its
// operand (the "singleton does not collapse" edge case in §4.5/§8).
func (e *Env) ExternalChoice(ps ...Process) Process {
	return e.ExternalChoiceSet(NewSet(ps...))
}

// ExternalChoiceSet is ExternalChoice taking an already-built Set, used
// internally when constructing a successor from an existing operand set.
func (e *Env) ExternalChoiceSet(ps Set) Process {
	e.checkOwnerSet(ps)
	return e.intern(&ExternalChoice{ps: ps}, "ExternalChoice")
}

// InternalChoice returns the canonical ⊓ ps (§4.5).
func (e *Env) InternalChoice(ps ...Process) Process {
	return e.InternalChoiceSet(NewSet(ps...))
}

// InternalChoiceSet is InternalChoice taking an already-built Set.
func (e *Env) InternalChoiceSet(ps Set) Process {
	e.checkOwnerSet(ps)
	return e.intern(&InternalChoice{ps: ps}, "InternalChoice")
}

// Interleave returns the canonical ⫴ ps (§4.5).
func (e *Env) Interleave(ps ...Process) Process {
	return e.InterleaveSet(NewSet(ps...))
}

// InterleaveSet is Interleave taking an already-built Set.
func (e *Env) InterleaveSet(ps Set) Process {
	e.checkOwnerSet(ps)
	return e.intern(&Interleave{ps: ps}, "Interleave")
}

// SequentialComposition returns the canonical p ; q (§4.5).
func (e *Env) SequentialComposition(p, q Process) Process {
	e.checkOwner(p, q)
	return e.intern(&SequentialComposition{p: p, q: q}, "SequentialComposition")
}
