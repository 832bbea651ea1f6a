package process

// base supplies the bookkeeping every concrete operator embeds: the index
// and owning Env an Env's intern assigns on first canonicalization. It is
// never itself a Process; each operator type embeds it and adds the
// semantic methods (§4.5).
type base struct {
	index int
	owner *Env
}

func (b *base) Index() int { return b.index }

// ownerEnv reports which Env canonicalised this node, used by Env.checkOwner
// to reject operands built by a different Env (§7.2).
func (b *base) ownerEnv() *Env { return b.owner }

func (b *base) setOwner(index int, owner *Env) {
	b.index = index
	b.owner = owner
}

// ownable is implemented by every concrete node's embedded base.
type ownable interface {
	ownerEnv() *Env
	setOwner(index int, owner *Env)
}
