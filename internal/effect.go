package internal

// NewEffect allocates an effect node, runs the thunk once inside it to
// collect its initial deps, and attaches it to any ambient outer
// subscriber so scopes can dispose it later.
func (r *Runtime) NewEffect(run func()) *Node {
	e := r.newNode(KindEffect, FlagWatching|FlagRecursedCheck)
	e.run = run
	prev := r.SetActiveSub(e)
	if prev != nil {
		r.link(e, prev, 0)
	}
	run()
	r.SetActiveSub(prev)
	e.flags &^= FlagRecursedCheck
	return e
}

// NewScope allocates a scope node and runs setup inside it. Effects and
// scopes created during setup become subs of the scope.
func (r *Runtime) NewScope(setup func()) *Node {
	s := r.newNode(KindScope, FlagNone)
	prev := r.SetActiveSub(s)
	if prev != nil {
		r.link(s, prev, 0)
	}
	setup()
	r.SetActiveSub(prev)
	return s
}

// runEffect executes a queued effect if its flags show a confirmed or
// validated change; otherwise it just rearms the watching bit.
func (r *Runtime) runEffect(e *Node) {
	flags := e.flags
	dirty := flags&FlagDirty != 0
	if !dirty && flags&FlagPending != 0 {
		if e.deps == nil {
			panic("BUG: pending effect has no deps")
		}
		dirty = r.checkDirty(e.deps, e)
	}

	if !dirty {
		e.flags = FlagWatching
		return
	}

	r.cycle++
	e.depsTail = nil
	e.flags = FlagWatching | FlagRecursedCheck
	prev := r.SetActiveSub(e)

	e.run()

	r.SetActiveSub(prev)
	e.flags &^= FlagRecursedCheck
	r.purgeDeps(e)
}

// Dispose detaches an effect or scope from the graph: children are
// unwatched through their purged edges and the node itself is unlinked
// from its parent. Safe to call more than once.
func (r *Runtime) Dispose(n *Node) {
	r.disposeSub(n)
}

func (r *Runtime) disposeSub(n *Node) {
	n.depsTail = nil
	n.flags = FlagNone
	r.purgeDeps(n)
	if l := n.subs; l != nil {
		r.unlink(l, l.sub)
	}
}

// Trigger runs f under a throwaway watching subscriber and then
// force-invalidates every downstream consumer of the deps f read, without
// requiring those deps to change value.
func (r *Runtime) Trigger(f func()) {
	sub := r.newNode(KindScope, FlagWatching)
	prev := r.SetActiveSub(sub)
	f()
	r.SetActiveSub(prev)

	for l := sub.deps; l != nil; {
		dep := l.dep
		l = r.unlink(l, sub)
		if dep.subs != nil {
			sub.flags = FlagNone
			r.propagate(dep.subs)
			r.shallowPropagate(dep.subs)
		}
	}

	if r.batchDepth == 0 {
		r.Flush()
	}
}
