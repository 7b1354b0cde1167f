package internal

// Link is an edge of the dependency graph: sub depends on dep. Every link
// sits in two doubly-linked lists at once, the subscriber's dep list and
// the dependency's sub list.
type Link struct {
	// stamped at creation or reuse; answers "was this edge touched during
	// the current evaluation of sub?"
	version uint64

	dep *Node
	sub *Node

	prevDep *Link
	nextDep *Link

	prevSub *Link
	nextSub *Link
}

// link records that sub depends on dep for the current evaluation.
//
// During re-execution of a subscriber whose dependency shape is unchanged,
// depsTail acts as a write cursor advancing through the prior dep list, so
// the existing edge record is reused in place instead of reallocated.
func (r *Runtime) link(dep, sub *Node, version uint64) {
	prevDep := sub.depsTail
	if prevDep != nil && prevDep.dep == dep {
		return
	}

	var nextDep *Link
	if prevDep != nil {
		nextDep = prevDep.nextDep
	} else {
		nextDep = sub.deps
	}
	if nextDep != nil && nextDep.dep == dep {
		nextDep.version = version
		sub.depsTail = nextDep
		return
	}

	prevSub := dep.subsTail
	if prevSub != nil && prevSub.version == version && prevSub.sub == sub {
		return
	}

	l := r.links.alloc()
	*l = Link{
		version: version,
		dep:     dep,
		sub:     sub,
		prevDep: prevDep,
		nextDep: nextDep,
		prevSub: prevSub,
	}
	dep.subsTail = l
	sub.depsTail = l

	if nextDep != nil {
		nextDep.prevDep = l
	}
	if prevDep != nil {
		prevDep.nextDep = l
	} else {
		sub.deps = l
	}
	if prevSub != nil {
		prevSub.nextSub = l
	} else {
		dep.subs = l
	}
}

// unlink splices l out of both lists and returns the following dep-list
// edge so callers can keep iterating. A dependency left with no
// subscribers is handed to unwatched.
func (r *Runtime) unlink(l *Link, sub *Node) *Link {
	dep := l.dep
	prevDep := l.prevDep
	nextDep := l.nextDep
	nextSub := l.nextSub
	prevSub := l.prevSub

	if nextDep != nil {
		nextDep.prevDep = prevDep
	} else {
		sub.depsTail = prevDep
	}
	if prevDep != nil {
		prevDep.nextDep = nextDep
	} else {
		sub.deps = nextDep
	}

	if nextSub != nil {
		nextSub.prevSub = prevSub
	} else {
		dep.subsTail = prevSub
	}
	if prevSub != nil {
		prevSub.nextSub = nextSub
	} else {
		dep.subs = nextSub
		if nextSub == nil {
			r.unwatched(dep)
		}
	}

	return nextDep
}

// isValidLink reports whether l is still part of sub's live dep set during
// its in-progress re-execution: the live set is everything at or before the
// depsTail cursor.
func isValidLink(l *Link, sub *Node) bool {
	for probe := sub.depsTail; probe != nil; probe = probe.prevDep {
		if probe == l {
			return true
		}
	}
	return false
}

// purgeDeps unlinks every dep edge past the depsTail cursor, i.e. edges the
// latest evaluation did not revisit.
func (r *Runtime) purgeDeps(sub *Node) {
	var l *Link
	if sub.depsTail != nil {
		l = sub.depsTail.nextDep
	} else {
		l = sub.deps
	}
	for l != nil {
		l = r.unlink(l, sub)
	}
}

// unwatched resets a node that just lost its last subscriber. Effects and
// scopes are torn down entirely; a computed with recorded deps keeps its
// cached value but drops those deps and is marked dirty so the next read
// recomputes from scratch. A mutable node with no deps is left as it is.
func (r *Runtime) unwatched(n *Node) {
	if n.flags&FlagMutable == 0 {
		r.disposeSub(n)
	} else if n.depsTail != nil {
		n.depsTail = nil
		n.flags = FlagMutable | FlagDirty
		r.purgeDeps(n)
	}
}
