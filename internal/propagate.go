package internal

// propagate walks outward from link over every subscriber of a changed
// dependency, marking transitive subscribers pending and queueing watching
// effects. The walk is an iterative DFS: descending into a mutable
// subscriber's own sub list pushes the current sibling continuation onto an
// explicit stack.
func (r *Runtime) propagate(link *Link) {
	var stack []*Link
	for {
		sub := link.sub
		flags := sub.flags

		if flags&(FlagRecursedCheck|FlagRecursed|FlagDirty|FlagPending) == 0 {
			sub.flags = flags | FlagPending
		} else if flags&(FlagRecursedCheck|FlagRecursed) == 0 {
			flags = FlagNone
		} else if flags&FlagRecursedCheck == 0 {
			sub.flags = (flags &^ FlagRecursed) | FlagPending
		} else if flags&(FlagDirty|FlagPending) == 0 && isValidLink(link, sub) {
			sub.flags = flags | FlagRecursed | FlagPending
			flags &= FlagMutable
		} else {
			flags = FlagNone
		}

		if flags&FlagWatching != 0 {
			r.notify(sub)
		}

		if flags&FlagMutable != 0 && sub.subs != nil {
			if link.nextSub != nil {
				stack = append(stack, link.nextSub)
			}
			link = sub.subs
			continue
		}

		if link.nextSub != nil {
			link = link.nextSub
			continue
		}
		if n := len(stack); n > 0 {
			link = stack[n-1]
			stack = stack[:n-1]
			continue
		}
		return
	}
}

// shallowPropagate promotes pending subscribers of a confirmed-changed
// dependency to dirty. Single level, no descent.
func (r *Runtime) shallowPropagate(link *Link) {
	for ; link != nil; link = link.nextSub {
		sub := link.sub
		flags := sub.flags
		if flags&(FlagPending|FlagDirty) == FlagPending {
			sub.flags = flags | FlagDirty
			if flags&(FlagWatching|FlagRecursedCheck) == FlagWatching {
				r.notify(sub)
			}
		}
	}
}

// checkDirty answers whether any transitive mutable dep of sub actually
// changed, updating deps along the way. It returns on the first confirmed
// change. Recursion depth is bounded by the graph height.
func (r *Runtime) checkDirty(link *Link, sub *Node) bool {
	for ; link != nil; link = link.nextDep {
		// a dep updated earlier in the scan may have shallow-propagated
		// DIRTY onto sub itself
		if sub.flags&FlagDirty != 0 {
			return true
		}

		dep := link.dep
		flags := dep.flags

		if flags&(FlagMutable|FlagDirty) == FlagMutable|FlagDirty {
			if r.update(dep) {
				if subs := dep.subs; subs != nil && subs.nextSub != nil {
					r.shallowPropagate(subs)
				}
				return true
			}
		} else if flags&(FlagMutable|FlagPending) == FlagMutable|FlagPending {
			if r.checkDirty(dep.deps, dep) {
				if r.update(dep) {
					if subs := dep.subs; subs != nil && subs.nextSub != nil {
						r.shallowPropagate(subs)
					}
					return true
				}
			} else {
				dep.flags &^= FlagPending
			}
		}
	}

	return sub.flags&FlagDirty != 0
}

// notify queues an effect, then walks up through its watching ancestors
// queueing each of them, and finally reverses the appended suffix so the
// outermost ancestor runs first.
func (r *Runtime) notify(effect *Node) {
	if effect.kind != KindEffect {
		panic("BUG: notify target is not an effect")
	}
	chainHead := r.queued.length()
	for {
		effect.flags &^= FlagWatching
		r.queued.push(effect)
		if effect.subs == nil {
			break
		}
		parent := effect.subs.sub
		if parent.flags&FlagWatching == 0 {
			break
		}
		if parent.kind != KindEffect {
			panic("BUG: watching ancestor of an effect is not an effect")
		}
		effect = parent
	}
	r.queued.reverseFrom(chainHead)
}
