package internal

// updateComputed re-runs the getter inside a fresh tracking pass and
// reports whether the cached value changed. The first computation always
// counts as changed.
func (r *Runtime) updateComputed(c *Node) bool {
	r.cycle++
	c.depsTail = nil
	c.flags = FlagMutable | FlagRecursedCheck
	prev := r.SetActiveSub(c)

	newValue := c.getter(c.value, c.hasValue)

	changed := !c.hasValue || !c.eq(c.value, newValue)
	c.value = newValue
	c.hasValue = true
	r.SetActiveSub(prev)
	c.flags &^= FlagRecursedCheck
	r.purgeDeps(c)
	return changed
}

// ReadComputed returns the computed's value, recomputing if it is dirty or
// a pending state is confirmed by checkDirty. A first-ever read with no
// flags at all memoizes without dep-tracking bookkeeping.
func (r *Runtime) ReadComputed(c *Node) any {
	flags := c.flags

	dirty := flags&FlagDirty != 0
	if !dirty && flags&FlagPending != 0 {
		if c.deps == nil {
			panic("BUG: pending computed has no deps")
		}
		if r.checkDirty(c.deps, c) {
			dirty = true
		} else {
			c.flags = flags &^ FlagPending
		}
	}

	if dirty {
		if r.updateComputed(c) && c.subs != nil {
			r.shallowPropagate(c.subs)
		}
	} else if flags == FlagNone {
		c.flags = FlagMutable | FlagRecursedCheck
		prev := r.SetActiveSub(c)
		c.value = c.getter(c.value, c.hasValue)
		c.hasValue = true
		r.SetActiveSub(prev)
		c.flags &^= FlagRecursedCheck
	}

	if r.activeSub != nil {
		r.link(c, r.activeSub, r.cycle)
	}

	if !c.hasValue {
		panic("BUG: computed has no value after read")
	}
	return c.value
}
