package internal

// updateSignal commits the buffered value and reports whether it differs
// from the previous committed value under the signal's predicate.
func (r *Runtime) updateSignal(s *Node) bool {
	s.flags = FlagMutable
	changed := !s.eq(s.value, s.pending)
	s.value = s.pending
	return changed
}

// ReadSignal returns the signal's committed value, committing a pending
// write first if needed, and records the dependency on the nearest
// tracking ancestor of the ambient subscriber.
func (r *Runtime) ReadSignal(s *Node) any {
	if s.flags&FlagDirty != 0 {
		if r.updateSignal(s) && s.subs != nil {
			r.shallowPropagate(s.subs)
		}
	}

	for sub := r.activeSub; sub != nil; {
		if sub.flags&(FlagMutable|FlagWatching) != 0 {
			r.link(s, sub, r.cycle)
			break
		}
		if sub.subs != nil {
			sub = sub.subs.sub
		} else {
			sub = nil
		}
	}

	return s.value
}

// WriteSignal buffers v as the signal's next value. If it differs from the
// previously buffered value, subscribers are marked and, outside a batch,
// the effect queue is flushed.
func (r *Runtime) WriteSignal(s *Node, v any) {
	changed := !s.eq(s.pending, v)
	s.pending = v
	if changed {
		s.flags = FlagMutable | FlagDirty
		if s.subs != nil {
			r.propagate(s.subs)
			if r.batchDepth == 0 {
				r.Flush()
			}
		}
	}
}
