package internal

// Kind discriminates the four node payloads.
type Kind uint8

const (
	KindScope Kind = iota
	KindSignal
	KindComputed
	KindEffect
)

// Node is a vertex of the dependency graph. The payload fields are
// populated according to kind; the adjacency fields are shared by all
// kinds. Values are stored type-erased as any; the generic wrappers in the
// root package downcast on the way out.
type Node struct {
	flags Flags
	kind  Kind

	// edges where this node is the subscriber
	deps     *Link
	depsTail *Link
	// edges where this node is the dependency
	subs     *Link
	subsTail *Link

	// signal: committed and buffered value
	value   any
	pending any
	// computed: whether value caches a result yet, getter receiving the previous one
	hasValue bool
	getter   func(prev any, ok bool) any
	// signal and computed: equality predicate over stored values
	eq func(a, b any) bool
	// effect: thunk to run
	run func()
}

func (r *Runtime) newNode(kind Kind, flags Flags) *Node {
	n := r.nodes.alloc()
	n.kind = kind
	n.flags = flags
	return n
}

// NewSignal allocates a signal node holding initial.
func (r *Runtime) NewSignal(initial any, eq func(a, b any) bool) *Node {
	n := r.newNode(KindSignal, FlagMutable)
	n.value = initial
	n.pending = initial
	n.eq = eq
	return n
}

// NewComputed allocates a computed node. The getter is not invoked until
// the first read.
func (r *Runtime) NewComputed(getter func(prev any, ok bool) any, eq func(a, b any) bool) *Node {
	n := r.newNode(KindComputed, FlagNone)
	n.getter = getter
	n.eq = eq
	return n
}

// Kind returns the node's kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// Flags returns the node's current flags.
func (n *Node) Flags() Flags {
	return n.flags
}

// SetFlags replaces the node's flags.
func (n *Node) SetFlags(flags Flags) {
	n.flags = flags
}

// UpdateFlags applies f to the node's flags in place. Clearing
// FlagRecursedCheck on the active subscriber makes an effect re-trigger
// itself on writes it performs.
func (n *Node) UpdateFlags(f func(*Flags)) {
	f(&n.flags)
}

// Value returns the committed value of a signal or the cached value of a
// computed without tracking or validation.
func (n *Node) Value() any {
	return n.value
}

// update recomputes a mutable node's value and reports whether it changed.
func (r *Runtime) update(n *Node) bool {
	switch n.kind {
	case KindSignal:
		return r.updateSignal(n)
	case KindComputed:
		return r.updateComputed(n)
	default:
		panic("BUG: update target is neither signal nor computed")
	}
}
