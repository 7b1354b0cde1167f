package pulse

import "github.com/pulse-go/pulse/internal"

// Signal is a writable reactive value. Reading it inside a computed or an
// effect records the dependency; writing it re-runs every effect that
// transitively depends on it, exactly once per flush.
type Signal[T any] struct {
	node *internal.Node
}

// New creates a signal holding initial. Values are compared structurally
// to decide whether a write actually changed anything.
func New[T any](initial T) *Signal[T] {
	return &Signal[T]{
		internal.GetRuntime().NewSignal(initial, deepEqual),
	}
}

// NewWithEqual creates a signal with a custom equality predicate.
func NewWithEqual[T any](initial T, equal func(a, b T) bool) *Signal[T] {
	return &Signal[T]{
		internal.GetRuntime().NewSignal(initial, equalAs(equal)),
	}
}

// Get returns the current value, tracking the dependency if a subscriber
// is active.
func (s *Signal[T]) Get() T {
	return as[T](internal.GetRuntime().ReadSignal(s.node))
}

// Set writes a new value, updating dependents if it differs from the
// previous one under the signal's equality predicate.
func (s *Signal[T]) Set(value T) {
	internal.GetRuntime().WriteSignal(s.node, value)
}

// SetWith writes the result of applying f to the current value. The read
// is untracked.
func (s *Signal[T]) SetWith(f func(T) T) {
	r := internal.GetRuntime()
	prev := r.SetActiveSub(nil)
	value := as[T](r.ReadSignal(s.node))
	r.SetActiveSub(prev)
	r.WriteSignal(s.node, f(value))
}

// Update copies the current value, lets f mutate the copy in place, and
// writes it back.
func (s *Signal[T]) Update(f func(*T)) {
	r := internal.GetRuntime()
	prev := r.SetActiveSub(nil)
	value := as[T](r.ReadSignal(s.node))
	r.SetActiveSub(prev)
	f(&value)
	r.WriteSignal(s.node, value)
}
