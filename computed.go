package pulse

import "github.com/pulse-go/pulse/internal"

// Computed is a lazily evaluated derived value. The getter runs on first
// read and again only when a read finds that some transitive input
// actually changed.
type Computed[T any] struct {
	node *internal.Node
}

// NewComputed creates a computed from a getter. The getter receives the
// previously cached value and whether one exists yet.
func NewComputed[T any](getter func(prev T, ok bool) T) *Computed[T] {
	return &Computed[T]{
		internal.GetRuntime().NewComputed(eraseGetter(getter), deepEqual),
	}
}

// NewComputedWithEqual creates a computed with a custom equality predicate
// for change detection.
func NewComputedWithEqual[T any](getter func(prev T, ok bool) T, equal func(a, b T) bool) *Computed[T] {
	return &Computed[T]{
		internal.GetRuntime().NewComputed(eraseGetter(getter), equalAs(equal)),
	}
}

// Get returns the computed's value, recomputing first if a transitive
// input changed, and tracks the dependency if a subscriber is active.
func (c *Computed[T]) Get() T {
	return as[T](internal.GetRuntime().ReadComputed(c.node))
}

func eraseGetter[T any](getter func(prev T, ok bool) T) func(prev any, ok bool) any {
	return func(prev any, ok bool) any {
		var p T
		if ok {
			p = as[T](prev)
		}
		return getter(p, ok)
	}
}
