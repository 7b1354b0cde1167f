// Package pulse is a push-pull reactive runtime: signals hold values,
// computeds derive values lazily, and effects re-run when their tracked
// inputs are confirmed changed. After any signal write, every effect
// transitively depending on it runs exactly once, and a computed read
// between writes recomputes only if some transitive input actually
// changed.
//
// The runtime is single threaded: each goroutine owns an independent
// graph, and nodes must be driven from the goroutine that created them.
package pulse

import (
	"reflect"

	"github.com/pulse-go/pulse/internal"
)

// Flags is the status word of a graph node. It is observable and mutable
// on the active subscriber for advanced patterns, e.g. clearing
// FlagRecursedCheck at the top of an effect makes it re-trigger itself on
// writes it performs.
type Flags = internal.Flags

const (
	FlagNone          = internal.FlagNone
	FlagMutable       = internal.FlagMutable
	FlagWatching      = internal.FlagWatching
	FlagRecursedCheck = internal.FlagRecursedCheck
	FlagRecursed      = internal.FlagRecursed
	FlagDirty         = internal.FlagDirty
	FlagPending       = internal.FlagPending
)

// Sub is a handle to a graph node in its role as subscriber.
type Sub = internal.Node

// SetActiveSub installs sub as the ambient subscriber and returns the
// previous one. Call with nil to suspend dependency tracking, then restore
// the returned value.
func SetActiveSub(sub *Sub) *Sub {
	return internal.GetRuntime().SetActiveSub(sub)
}

// ActiveSub returns the ambient subscriber, or nil when nothing is
// tracking.
func ActiveSub() *Sub {
	return internal.GetRuntime().ActiveSub()
}

// Untrack runs fn with dependency tracking suspended and returns its
// result.
func Untrack[T any](fn func() T) T {
	prev := SetActiveSub(nil)
	result := fn()
	SetActiveSub(prev)
	return result
}

// OnSettled registers a one-shot hook that runs after the next flush of
// the effect queue completes, i.e. once all effects (including chained
// ones) triggered by a write or batch have run.
func OnSettled(fn func()) {
	internal.GetRuntime().OnSettled(fn)
}

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

func equalAs[T any](equal func(a, b T) bool) func(a, b any) bool {
	return func(a, b any) bool {
		return equal(as[T](a), as[T](b))
	}
}

func deepEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
