package pulse

import "github.com/pulse-go/pulse/internal"

// Trigger runs f and then force-invalidates every downstream consumer of
// the signals and computeds read inside f, whether or not their values
// changed. Useful after mutating a value in place, where the equality
// predicate alone cannot see the change.
func Trigger(f func()) {
	internal.GetRuntime().Trigger(f)
}
