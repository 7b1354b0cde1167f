package pulse

import "github.com/pulse-go/pulse/internal"

// Effect is a subscriber that re-runs its thunk whenever its tracked
// inputs are confirmed changed.
type Effect struct {
	node *internal.Node
}

// NewEffect runs the thunk once to collect its dependencies and returns a
// handle whose Dispose stops all future runs. An effect created inside
// another effect or scope is disposed together with its parent.
func NewEffect(run func()) *Effect {
	return &Effect{
		internal.GetRuntime().NewEffect(run),
	}
}

// Dispose detaches the effect from everything it tracks. Disposing twice
// is a no-op.
func (e *Effect) Dispose() {
	internal.GetRuntime().Dispose(e.node)
}

// Node returns the underlying subscriber handle.
func (e *Effect) Node() *Sub {
	return e.node
}
