package pulse

import "github.com/pulse-go/pulse/internal"

// EffectScope groups effects and nested scopes created during its setup
// function so they can all be disposed at once.
type EffectScope struct {
	node *internal.Node
}

// NewScope runs setup once; every effect or scope created inside becomes a
// child of this scope.
func NewScope(setup func()) *EffectScope {
	return &EffectScope{
		internal.GetRuntime().NewScope(setup),
	}
}

// Dispose recursively unwatches every child of the scope. Disposing twice
// is a no-op.
func (s *EffectScope) Dispose() {
	internal.GetRuntime().Dispose(s.node)
}
