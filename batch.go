package pulse

import "github.com/pulse-go/pulse/internal"

// StartBatch increments the batch depth. While it is above zero, signal
// writes mark the graph but effects stay queued.
func StartBatch() {
	internal.GetRuntime().StartBatch()
}

// EndBatch decrements the batch depth and, when it reaches zero, runs
// every queued effect.
func EndBatch() {
	internal.GetRuntime().EndBatch()
}

// BatchDepth returns the current batch depth.
func BatchDepth() int {
	return internal.GetRuntime().BatchDepth()
}

// Batch runs fn between StartBatch and EndBatch.
func Batch(fn func()) {
	StartBatch()
	fn()
	EndBatch()
}
