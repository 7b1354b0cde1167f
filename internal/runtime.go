package internal

// Runtime is the per-goroutine engine state: the version counter, the
// ambient subscriber, the batch depth, the effect queue, and the arenas
// that own every node and link record it ever creates.
type Runtime struct {
	cycle      uint64
	batchDepth int
	activeSub  *Node
	queued     effectQueue

	nodes arena[Node]
	links arena[Link]

	flushing bool
	settled  []func()
}

func NewRuntime() *Runtime {
	return &Runtime{}
}

// SetActiveSub installs sub as the ambient subscriber and returns the
// previous one so callers can restore it. Passing nil suspends dependency
// tracking.
func (r *Runtime) SetActiveSub(sub *Node) *Node {
	prev := r.activeSub
	r.activeSub = sub
	return prev
}

// ActiveSub returns the ambient subscriber, if any.
func (r *Runtime) ActiveSub() *Node {
	return r.activeSub
}

// StartBatch increments the batch depth. While the depth is above zero,
// signal writes propagate but effects stay queued.
func (r *Runtime) StartBatch() {
	r.batchDepth++
}

// EndBatch decrements the batch depth and flushes the effect queue when it
// reaches zero.
func (r *Runtime) EndBatch() {
	r.batchDepth--
	if r.batchDepth == 0 {
		r.Flush()
	}
}

// BatchDepth returns the current batch depth.
func (r *Runtime) BatchDepth() int {
	return r.batchDepth
}

// Flush drains the effect queue. A write performed by a running effect
// re-enters Flush; the nested call keeps draining and the settled hooks
// wait for the outermost call to finish.
func (r *Runtime) Flush() {
	if r.flushing {
		r.drain()
		return
	}
	r.flushing = true
	defer func() { r.flushing = false }()
	r.drain()
	r.runSettled()
}

func (r *Runtime) drain() {
	for e := r.queued.pop(); e != nil; e = r.queued.pop() {
		r.runEffect(e)
	}
}

// OnSettled registers a one-shot hook that runs after the next flush fully
// drains the effect queue.
func (r *Runtime) OnSettled(fn func()) {
	r.settled = append(r.settled, fn)
}

func (r *Runtime) runSettled() {
	if len(r.settled) == 0 {
		return
	}
	hooks := r.settled
	r.settled = nil
	for _, fn := range hooks {
		fn()
	}
}
