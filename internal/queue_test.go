package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectQueueFIFO(t *testing.T) {
	var q effectQueue
	a, b, c := &Node{}, &Node{}, &Node{}

	q.push(a)
	q.push(b)
	q.push(c)

	assert.Equal(t, 3, q.length())
	assert.Same(t, a, q.pop())
	assert.Same(t, b, q.pop())
	assert.Same(t, c, q.pop())
	assert.Nil(t, q.pop())
	assert.Equal(t, 0, q.length())
}

func TestEffectQueueReverseFrom(t *testing.T) {
	var q effectQueue
	a, b, c, d := &Node{}, &Node{}, &Node{}, &Node{}

	// notify collects an ancestor chain innermost first, then reverses the
	// appended suffix so the outermost ancestor pops first
	q.push(a)
	head := q.length()
	q.push(b)
	q.push(c)
	q.push(d)
	q.reverseFrom(head)

	assert.Same(t, a, q.pop())
	assert.Same(t, d, q.pop())
	assert.Same(t, c, q.pop())
	assert.Same(t, b, q.pop())
}

func TestEffectQueueReverseAfterPop(t *testing.T) {
	var q effectQueue
	a, b, c := &Node{}, &Node{}, &Node{}

	q.push(a)
	assert.Same(t, a, q.pop())

	q.push(b)
	head := q.length()
	q.push(c)
	q.reverseFrom(head)

	assert.Same(t, b, q.pop())
	assert.Same(t, c, q.pop())
}

func TestArenaPointerStability(t *testing.T) {
	var a arena[Link]

	first := a.alloc()
	first.version = 42

	var last *Link
	for i := 0; i < arenaChunkSize*3; i++ {
		last = a.alloc()
	}
	last.version = 7

	assert.Equal(t, uint64(42), first.version)
	assert.Equal(t, uint64(7), last.version)
	assert.Len(t, a.chunks, 4)
}
