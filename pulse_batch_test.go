package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Run("defers effects until the outermost batch ends", func(t *testing.T) {
		count := New(0)

		var log []int
		NewEffect(func() {
			log = append(log, count.Get())
		})

		Batch(func() {
			count.Set(10)
			count.Set(20)
			assert.Equal(t, []int{0}, log)
		})

		assert.Equal(t, []int{0, 20}, log)
	})

	t.Run("nested batches flush once", func(t *testing.T) {
		count := New(0)

		runs := 0
		NewEffect(func() {
			runs++
			count.Get()
		})

		StartBatch()
		count.Set(10)
		StartBatch()
		count.Set(20)
		assert.Equal(t, 2, BatchDepth())
		EndBatch()
		assert.Equal(t, 1, runs)
		EndBatch()

		assert.Equal(t, 2, runs)
		assert.Equal(t, 0, BatchDepth())
	})

	t.Run("orders effects by notification", func(t *testing.T) {
		a := New(0)
		b := New(0)
		NewComputed(func(_ int, _ bool) int { return a.Get() - b.Get() })

		var order []string
		NewEffect(func() {
			order = append(order, "effect1")
			a.Get()
		})
		NewEffect(func() {
			order = append(order, "effect2")
			a.Get()
			b.Get()
		})

		order = nil
		StartBatch()
		b.Set(1)
		a.Set(1)
		EndBatch()

		assert.Equal(t, []string{"effect2", "effect1"}, order)
	})

	t.Run("supports a custom batching effect", func(t *testing.T) {
		batchEffect := func(f func()) *Effect {
			return NewEffect(func() {
				StartBatch()
				f()
				EndBatch()
			})
		}

		var logs []string
		a := New(0)
		b := New(0)

		aa := NewComputed(func(_ int, _ bool) int {
			logs = append(logs, "aa-0")
			if a.Get() == 0 {
				b.Set(1)
			}
			logs = append(logs, "aa-1")
			return 0
		})
		bb := NewComputed(func(_ int, _ bool) int {
			logs = append(logs, "bb")
			return b.Get()
		})

		batchEffect(func() {
			bb.Get()
		})
		batchEffect(func() {
			aa.Get()
		})

		assert.Equal(t, []string{"bb", "aa-0", "aa-1", "bb"}, logs)
	})
}
