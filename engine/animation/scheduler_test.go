package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameQueueRunsInOrder(t *testing.T) {
	q := NewFrameQueue()
	var got []int
	q.RequestFrame(func() { got = append(got, 1) })
	q.RequestFrame(func() { got = append(got, 2) })

	assert.Equal(t, 2, q.Pending())
	assert.Equal(t, 2, q.Flush())
	assert.Equal(t, []int{1, 2}, got)
	assert.Zero(t, q.Pending())
}

func TestFrameQueueDefersRequestsMadeDuringFlush(t *testing.T) {
	q := NewFrameQueue()
	runs := 0
	var again func()
	again = func() {
		runs++
		q.RequestFrame(again)
	}
	q.RequestFrame(again)

	assert.Equal(t, 1, q.Flush())
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, q.Pending())
	assert.Equal(t, 1, q.Flush())
	assert.Equal(t, 2, runs)
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	id := q.RequestFrame(func() { ran = true })
	q.CancelFrame(id)
	q.CancelFrame(id)
	q.CancelFrame(9999)

	assert.Zero(t, q.Flush())
	assert.False(t, ran)
}

func TestFrameQueueCancelWithinBatch(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	var second FrameID
	q.RequestFrame(func() { q.CancelFrame(second) })
	second = q.RequestFrame(func() { ran = true })

	assert.Equal(t, 1, q.Flush())
	assert.False(t, ran)
}
