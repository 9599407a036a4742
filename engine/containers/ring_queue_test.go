package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueueFIFOAndWrap(t *testing.T) {
	q := NewRingQueue[int](3)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	require.NoError(t, q.Enqueue(3))
	assert.ErrorIs(t, q.Enqueue(4), ErrQueueFull)

	v, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, q.Enqueue(4))
	head, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2, head)

	assert.Equal(t, []int{2, 3, 4}, q.Drain())
	assert.True(t, q.IsEmpty())
	assert.Nil(t, q.Drain())

	_, err = q.Dequeue()
	assert.ErrorIs(t, err, ErrQueueEmpty)
}
