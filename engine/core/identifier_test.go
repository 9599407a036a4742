package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDAllocatorStartsAboveZero(t *testing.T) {
	var a IDAllocator
	assert.Equal(t, uint64(0), a.Last())
	assert.Equal(t, uint64(1), a.Next())
	assert.Equal(t, uint64(1), a.Last())
}

func TestIDAllocatorStrictlyIncreasing(t *testing.T) {
	var a IDAllocator
	prev := uint64(0)
	seen := make(map[uint64]struct{})
	for i := 0; i < 1000; i++ {
		id := a.Next()
		assert.Greater(t, id, prev)
		_, dup := seen[id]
		assert.False(t, dup, "id %d issued twice", id)
		seen[id] = struct{}{}
		prev = id
	}
}

func TestIDAllocatorInstancesAreIndependent(t *testing.T) {
	var a, b IDAllocator
	a.Next()
	a.Next()
	assert.Equal(t, uint64(1), b.Next())
	assert.Equal(t, uint64(3), a.Next())
}
