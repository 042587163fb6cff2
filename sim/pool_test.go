package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_GrantsUpToCapacityThenQueues(t *testing.T) {
	// GIVEN a pool of two workers
	p := NewWorkerPool(2)
	items := []*ItemProcess{NewItemProcess(1), NewItemProcess(2), NewItemProcess(3), NewItemProcess(4)}

	// WHEN four items ask in order
	granted := make([]bool, len(items))
	for i, it := range items {
		granted[i] = p.Acquire(it)
	}

	// THEN the first two are granted and the rest wait
	assert.Equal(t, []bool{true, true, false, false}, granted)
	assert.Equal(t, 2, p.InUse())
	assert.Equal(t, 2, p.QueueLen())
	assert.Equal(t, 2, p.Capacity())
}

func TestWorkerPool_Release_HandsSlotToNextWaiterFIFO(t *testing.T) {
	p := NewWorkerPool(1)
	a, b, c := NewItemProcess(1), NewItemProcess(2), NewItemProcess(3)
	require.True(t, p.Acquire(a))
	require.False(t, p.Acquire(b))
	require.False(t, p.Acquire(c))

	// WHEN the holder releases, the slot passes to b without freeing it
	assert.Same(t, b, p.Release())
	assert.Equal(t, 1, p.InUse())
	assert.Same(t, c, p.Release())
	assert.Equal(t, 1, p.InUse())

	// THEN with nobody waiting the slot is freed
	assert.Nil(t, p.Release())
	assert.Equal(t, 0, p.InUse())
	assert.Equal(t, 1, p.PeakInUse())
}

func TestWorkerPool_ReleaseWithoutHold_Panics(t *testing.T) {
	p := NewWorkerPool(3)
	assert.Panics(t, func() { p.Release() })
}

func TestNewWorkerPool_ZeroCapacity_Panics(t *testing.T) {
	assert.Panics(t, func() { NewWorkerPool(0) })
}
