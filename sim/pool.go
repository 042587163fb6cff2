package sim

import "fmt"

// WorkerPool is a counting resource with a fixed capacity and a FIFO wait queue.
// The number of granted holds never exceeds the capacity, and waiting items are
// granted strictly in the order they asked.
//
// Thread-safety: NOT thread-safe. All calls come from the event loop.
type WorkerPool struct {
	capacity  int
	inUse     int
	peakInUse int
	waitQ     *WaitQueue
}

// NewWorkerPool creates a pool of capacity interchangeable workers.
func NewWorkerPool(capacity int) *WorkerPool {
	if capacity < 1 {
		panic(fmt.Sprintf("NewWorkerPool: capacity must be >= 1, got %d", capacity))
	}
	return &WorkerPool{capacity: capacity, waitQ: &WaitQueue{}}
}

// Acquire requests a worker for it. Returns true when the hold is granted
// immediately; otherwise it is queued and will be returned by a later Release.
func (p *WorkerPool) Acquire(it *ItemProcess) bool {
	if p.inUse < p.capacity {
		p.inUse++
		p.peakInUse = max(p.peakInUse, p.inUse)
		return true
	}
	p.waitQ.Enqueue(it)
	return false
}

// Release gives a hold back. If an item is waiting, the freed worker passes
// straight to it and that item is returned; the caller grants it in the same
// instant. Returns nil when nobody was waiting.
func (p *WorkerPool) Release() *ItemProcess {
	if p.inUse == 0 {
		panic("Release: no outstanding hold")
	}
	if next := p.waitQ.Dequeue(); next != nil {
		return next
	}
	p.inUse--
	return nil
}

// Capacity returns the number of workers in the pool.
func (p *WorkerPool) Capacity() int { return p.capacity }

// InUse returns the number of holds currently granted.
func (p *WorkerPool) InUse() int { return p.inUse }

// PeakInUse returns the highest InUse seen since the pool was created.
func (p *WorkerPool) PeakInUse() int { return p.peakInUse }

// QueueLen returns the number of items waiting for a worker.
func (p *WorkerPool) QueueLen() int { return p.waitQ.Len() }
