// Implements the WaitQueue, which holds all items waiting for a worker.
// Items are enqueued when their acquire request cannot be granted.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of items waiting for a worker.
type WaitQueue struct {
	queue []*ItemProcess
}

// Enqueue adds an item to the back of the wait queue.
func (wq *WaitQueue) Enqueue(it *ItemProcess) {
	if it == nil {
		panic("Enqueue: item must not be nil")
	}
	wq.queue = append(wq.queue, it)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val.Index))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of items in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the item at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *ItemProcess {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Dequeue removes and returns the item at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *ItemProcess {
	if len(wq.queue) == 0 {
		return nil
	}
	it := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return it
}
