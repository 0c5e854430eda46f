package ring

import (
	"sync"
)

// Buffer is a fixed-capacity ring. Once full, pushes overwrite the
// oldest entry.
type Buffer[T any] struct {
	mu    sync.Mutex
	items []T
	head  int
	tail  int
	size  int
	count int
}

func NewBuffer[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{
		items: make([]T, capacity),
		size:  capacity,
	}
}

func (rb *Buffer[T]) Len() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}

func (rb *Buffer[T]) Push(item T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.count == rb.size {
		rb.head = (rb.head + 1) % rb.size
	} else {
		rb.count++
	}
	rb.items[rb.tail] = item
	rb.tail = (rb.tail + 1) % rb.size
}

// Last returns the most recent push and whether the buffer holds one.
func (rb *Buffer[T]) Last() (T, bool) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.count == 0 {
		var zero T
		return zero, false
	}
	return rb.items[(rb.tail-1+rb.size)%rb.size], true
}

func (rb *Buffer[T]) First() (T, bool) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.count == 0 {
		var zero T
		return zero, false
	}
	return rb.items[rb.head], true
}
