package alloc

import "fmt"

// Bounded wraps a Heap and refuses allocations once a fixed number of objects
// are live. Frees pass straight through and make room again.
type Bounded[T any] struct {
	inner Heap[T]
	limit int
}

// NewBounded creates a Bounded heap over inner that allows at most limit live
// objects. A negative limit is treated as zero.
func NewBounded[T any](inner Heap[T], limit int) *Bounded[T] {
	if limit < 0 {
		limit = 0
	}
	return &Bounded[T]{inner: inner, limit: limit}
}

// Alloc allocates from the inner heap unless the live limit is reached.
func (b *Bounded[T]) Alloc() (*T, error) {
	if live := b.inner.Stats().Live; live >= b.limit {
		return nil, fmt.Errorf("%d of %d objects live: %w", live, b.limit, ErrNoSpace)
	}
	return b.inner.Alloc()
}

// Free releases p to the inner heap.
func (b *Bounded[T]) Free(p *T) error {
	return b.inner.Free(p)
}

// Stats returns the inner heap's accounting.
func (b *Bounded[T]) Stats() Stats {
	return b.inner.Stats()
}

// Limit returns the configured live-object cap.
func (b *Bounded[T]) Limit() int {
	return b.limit
}
