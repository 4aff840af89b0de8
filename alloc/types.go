package alloc

// Stats is the allocation accounting of a heap.
type Stats struct {
	Allocs int // Objects handed out since creation
	Frees  int // Objects released since creation
	Live   int // Objects currently outstanding
	Peak   int // Highest Live value observed
}

// Heap defines the interface for single-object allocation and release.
//
// Implementations:
//   - Runtime: Go runtime allocator with live-object tracking
//   - Bounded: Wrapper that caps the number of live objects
type Heap[T any] interface {
	// Alloc returns a pointer to a new zeroed T.
	// Returns ErrNoSpace when the heap is exhausted.
	Alloc() (*T, error)

	// Free releases p. The object is zeroed and must not be used again.
	// Returns ErrBadRef if p is nil or is not live in this heap.
	Free(p *T) error

	// Stats returns a snapshot of the allocation accounting.
	Stats() Stats
}
