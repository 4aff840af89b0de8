package alloc

// Runtime is a Heap backed by the Go runtime allocator.
//
// It keeps a set of the objects it has handed out so that a second Free of
// the same object, or a Free of an object from elsewhere, is reported instead
// of silently corrupting the accounting.
type Runtime[T any] struct {
	live  map[*T]struct{}
	stats Stats
}

// NewRuntime creates an empty Runtime heap.
func NewRuntime[T any]() *Runtime[T] {
	return &Runtime[T]{live: make(map[*T]struct{})}
}

// Alloc never fails for Runtime; the error is part of the Heap contract.
func (r *Runtime[T]) Alloc() (*T, error) {
	p := new(T)
	r.live[p] = struct{}{}

	r.stats.Allocs++
	r.stats.Live++
	if r.stats.Live > r.stats.Peak {
		r.stats.Peak = r.stats.Live
	}
	return p, nil
}

// Free zeroes p and drops it from the live set.
func (r *Runtime[T]) Free(p *T) error {
	if p == nil {
		return ErrBadRef
	}
	if _, ok := r.live[p]; !ok {
		return ErrBadRef
	}
	delete(r.live, p)

	var zero T
	*p = zero

	r.stats.Frees++
	r.stats.Live--
	return nil
}

// Stats returns the current accounting.
func (r *Runtime[T]) Stats() Stats {
	return r.stats
}

// owns reports whether p is a live object of this heap.
func (r *Runtime[T]) owns(p *T) bool {
	_, ok := r.live[p]
	return ok
}
