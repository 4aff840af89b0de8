// Package alloc provides the heap that list nodes are drawn from.
//
// # Overview
//
// Nodes are allocated one at a time from a general-purpose heap and released
// synchronously. There is no pooling, arena or deferred reclamation: Free
// hands the object back immediately and zeroes it.
//
// # Heap Interface
//
// The core abstraction is the Heap interface:
//
//   - Alloc(): Allocate one zeroed object
//   - Free(p): Release an object previously returned by Alloc
//   - Stats(): Report allocation accounting
//
// # Implementations
//
// Runtime: Backed by the Go runtime allocator
//
//   - Tracks every live object it handed out
//   - Rejects double frees and foreign pointers with ErrBadRef
//
// Bounded: Capacity-limited wrapper
//
//   - Caps the number of live objects
//   - Returns ErrNoSpace once the cap is reached, which models an exhausted
//     microcontroller heap
//
// # Usage Example
//
//	h := alloc.NewBounded[Node](alloc.NewRuntime[Node](), 16)
//
//	p, err := h.Alloc()
//	if err != nil {
//	    return err
//	}
//
//	// Later, release it
//	err = h.Free(p)
//
// # Thread Safety
//
// Heap instances are not thread-safe. A heap has a single owner.
package alloc
