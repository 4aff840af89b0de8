// Package list implements a singly linked list of uint32 values whose nodes
// are drawn one at a time from an alloc.Heap.
//
// # Overview
//
// A chain is the sequence of nodes reachable from a head reference. The last
// node's next link is nil, which is the terminal marker. A chain exclusively
// owns its nodes and is never cyclic.
//
// # Head Slots
//
// Operations that can create or remove the head node take a head slot
// (**Node) and rewrite it:
//
//	var head *list.Node
//	m := list.New()
//
//	cur, err := m.Init(&head, 1)
//	if err != nil {
//	    return err
//	}
//	cur, _ = m.Add(cur, 2)
//	cur, _ = m.Add(cur, 3)
//
//	m.Del(&head, 1)      // head now holds 2
//	n := m.Free(&head)   // n == 2, head == nil
//
// Add only ever touches the tail, so it takes a plain reference to any node of
// the chain. Adding to a nil reference yields an orphan: a one-node chain that
// is not linked anywhere.
//
// # Released Nodes
//
// Del and Free release nodes to the heap immediately. A released node is
// dead: Next on it returns nil, the same as Next on the terminal marker, so an
// iteration loop over a stale cursor ends instead of faulting.
//
// # Thread Safety
//
// A Manager and the chains it builds have a single owner. Nothing here locks.
package list
