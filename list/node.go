package list

import (
	"fmt"
	"io"
	"iter"
)

// Node is one element of a chain.
type Node struct {
	value uint32
	next  *Node
	live  bool // cleared on release
}

// Value returns the node's value, or 0 for nil.
func (n *Node) Value() uint32 {
	if n == nil {
		return 0
	}
	return n.value
}

// Live reports whether n is a node that has not been released.
func (n *Node) Live() bool {
	return n != nil && n.live
}

// Next returns the node after n. See Next.
func (n *Node) Next() *Node {
	return Next(n)
}

// Next returns the node following n, or nil at the end of the chain.
// Next of nil, or of a released node, is nil.
func Next(n *Node) *Node {
	if !n.Live() {
		return nil
	}
	return n.next
}

// All iterates the chain starting at head.
func All(head *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := head; n.Live(); n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// Values returns the chain's values in traversal order.
func Values(head *Node) []uint32 {
	var vals []uint32
	for n := range All(head) {
		vals = append(vals, n.value)
	}
	return vals
}

// Len returns the number of nodes reachable from head.
func Len(head *Node) int {
	count := 0
	for range All(head) {
		count++
	}
	return count
}

// Find returns the first node holding value, or nil.
func Find(head *Node, value uint32) *Node {
	for n := range All(head) {
		if n.value == value {
			return n
		}
	}
	return nil
}

// Dump writes one line per node: its position, its value and the value of
// its successor.
//
//	[0] 1 -> 2
//	[1] 2 -> nil
func Dump(w io.Writer, head *Node) error {
	i := 0
	for n := range All(head) {
		next := "nil"
		if n.next != nil {
			next = fmt.Sprintf("%d", n.next.value)
		}
		if _, err := fmt.Fprintf(w, "[%d] %d -> %s\n", i, n.value, next); err != nil {
			return err
		}
		i++
	}
	return nil
}
