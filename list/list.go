package list

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/llkit/alloc"
	"github.com/joshuapare/llkit/internal/logger"
)

// Manager builds and tears down chains using a single heap.
type Manager struct {
	heap alloc.Heap[Node]
	log  *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithHeap sets the heap nodes are drawn from.
func WithHeap(h alloc.Heap[Node]) Option {
	return func(m *Manager) { m.heap = h }
}

// WithLogger sets the logger. Without it the process-wide logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// New creates a Manager. The default heap is an unbounded alloc.Runtime.
func New(opts ...Option) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	if m.heap == nil {
		m.heap = alloc.NewRuntime[Node]()
	}
	return m
}

// Stats returns the accounting of the Manager's heap.
func (m *Manager) Stats() alloc.Stats {
	return m.heap.Stats()
}

func (m *Manager) logger() *slog.Logger {
	if m.log != nil {
		return m.log
	}
	return logger.L
}

// Init starts a chain: it allocates a node holding value, stores it in *head
// and returns it. The returned node is both the head and the first cursor.
//
// *head must be nil or a released node. On failure *head is not modified.
func (m *Manager) Init(head **Node, value uint32) (*Node, error) {
	if head == nil {
		return nil, ErrNilSlot
	}
	if (*head).Live() {
		return nil, ErrSlotInUse
	}

	n, err := m.newNode(value)
	if err != nil {
		return nil, err
	}
	*head = n
	return n, nil
}

// Add appends a node holding value at the tail of the chain that ref belongs
// to and returns the new node. ref may be any node of the chain; the walk
// starts there.
//
// A nil ref produces an orphan node that is linked into nothing. The caller
// owns it and must Free it through its own head slot.
func (m *Manager) Add(ref *Node, value uint32) (*Node, error) {
	if ref != nil && !ref.live {
		return nil, fmt.Errorf("add %d: %w", value, ErrInvalidRef)
	}

	n, err := m.newNode(value)
	if err != nil {
		return nil, err
	}

	if ref == nil {
		m.logger().Warn("list: add without a chain, node is orphaned", "value", value)
		return n, nil
	}

	// A released successor ends the chain; the new node replaces the link to it.
	tail := ref
	for tail.next.Live() {
		tail = tail.next
	}
	tail.next = n
	return n, nil
}

// Del removes and releases the first node holding value. When that node is
// the head, *head is advanced to its successor. Del reports whether a node
// was removed; an empty chain or a missing value is not an error.
func (m *Manager) Del(head **Node, value uint32) bool {
	if head == nil || !(*head).Live() {
		return false
	}

	if (*head).value == value {
		victim := *head
		*head = liveOrNil(victim.next)
		m.release(victim)
		return true
	}

	prev := *head
	for prev.next.Live() && prev.next.value != value {
		prev = prev.next
	}
	if !prev.next.Live() {
		prev.next = nil
		return false
	}

	victim := prev.next
	prev.next = liveOrNil(victim.next)
	m.release(victim)
	return true
}

// Free releases every node of the chain in *head, sets *head to nil and
// returns the number of nodes released. A nil slot or empty chain yields 0.
func (m *Manager) Free(head **Node) int {
	if head == nil {
		return 0
	}

	count := 0
	for n := *head; n.Live(); {
		next := n.next
		m.release(n)
		n = next
		count++
	}
	*head = nil

	if count > 0 {
		m.logger().Debug("list: chain freed", "nodes", count)
	}
	return count
}

// liveOrNil drops a link to a node that has already been released.
func liveOrNil(n *Node) *Node {
	if !n.Live() {
		return nil
	}
	return n
}

func (m *Manager) newNode(value uint32) (*Node, error) {
	n, err := m.heap.Alloc()
	if err != nil {
		m.logger().Debug("list: node allocation failed", "value", value, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrAlloc, err)
	}
	n.value = value
	n.next = nil
	n.live = true
	return n, nil
}

// release marks n dead and hands it back to the heap. n must already be
// unlinked from its chain.
func (m *Manager) release(n *Node) {
	n.next = nil
	n.live = false
	if err := m.heap.Free(n); err != nil {
		m.logger().Error("list: heap rejected node release", "value", n.value, "err", err)
	}
}
