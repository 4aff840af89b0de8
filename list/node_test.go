package list

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNext_Terminal(t *testing.T) {
	// Repeated calls on the terminal marker stay terminal.
	for range 3 {
		assert.Nil(t, Next(nil))
	}

	var n *Node
	assert.Nil(t, n.Next())
	assert.Zero(t, n.Value())
	assert.False(t, n.Live())
}

func TestNext_Iteration(t *testing.T) {
	m, _ := newTestManager(t)

	var head *Node
	build(t, m, &head, 10, 20, 30)

	var got []uint32
	for n := head; n != nil; n = Next(n) {
		got = append(got, n.Value())
	}
	assert.Equal(t, []uint32{10, 20, 30}, got)
}

func TestNext_ReleasedNode(t *testing.T) {
	m, _ := newTestManager(t)

	var head *Node
	build(t, m, &head, 1, 2, 3)
	cur := head
	require.Equal(t, 3, m.Free(&head))

	assert.Nil(t, Next(cur), "stale cursor ends iteration")
	assert.Nil(t, Next(cur))
}

func TestAll_EarlyBreak(t *testing.T) {
	m, _ := newTestManager(t)

	var head *Node
	build(t, m, &head, 1, 2, 3, 4)

	var got []uint32
	for n := range All(head) {
		if n.Value() == 3 {
			break
		}
		got = append(got, n.Value())
	}
	assert.Equal(t, []uint32{1, 2}, got)
}

func TestLenFind(t *testing.T) {
	m, _ := newTestManager(t)

	assert.Zero(t, Len(nil))
	assert.Nil(t, Find(nil, 1))

	var head *Node
	build(t, m, &head, 5, 6, 5)
	assert.Equal(t, 3, Len(head))
	assert.Same(t, head, Find(head, 5), "Find returns the first match")
	assert.Equal(t, uint32(6), Find(head, 6).Value())
	assert.Nil(t, Find(head, 7))
}

func TestDump(t *testing.T) {
	m, _ := newTestManager(t)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, nil))
	assert.Empty(t, buf.String())

	var head *Node
	build(t, m, &head, 1, 2, 3)
	require.NoError(t, Dump(&buf, head))
	assert.Equal(t, "[0] 1 -> 2\n[1] 2 -> 3\n[2] 3 -> nil\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestDump_WriteError(t *testing.T) {
	m, _ := newTestManager(t)

	var head *Node
	build(t, m, &head, 1)
	require.Error(t, Dump(failWriter{}, head))
}
