package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cell struct {
	v    uint32
	next *cell
}

// TestRuntime_AllocFree tests a single allocate/release cycle.
func TestRuntime_AllocFree(t *testing.T) {
	h := NewRuntime[cell]()

	p, err := h.Alloc()
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, cell{}, *p, "Alloc should return a zeroed object")
	assert.True(t, h.owns(p))

	p.v = 42
	require.NoError(t, h.Free(p))
	assert.False(t, h.owns(p))
	assert.Equal(t, cell{}, *p, "Free should zero the object")

	assert.Equal(t, Stats{Allocs: 1, Frees: 1, Live: 0, Peak: 1}, h.Stats())
}

// TestRuntime_DistinctObjects tests that every Alloc returns a new object.
func TestRuntime_DistinctObjects(t *testing.T) {
	h := NewRuntime[cell]()

	seen := make(map[*cell]bool)
	for i := range 32 {
		p, err := h.Alloc()
		require.NoError(t, err, "Alloc %d should succeed", i)
		require.False(t, seen[p], "Alloc %d returned a live object", i)
		seen[p] = true
	}

	st := h.Stats()
	assert.Equal(t, 32, st.Allocs)
	assert.Equal(t, 32, st.Live)
	assert.Equal(t, 32, st.Peak)
}

// TestRuntime_BadRef tests rejection of nil, foreign and double frees.
func TestRuntime_BadRef(t *testing.T) {
	h := NewRuntime[cell]()

	require.ErrorIs(t, h.Free(nil), ErrBadRef)
	require.ErrorIs(t, h.Free(&cell{}), ErrBadRef)

	p, err := h.Alloc()
	require.NoError(t, err)
	require.NoError(t, h.Free(p))
	require.ErrorIs(t, h.Free(p), ErrBadRef, "second Free should be rejected")

	assert.Equal(t, 1, h.Stats().Frees, "rejected frees must not be counted")
}

// TestRuntime_PeakTracking tests that Peak survives releases.
func TestRuntime_PeakTracking(t *testing.T) {
	h := NewRuntime[cell]()

	var ps []*cell
	for range 5 {
		p, err := h.Alloc()
		require.NoError(t, err)
		ps = append(ps, p)
	}
	for _, p := range ps[:3] {
		require.NoError(t, h.Free(p))
	}
	_, err := h.Alloc()
	require.NoError(t, err)

	st := h.Stats()
	assert.Equal(t, 3, st.Live)
	assert.Equal(t, 5, st.Peak)
}
