package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntry(t *testing.T, fields []string) *Entry {
	t.Helper()
	e, err := NewEntry(fields)
	require.NoError(t, err)
	require.NotNil(t, e)
	return e
}

func TestRequestsDedup(t *testing.T) {
	e := newTestEntry(t, []string{"DIFF_C2", "indexDD", "NULL", "NULL"})

	t.Run("identity is (name, field), direction is ignored", func(t *testing.T) {
		rs := NewRequests()
		rs.Add(&Request{Name: "indexDDX_norm_DIFF_C2", Field: "Field3D", Direction: "x", Mode: ModeNorm, Method: e})
		rs.Add(&Request{Name: "indexDDX_norm_DIFF_C2", Field: "Field3D", Direction: "y", Mode: ModeNorm, Method: e})
		require.Equal(t, 1, rs.Len())
		// First wins: the surviving request keeps its original direction.
		assert.Equal(t, "x", rs.All()[0].Direction)
	})
	t.Run("same name on another field is a distinct request", func(t *testing.T) {
		rs := NewRequests()
		rs.Add(&Request{Name: "indexDDX_norm_DIFF_C2", Field: "Field3D", Mode: ModeNorm, Method: e})
		rs.Add(&Request{Name: "indexDDX_norm_DIFF_C2", Field: "Field2D", Mode: ModeNorm, Method: e})
		assert.Equal(t, 2, rs.Len())
	})
	t.Run("insertion order preserved", func(t *testing.T) {
		rs := NewRequests()
		rs.Add(&Request{Name: "b", Field: "Field3D", Method: e})
		rs.Add(&Request{Name: "a", Field: "Field3D", Method: e})
		require.Equal(t, 2, rs.Len())
		assert.Equal(t, "b", rs.All()[0].Name)
		assert.Equal(t, "a", rs.All()[1].Name)
	})
}

func TestRequestAttach(t *testing.T) {
	upwind := newTestEntry(t, []string{"DIFF_U1", "NULL", "indexVDD_U1", "NULL"})
	r := &Request{Name: "indexVDDX_norm_DIFF_U1", Field: "Field3D", Mode: ModeNorm, Method: upwind}

	t.Run("matching classification", func(t *testing.T) {
		s := &Stencil{Name: "indexVDD_U1", Flux: true, Staggered: false}
		require.NoError(t, r.Attach(s))
		assert.Same(t, s, r.Stencil())
	})
	t.Run("flux mismatch", func(t *testing.T) {
		err := r.Attach(&Stencil{Name: "indexDD", Flux: false, Staggered: false})
		require.Error(t, err)
		assert.True(t, IsConsistencyError(err))
	})
	t.Run("staggered mismatch", func(t *testing.T) {
		err := r.Attach(&Stencil{Name: "indexVDD_U1_stag", Flux: true, Staggered: true})
		require.Error(t, err)
		assert.True(t, IsConsistencyError(err))
	})
}
