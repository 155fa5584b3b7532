package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDescriptions(t *testing.T) {
	t.Run("wrong arity is fatal", func(t *testing.T) {
		_, err := NewDescriptions([][]string{{"DIFF_C2", "C2"}})
		require.Error(t, err)
		assert.True(t, IsGrammarError(err))
	})
	t.Run("canonical lookup is case-insensitive", func(t *testing.T) {
		d, err := NewDescriptions([][]string{
			{"DIFF_C2", "C2", "Second order central"},
		})
		require.NoError(t, err)
		for _, key := range []string{"C2", "c2"} {
			m, ok := d.Canonical(key)
			require.True(t, ok, key)
			assert.Equal(t, "DIFF_C2", m)
		}
		_, ok := d.Canonical("C4")
		assert.False(t, ok)
	})
	t.Run("first key wins", func(t *testing.T) {
		d, err := NewDescriptions([][]string{
			{"DIFF_C2", "C2", "Second order central"},
			{"DIFF_C2_FIELD", "c2", "Field-aligned variant"},
		})
		require.NoError(t, err)
		m, ok := d.Canonical("C2")
		require.True(t, ok)
		assert.Equal(t, "DIFF_C2", m)
	})
}

func TestDescriptionsForTable(t *testing.T) {
	d, err := NewDescriptions([][]string{
		{"DIFF_U1", "U1", "First order upwinding"},
		{"DIFF_C2", "C2", "Second order central"},
		{"DIFF_C4", "C4", "Fourth order central"},
	})
	require.NoError(t, err)

	tbl, err := NewTable("FirstDerivTable", [][]string{
		{"DIFF_C4", "indexDD_C4", "NULL", "NULL"},
		{"DIFF_C2", "indexDD", "NULL", "NULL"},
	})
	require.NoError(t, err)

	rows := d.ForTable(tbl)
	require.Len(t, rows, 2)
	// Table-entry order, not description order.
	assert.Equal(t, "DIFF_C4", rows[0].Method)
	assert.Equal(t, "DIFF_C2", rows[1].Method)
	assert.Equal(t, "Second order central", rows[1].Text)
}
