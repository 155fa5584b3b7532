package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = `
// Lookup tables for the available differencing methods.
#include "something.hxx"

static DiffLookup FirstDerivTable[] = {
    {DIFF_C2, indexDD, NULL, NULL},
    {DIFF_C4, indexDD_C4, NULL, NULL},
};

int unrelated = 0;

static DiffLookup UpwindTable[] = { {DIFF_U1, NULL, indexVDD_U1, NULL} };

static DiffNameLookup DiffNameTable[] = {
    {DIFF_C2, "C2", "Second order central"},
    {DIFF_U1, "U1", "First order upwinding"},
};
`

func TestScan(t *testing.T) {
	t.Run("captures every named block in source order", func(t *testing.T) {
		blocks, err := Scan(strings.NewReader(sampleSource))
		require.NoError(t, err)
		require.Len(t, blocks, 3)
		assert.Equal(t, "FirstDerivTable", blocks[0].Name)
		assert.Equal(t, "UpwindTable", blocks[1].Name)
		assert.Equal(t, DescriptionsTable, blocks[2].Name)
	})

	t.Run("raw text includes the declaration head", func(t *testing.T) {
		blocks, err := Scan(strings.NewReader(sampleSource))
		require.NoError(t, err)
		assert.Contains(t, blocks[0].Raw, "FirstDerivTable[]")
		assert.Contains(t, blocks[0].Raw, "DIFF_C4")
	})

	t.Run("skips blocks with short names", func(t *testing.T) {
		src := "static int xs[] = { {1, 2} };\nstatic DiffLookup FluxTable[] = { {DIFF_U1, NULL, NULL, indexFDD_U1} };\n"
		blocks, err := Scan(strings.NewReader(src))
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, "FluxTable", blocks[0].Name)
	})

	t.Run("skips anonymous blocks", func(t *testing.T) {
		blocks, err := Scan(strings.NewReader("{ {1, 2} }\n"))
		require.NoError(t, err)
		assert.Empty(t, blocks)
	})

	t.Run("unbalanced open brace fails", func(t *testing.T) {
		_, err := Scan(strings.NewReader("static DiffLookup FirstDerivTable[] = { {DIFF_C2, indexDD, NULL, NULL},\n"))
		assert.ErrorIs(t, err, ErrUnbalanced)
	})

	t.Run("stray close brace fails", func(t *testing.T) {
		_, err := Scan(strings.NewReader("} static DiffLookup FirstDerivTable[] = {};\n"))
		assert.ErrorIs(t, err, ErrUnbalanced)
	})

	t.Run("empty input yields no blocks", func(t *testing.T) {
		blocks, err := Scan(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, blocks)
	})
}

func TestTuples(t *testing.T) {
	t.Run("splits entries and trims fields", func(t *testing.T) {
		blocks, err := Scan(strings.NewReader(sampleSource))
		require.NoError(t, err)
		tuples := Tuples(blocks[0].Raw)
		require.Len(t, tuples, 2)
		assert.Equal(t, []string{"DIFF_C2", "indexDD", "NULL", "NULL"}, tuples[0])
		assert.Equal(t, []string{"DIFF_C4", "indexDD_C4", "NULL", "NULL"}, tuples[1])
	})

	t.Run("strips quotes from description rows", func(t *testing.T) {
		blocks, err := Scan(strings.NewReader(sampleSource))
		require.NoError(t, err)
		tuples := Tuples(blocks[2].Raw)
		require.Len(t, tuples, 2)
		assert.Equal(t, []string{"DIFF_C2", "C2", "Second order central"}, tuples[0])
		assert.Equal(t, []string{"DIFF_U1", "U1", "First order upwinding"}, tuples[1])
	})

	t.Run("single-line table", func(t *testing.T) {
		blocks, err := Scan(strings.NewReader(sampleSource))
		require.NoError(t, err)
		tuples := Tuples(blocks[1].Raw)
		require.Len(t, tuples, 1)
		assert.Equal(t, []string{"DIFF_U1", "NULL", "indexVDD_U1", "NULL"}, tuples[0])
	})
}
