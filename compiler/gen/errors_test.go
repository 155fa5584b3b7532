package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarError(t *testing.T) {
	cause := errors.New("boom")
	err := NewGrammarError("FirstDerivTable", "DIFF_C2", "bad entry", cause)

	assert.True(t, errors.Is(err, ErrGrammar))
	assert.True(t, IsGrammarError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "FirstDerivTable")
	assert.Contains(t, err.Error(), "DIFF_C2")
	assert.Contains(t, err.Error(), "bad entry")
	assert.Contains(t, err.Error(), "boom")
}

func TestConsistencyError(t *testing.T) {
	err := NewConsistencyError("indexDDX_norm_DIFF_C2", "indexDD", "flux classification does not match")
	assert.True(t, errors.Is(err, ErrConsistency))
	assert.True(t, IsConsistencyError(err))
	assert.False(t, IsGrammarError(err))
	assert.Contains(t, err.Error(), "indexDDX_norm_DIFF_C2")
}

func TestUnsupportedError(t *testing.T) {
	err := NewUnsupportedError("DIFF_W3", "WENO3 - too hard")
	assert.True(t, errors.Is(err, ErrUnsupportedMethod))
	assert.True(t, IsUnsupportedError(err))
	assert.Contains(t, err.Error(), "DIFF_W3")
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("Fields", nil, "no field types configured")
	assert.True(t, errors.Is(err, ErrMissingConfig))
	assert.True(t, IsConfigError(err))

	withValue := NewConfigError("Package", 42, "package cannot be a number")
	assert.Contains(t, withValue.Error(), "42")
}

func TestErrorsWrapped(t *testing.T) {
	err := NewGrammarError("T", "", "outer", NewUnsupportedError("DIFF_NND", "NND - probably broken"))
	require.True(t, errors.Is(err, ErrGrammar))
	assert.True(t, errors.Is(err, ErrUnsupportedMethod))
	assert.True(t, IsUnsupportedError(err))
}
