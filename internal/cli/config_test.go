package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "tables_cleaned.cxx", cfg.Input)
	assert.Equal(t, "generated", cfg.Target)
	assert.Equal(t, "mesh", cfg.Package)
	assert.True(t, cfg.Manifest)
	assert.False(t, cfg.Strict)

	require.Len(t, cfg.Fields, 2)
	assert.Equal(t, "Field3D", cfg.Fields[0].Name)
	assert.Equal(t, []string{"x", "y", "z"}, cfg.Fields[0].Directions)
	assert.Equal(t, "Field2D", cfg.Fields[1].Name)
	assert.Equal(t, []string{"x", "y"}, cfg.Fields[1].Directions)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "derivgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input: tables.cxx
target: out
package: aiolos
fields:
  - name: Field3D
    directions: [x, z]
`), 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "tables.cxx", cfg.Input)
	assert.Equal(t, "out", cfg.Target)
	assert.Equal(t, "aiolos", cfg.Package)
	require.Len(t, cfg.Fields, 1)
	assert.Equal(t, []string{"x", "z"}, cfg.Fields[0].Directions)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DERIVGEN_TARGET", "env-out")
	t.Setenv("DERIVGEN_PACKAGE", "envmesh")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "env-out", cfg.Target)
	assert.Equal(t, "envmesh", cfg.Package)
}

func TestLoadConfigFlagPriority(t *testing.T) {
	t.Setenv("DERIVGEN_TARGET", "env-out")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("target", "generated", "")
	flags.String("package", "mesh", "")
	require.NoError(t, flags.Set("target", "flag-out"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	// A changed flag beats the environment; an unchanged one does not
	// clobber lower layers.
	assert.Equal(t, "flag-out", cfg.Target)
	assert.Equal(t, "mesh", cfg.Package)
}
