package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardCommandFlags(t *testing.T) {
	cmd := NewStandardCommand("latticelab", "test")

	require.NoError(t, cmd.ParseFlags([]string{"--verbose", "--json", "--config", "/tmp/latticelab.yml"}))

	opts := GetOptions(cmd)
	assert.True(t, opts.Verbose)
	assert.True(t, opts.JSONOutput)
	assert.Equal(t, "/tmp/latticelab.yml", opts.ConfigFile)
}

func TestGetOptionsDefaults(t *testing.T) {
	cmd := NewStandardCommand("latticelab", "test")
	require.NoError(t, cmd.ParseFlags(nil))

	opts := GetOptions(cmd)
	assert.False(t, opts.Verbose)
	assert.False(t, opts.JSONOutput)
	assert.Empty(t, opts.ConfigFile)
}

func TestLoadConfigWithExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latticelab.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme: terminal\npreset: arrows\n"), 0644))

	cmd := NewStandardCommand("latticelab", "test")
	require.NoError(t, cmd.ParseFlags([]string{"--config", path}))

	cfg, err := LoadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "terminal", cfg.Theme)
	assert.Equal(t, "arrows", cfg.Preset)
}
