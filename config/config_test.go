package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemtools/latticelab/errors"
)

func TestLoadFromBytes(t *testing.T) {
	data := []byte(`
theme: terminal
preset: arrows
start_page: Born-Haber Cycle
logging:
  level: debug
`)

	cfg, err := LoadFromBytes(data)
	require.NoError(t, err)

	assert.Equal(t, "terminal", cfg.Theme)
	assert.Equal(t, "arrows", cfg.Preset)
	assert.Equal(t, "Born-Haber Cycle", cfg.StartPage)

	type loggingSection struct {
		Level string `yaml:"level"`
	}
	var logCfg loggingSection
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
}

func TestLoadFromBytesDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, "kanagawa", cfg.Theme)
	assert.Equal(t, "vim", cfg.Preset)
	assert.Empty(t, cfg.StartPage)
}

func TestUnmarshalExtensionMissingSection(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("theme: kanagawa"))
	require.NoError(t, err)

	type anything struct {
		Field string `yaml:"field"`
	}
	var out anything
	require.NoError(t, cfg.UnmarshalExtension("nonexistent", &out))
	assert.Empty(t, out.Field)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "latticelab.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latticelab.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestEnvVarExpansion(t *testing.T) {
	t.Setenv("LATTICELAB_TEST_THEME", "terminal")

	cfg, err := LoadFromBytes([]byte("theme: ${LATTICELAB_TEST_THEME}"))
	require.NoError(t, err)
	assert.Equal(t, "terminal", cfg.Theme)

	// Unset variables are left as-is rather than expanded to empty.
	cfg, err = LoadFromBytes([]byte("start_page: ${LATTICELAB_TEST_UNSET_VAR}"))
	require.NoError(t, err)
	assert.Equal(t, "${LATTICELAB_TEST_UNSET_VAR}", cfg.StartPage)
}

func TestLoadFromOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "latticelab.yml"),
		[]byte("theme: kanagawa\npreset: vim\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "latticelab.override.yml"),
		[]byte("theme: terminal\n"), 0644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "terminal", cfg.Theme, "override should win")
	assert.Equal(t, "vim", cfg.Preset, "unset override fields keep project values")
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	cfgPath := filepath.Join(root, "latticelab.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme: kanagawa"), 0644))

	assert.Equal(t, cfgPath, FindConfigFile(nested))
}
