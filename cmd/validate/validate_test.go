package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func TestResolveParserConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := resolveParserConfig("default", false)

	require.NoError(t, err)
	assert.False(t, cfg.FailFast)
	assert.True(t, cfg.ValidateOptionalFields)
}

func TestResolveParserConfigFromFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	configFile := []byte("validation:\n  profile: lenient\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), configFile, 0600))
	chdir(t, dir)

	t.Run("config file profile applies without an explicit flag", func(t *testing.T) {
		cfg, err := resolveParserConfig("default", false)
		require.NoError(t, err)
		assert.False(t, cfg.ValidateOptionalFields)
		assert.False(t, cfg.FailFast)
	})

	t.Run("explicit flag overrides the config file", func(t *testing.T) {
		cfg, err := resolveParserConfig("fail-fast", true)
		require.NoError(t, err)
		assert.True(t, cfg.FailFast)
		assert.True(t, cfg.ValidateOptionalFields)
	})
}

func TestResolveParserConfigUnknownProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	_, err := resolveParserConfig("strict", true)

	assert.Error(t, err)
}
