package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Git.AutoCommit = true
	cfg.Git.AuthorName = "Tester"
	require.NoError(t, Save(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	loaded, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
	assert.Equal(t, "INR", loaded.Display.Currency)
	assert.False(t, loaded.Git.AutoCommit)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("display: ["), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}

func TestResolveDir(t *testing.T) {
	assert.Equal(t, "/tmp/data", ResolveDir("/tmp/data"))

	t.Setenv(EnvDir, "/tmp/from-env")
	assert.Equal(t, "/tmp/from-env", ResolveDir(""))

	t.Setenv(EnvDir, "")
	assert.Equal(t, ".", ResolveDir(""))
}
