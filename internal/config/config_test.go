package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingDefaultLocationReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir, "")
	require.NoError(t, err)
	require.Equal(t, configVersion, cfg.Version)
	require.Empty(t, cfg.Index.Ignore)
}

func TestLoadExplicitMissingPathErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir, filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := Path(dir)
	cfg := &Config{Version: configVersion, Index: IndexingConfig{Ignore: []string{"vendor"}, Workers: 4}}
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(dir, "")
	require.NoError(t, err)
	require.Equal(t, []string{"vendor"}, loaded.Index.Ignore)
	require.Equal(t, 4, loaded.Index.Workers)
}

func TestLoadInvalidYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := Path(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("not: [valid: yaml"), 0o644))

	_, err := Load(dir, "")
	require.Error(t, err)
}
