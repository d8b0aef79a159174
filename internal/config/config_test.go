package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LESSONBOOK_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, SourceEmbedded, cfg.Catalog.Source)
	require.Equal(t, 3, cfg.UI.StartAge)
	require.Equal(t, "dev", cfg.Log.Mode)
	require.Contains(t, cfg.Database.Path, "lessons.db")
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[catalog]
source = "SQLite"

[database]
path = "/tmp/x.db"

[ui]
start_age = 5
`), 0o600))
	t.Setenv("LESSONBOOK_CONFIG", path)
	t.Setenv("LESSONBOOK_LOG_MODE", "prod")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, SourceSQLite, cfg.Catalog.Source)
	require.Equal(t, "/tmp/x.db", cfg.Database.Path)
	require.Equal(t, 5, cfg.UI.StartAge)
	require.Equal(t, "prod", cfg.Log.Mode)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LESSONBOOK_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load()
	require.Error(t, err)
}
