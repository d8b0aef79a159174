package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, err := New("prod", path)
	require.NoError(t, err)

	l.With("component", "test").Info("catalog loaded", "lessons", 8)
	l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "catalog loaded")
	require.Contains(t, string(data), `"lessons":8`)
}

func TestEmptyPathDiscards(t *testing.T) {
	l, err := New("dev", "")
	require.NoError(t, err)
	l.Debug("nothing")
	l.Warn("nothing")
	l.Error("nothing")
}
