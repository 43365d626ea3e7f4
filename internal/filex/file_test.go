package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDirCreates(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "a", "b")

	abs, err := EnsureDir(dir)
	require.NoError(t, err)
	require.Equal(t, dir, abs)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureDirExisting(t *testing.T) {
	base := t.TempDir()

	abs, err := EnsureDir(base)
	require.NoError(t, err)
	require.Equal(t, base, abs)
}
