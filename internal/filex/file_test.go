package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_CreatesUnderBase(t *testing.T) {
	base := t.TempDir()

	got, err := EnsureDir(base, "download")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "download"), got)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureDir_EmptyBaseUsesCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir("", "download")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(filepath.Join(tmp, "download"))
	require.NoError(t, err)
	gotReal, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, want, gotReal)
}

func TestEnsureDir_Idempotent(t *testing.T) {
	base := t.TempDir()

	first, err := EnsureDir(base, "download")
	require.NoError(t, err)
	second, err := EnsureDir(base, "download")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureDir_FailsIfFileWithSameNameExists(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "download"), []byte("x"), 0o660))

	_, err := EnsureDir(base, "download")
	require.Error(t, err)
}

func TestEnsureParent(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "a", "b", "state.db")

	require.NoError(t, EnsureParent(file))
	fi, err := os.Stat(filepath.Join(base, "a", "b"))
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	require.NoError(t, EnsureParent("state.db"))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "foto.jpg", BaseName("image/upload/v1/evidencias/foto.jpg"))
	assert.Equal(t, "foto.jpg", BaseName("evidencias/foto.jpg?w=200"))
	assert.Equal(t, "file", BaseName(""))
	assert.Equal(t, "file", BaseName("/"))
}
