package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "/uploads/")
	require.NoError(t, err)

	url, err := ls.Save(strings.NewReader("fake-png"), "PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	data, err := os.ReadFile(ls.FullPath(url))
	require.NoError(t, err)
	assert.Equal(t, "fake-png", string(data))

	require.NoError(t, ls.Delete(url))
	_, err = os.Stat(ls.FullPath(url))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, ls.Delete(url))
}

func TestLocalStorage_FullPathStaysInsideBase(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "passwd"), ls.FullPath("/uploads/../../etc/passwd"))
	assert.Equal(t, "", ls.FullPath(".."))
}
