package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, rel string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("content\n"), 0o644))
}

func TestWalkPrunesIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "main.py")
	touch(t, root, "node_modules/evil/index.js")
	touch(t, root, "sub/__pycache__/cached.pyc")
	touch(t, root, "sub/ok.go")

	paths, err := New(nil).Walk(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.py", "sub/ok.go"}, paths)
}

func TestWalkSkipsHiddenEntries(t *testing.T) {
	root := t.TempDir()
	touch(t, root, ".env")
	touch(t, root, ".secret/config.py")
	touch(t, root, "visible.py")

	paths, err := New(nil).Walk(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"visible.py"}, paths)
}

func TestWalkExtraIgnoreDirs(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "target/generated.rs")
	touch(t, root, "src/lib.rs")

	paths, err := New([]string{"target"}).Walk(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/lib.rs"}, paths)
}

func TestWalkDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"b/two.py", "a/one.py", "c.py", "a/zz.py"} {
		touch(t, root, rel)
	}

	first, err := New(nil).Walk(root)
	require.NoError(t, err)
	second, err := New(nil).Walk(root)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a/one.py", "a/zz.py", "b/two.py", "c.py"}, first)
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := New(nil).Walk(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestWalkRootIsFile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "f.py")
	_, err := New(nil).Walk(filepath.Join(root, "f.py"))
	assert.Error(t, err)
}
