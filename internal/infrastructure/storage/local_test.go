package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	l, err := NewLocal(zap.NewNop(), t.TempDir())
	require.NoError(t, err)
	return l
}

func mkFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestLocal_SaveTemp(t *testing.T) {
	l := newTestLocal(t)

	p, err := l.SaveTemp(bytes.NewReader([]byte("payload")), "leaf.bin")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(l.Root(), "leaf.bin"), p)

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(b))

	// staging leaves are exclusive, a second writer must not clobber
	_, err = l.SaveTemp(bytes.NewReader([]byte("other")), "leaf.bin")
	require.Error(t, err)
	b, err = os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(b))
}

func TestLocal_Abs(t *testing.T) {
	l := newTestLocal(t)

	assert.Equal(t,
		filepath.Join(l.Root(), "products", "images", "a.png"),
		l.Abs("/products/images/a.png"),
	)
	assert.Equal(t,
		filepath.Join(l.Root(), "a.png"),
		l.Abs("a.png"),
	)
}

func TestLocal_Move(t *testing.T) {
	l := newTestLocal(t)

	src, err := l.SaveTemp(bytes.NewReader([]byte("data")), "src.bin")
	require.NoError(t, err)

	dstDir := filepath.Join(l.Root(), "products", "images")
	require.NoError(t, l.MkdirAll(dstDir))

	dst := filepath.Join(dstDir, "src.bin")
	require.NoError(t, l.Move(src, dst))

	assert.NoFileExists(t, src)
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))
}

func TestLocal_Move_MissingSource(t *testing.T) {
	l := newTestLocal(t)
	err := l.Move(filepath.Join(l.Root(), "nope.bin"), filepath.Join(l.Root(), "dst.bin"))
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(l.Root(), "dst.bin"))
}

func TestLocal_PruneEmpty_Chain(t *testing.T) {
	l := newTestLocal(t)

	deep := filepath.Join(l.Root(), "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0o755))

	require.NoError(t, l.PruneEmpty(deep))

	// the whole empty chain is gone, the root itself survives
	assert.NoDirExists(t, filepath.Join(l.Root(), "a"))
	assert.DirExists(t, l.Root())
}

func TestLocal_PruneEmpty_StopsAtNonEmpty(t *testing.T) {
	l := newTestLocal(t)

	mkFile(t, filepath.Join(l.Root(), "a", "keep.txt"))
	empty := filepath.Join(l.Root(), "a", "b", "c")
	require.NoError(t, os.MkdirAll(empty, 0o755))

	require.NoError(t, l.PruneEmpty(empty))

	assert.NoDirExists(t, filepath.Join(l.Root(), "a", "b"))
	assert.DirExists(t, filepath.Join(l.Root(), "a"))
	assert.FileExists(t, filepath.Join(l.Root(), "a", "keep.txt"))
}

func TestLocal_PruneEmpty_NeverLeavesRoot(t *testing.T) {
	l := newTestLocal(t)

	outside := t.TempDir()
	victim := filepath.Join(outside, "dir")
	require.NoError(t, os.MkdirAll(victim, 0o755))

	require.NoError(t, l.PruneEmpty(victim))
	assert.DirExists(t, victim)

	// the root is a hard floor even when handed directly
	require.NoError(t, l.PruneEmpty(l.Root()))
	assert.DirExists(t, l.Root())

	// parents of the root are off limits too
	require.NoError(t, l.PruneEmpty(filepath.Dir(l.Root())))
	assert.DirExists(t, filepath.Dir(l.Root()))
}

func TestLocal_PruneEmpty_MissingDirSkipsToParent(t *testing.T) {
	l := newTestLocal(t)

	parent := filepath.Join(l.Root(), "a")
	require.NoError(t, os.MkdirAll(parent, 0o755))

	require.NoError(t, l.PruneEmpty(filepath.Join(parent, "gone")))
	assert.NoDirExists(t, parent)
}

func TestLocal_List_All(t *testing.T) {
	l := newTestLocal(t)

	mkFile(t, filepath.Join(l.Root(), "products", "images", "a.png"))
	mkFile(t, filepath.Join(l.Root(), "products", "documents", "b.pdf"))
	mkFile(t, filepath.Join(l.Root(), "banners", "images", "c.png"))
	// staged temp files at the root are not part of the tree listing
	mkFile(t, filepath.Join(l.Root(), "staging-leaf.png"))

	got := l.List("all")
	sort.Strings(got)
	assert.Equal(t, []string{
		"/banners/images",
		"/banners/images/c.png",
		"/products/documents",
		"/products/documents/b.pdf",
		"/products/images",
		"/products/images/a.png",
	}, got)

	// selector match is case-insensitive
	gotUpper := l.List("ALL")
	sort.Strings(gotUpper)
	assert.Equal(t, got, gotUpper)
}

func TestLocal_List_SingleLevel(t *testing.T) {
	l := newTestLocal(t)

	mkFile(t, filepath.Join(l.Root(), "products", "images", "a.png"))
	mkFile(t, filepath.Join(l.Root(), "products", "images", "b.png"))

	got := l.List("products/images")
	sort.Strings(got)
	assert.Equal(t, []string{
		"/products/images/a.png",
		"/products/images/b.png",
	}, got)

	// one level only, children of subdirectories are not expanded
	got = l.List("products")
	assert.Equal(t, []string{"/products/images"}, got)
}

func TestLocal_List_NeverLeavesRoot(t *testing.T) {
	l := newTestLocal(t)

	// make sure the root's parent has at least one entry to leak
	mkFile(t, filepath.Join(filepath.Dir(l.Root()), "sibling.txt"))
	mkFile(t, filepath.Join(l.Root(), "products", "images", "a.png"))

	// selectors resolving at or above the root list nothing
	assert.Equal(t, []string{}, l.List(".."))
	assert.Equal(t, []string{}, l.List("../.."))
	assert.Equal(t, []string{}, l.List("products/.."))
	assert.Equal(t, []string{}, l.List("."))
	assert.Equal(t, []string{}, l.List(""))
}

func TestLocal_List_MissingSelector(t *testing.T) {
	l := newTestLocal(t)
	assert.Equal(t, []string{}, l.List("no-such-dir"))
}

func TestLocal_ExistsAndRemove(t *testing.T) {
	l := newTestLocal(t)

	p := filepath.Join(l.Root(), "obj.bin")
	mkFile(t, p)

	assert.True(t, l.Exists(p))
	require.NoError(t, l.Remove(p))
	assert.False(t, l.Exists(p))

	err := l.Remove(p)
	require.ErrorIs(t, err, os.ErrNotExist)
}
