package provider

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Local_ListDirectories_returnsOnlyDirectories(t *testing.T) {
	assertion := assert.New(t)
	root := t.TempDir()

	require.NoError(t, os.Mkdir(filepath.Join(root, "b_dir"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "a_dir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("content"), 0o644))

	sut := NewLocal()
	names, err := sut.ListDirectories(root)

	assertion.NoError(err)
	assertion.Equal([]string{"a_dir", "b_dir"}, names)
}

func Test_Local_ListDirectories_followsSymbolicLinksToDirectories(t *testing.T) {
	assertion := assert.New(t)
	root := t.TempDir()
	outside := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("content"), 0o644))

	if err := os.Symlink(outside, filepath.Join(root, "link_to_dir")); err != nil {
		t.Skipf("symbolic links not available: %s", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(root, "file.txt"), filepath.Join(root, "link_to_file")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "dangling")))

	names, err := NewLocal().ListDirectories(root)

	assertion.NoError(err)
	assertion.Equal([]string{"link_to_dir"}, names)
}

func Test_Local_ListDirectories_failsForMissingRoot(t *testing.T) {
	assertion := assert.New(t)

	names, err := NewLocal().ListDirectories(filepath.Join(t.TempDir(), "missing"))

	assertion.Nil(names)
	assertion.ErrorIs(err, os.ErrNotExist)
}

func Test_Local_ListDirectories_returnsNothingForEmptyRoot(t *testing.T) {
	assertion := assert.New(t)

	names, err := NewLocal().ListDirectories(t.TempDir())

	assertion.NoError(err)
	assertion.Empty(names)
}

func Test_Local_Timestamps_areCloseToCreation(t *testing.T) {
	assertion := assert.New(t)
	root := t.TempDir()
	before := time.Now().Add(-5 * time.Second).Unix()

	dir := filepath.Join(root, "fresh")
	require.NoError(t, os.Mkdir(dir, 0o755))

	after := time.Now().Add(5 * time.Second).Unix()
	sut := NewLocal()

	if birth, err := sut.BirthTime(dir); err == nil && birth > 0 {
		assertion.GreaterOrEqual(birth, before)
		assertion.LessOrEqual(birth, after)
	}

	ctime, err := sut.ChangeTime(dir)
	if err != nil {
		t.Skipf("ctime not available on this platform: %s", err)
	}

	assertion.GreaterOrEqual(ctime, before)
	assertion.LessOrEqual(ctime, after)
}

func Test_Local_Timestamps_failForMissingPath(t *testing.T) {
	assertion := assert.New(t)
	missing := filepath.Join(t.TempDir(), "missing")
	sut := NewLocal()

	_, err := sut.BirthTime(missing)
	assertion.Error(err)

	_, err = sut.ChangeTime(missing)
	assertion.Error(err)
}

func Test_Local_Size_sumsRegularFiles(t *testing.T) {
	assertion := assert.New(t)
	dir := filepath.Join(t.TempDir(), "data")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bin"), make([]byte, 100), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.bin"), make([]byte, 23), 0o644))

	size, err := NewLocal().Size(dir)

	assertion.NoError(err)
	assertion.Equal(uint64(123), size)
}

func Test_Local_RemoveAll_removesDirectoryRecursively(t *testing.T) {
	assertion := assert.New(t)
	root := t.TempDir()
	dir := filepath.Join(root, "stale")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested", "deeper"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "file"), []byte("x"), 0o644))

	assertion.NoError(NewLocal().RemoveAll(dir))

	_, err := os.Stat(dir)
	assertion.ErrorIs(err, os.ErrNotExist)
}

func Test_Local_RemoveAll_keepsTargetOfSymbolicLink(t *testing.T) {
	assertion := assert.New(t)
	root := t.TempDir()
	target := t.TempDir()
	link := filepath.Join(root, "link")

	require.NoError(t, os.WriteFile(filepath.Join(target, "keep.txt"), []byte("x"), 0o644))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symbolic links not available: %s", err)
	}

	assertion.NoError(NewLocal().RemoveAll(link))

	_, err := os.Lstat(link)
	assertion.ErrorIs(err, os.ErrNotExist)
	_, err = os.Stat(filepath.Join(target, "keep.txt"))
	assertion.NoError(err)
}
