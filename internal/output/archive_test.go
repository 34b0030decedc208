package output

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRoundTrip(t *testing.T) {
	w := &Writer{Dir: t.TempDir(), Now: func() time.Time { return time.Unix(0, 0).UTC() }}

	var paths []string
	for _, style := range []string{"gradient", "abstract", "geometric"} {
		p, err := w.Save(testImage(10, 10), style)
		require.NoError(t, err)
		paths = append(paths, p)
	}

	dest := filepath.Join(t.TempDir(), "out", "batch.tar.xz")
	require.NoError(t, Archive(dest, paths))

	entries, err := ListArchive(dest)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, filepath.Base(paths[i]), e.Name)
		fi, err := Stat(paths[i])
		require.NoError(t, err)
		assert.Equal(t, fi.Bytes, e.Size)
	}
}

func TestArchiveErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, Archive(filepath.Join(dir, "empty.tar.xz"), nil))
	assert.Error(t, Archive(filepath.Join(dir, "missing.tar.xz"), []string{filepath.Join(dir, "nope.png")}))
	assert.NoFileExists(t, filepath.Join(dir, "missing.tar.xz"))
}

func TestArchiveDuplicateNames(t *testing.T) {
	a := &Writer{Dir: filepath.Join(t.TempDir(), "a"), Now: fixedClock}
	b := &Writer{Dir: filepath.Join(t.TempDir(), "b"), Now: fixedClock}
	p1, err := a.Save(testImage(2, 2), "gradient")
	require.NoError(t, err)
	p2, err := b.Save(testImage(2, 2), "gradient")
	require.NoError(t, err)

	assert.Error(t, Archive(filepath.Join(t.TempDir(), "dup.tar.xz"), []string{p1, p2}))
}
