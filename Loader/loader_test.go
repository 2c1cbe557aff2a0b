package Loader

import (
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/g-m-twostay/go-rbtree/Trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(t *testing.T, src Source) []string {
	t.Helper()
	var ws []string
	require.NoError(t, src.Each(func(w string) bool {
		ws = append(ws, w)
		return true
	}))
	return ws
}

func file(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func memDB(t *testing.T) *pebble.DB {
	t.Helper()
	db, err := Open("", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func tree() *Trees.RBTree[string, uint32] {
	return Trees.NewOrdered[string, uint32](Trees.Config{}, 0)
}

func TestFixed(t *testing.T) {
	assert.Len(t, words(t, DefaultWords), 9)
	var got []string
	require.NoError(t, DefaultWords.Each(func(w string) bool {
		got = append(got, w)
		return len(got) < 2
	}))
	assert.Equal(t, []string{"the", "quick"}, got)
}

func TestDictionary(t *testing.T) {
	path := file(t, "b\r\n\n  a \nc")
	assert.Equal(t, []string{"b", "a", "c"}, words(t, Dictionary{path}))

	err := Dictionary{filepath.Join(t.TempDir(), "missing")}.Each(func(string) bool { return true })
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLineStart(t *testing.T) {
	long := strings.Repeat("x", 3*chunk)
	content := "ab\n" + long + "\ncd"
	r := strings.NewReader(content)
	for off, want := range map[int64]int64{
		0: 0, 1: 0, 2: 0, 3: 3, 3 + chunk + 7: 3,
		int64(3 + len(long)): 3, int64(4 + len(long)): int64(4 + len(long)),
		int64(len(content) - 1): int64(4 + len(long)),
	} {
		got, err := lineStart(r, off)
		require.NoError(t, err)
		assert.Equal(t, want, got, "offset %d", off)
	}
}

func TestSampler(t *testing.T) {
	lines := []string{"alpha", "beta", "gamma", strings.Repeat("delta", 100), "epsilon"}
	path := file(t, strings.Join(lines, "\n")+"\n")

	ws := words(t, Sampler{Path: path, N: 200, Rand: rand.New(rand.NewSource(1))})
	assert.Len(t, ws, 200)
	for _, w := range ws {
		assert.Contains(t, lines, w)
	}

	ws = words(t, Sampler{Path: path, N: 50, Rand: rand.New(rand.NewSource(1)), Distinct: true})
	assert.LessOrEqual(t, len(ws), len(lines))
	assert.Equal(t, len(ws), len(dedup(ws)))
	for _, w := range ws {
		assert.Contains(t, lines, w)
	}

	assert.Empty(t, words(t, Sampler{Path: file(t, ""), N: 10}))
}

func dedup(ws []string) []string {
	c := slices.Clone(ws)
	slices.Sort(c)
	return slices.Compact(c)
}

func TestStore(t *testing.T) {
	db := memDB(t)
	require.NoError(t, db.Set([]byte("other/zebra"), nil, pebble.Sync))
	n, err := Import(db, DefaultWords, "words/")
	require.NoError(t, err)
	assert.Equal(t, 9, n)

	want := dedup(DefaultWords)
	assert.Equal(t, want, words(t, Store{db, "words/"}))
	assert.Len(t, words(t, Store{db, ""}), len(want)+1)
	assert.Empty(t, words(t, Store{db, "none/"}))
}

func TestUpperBound(t *testing.T) {
	assert.Equal(t, []byte("words0"), upperBound([]byte("words/")))
	assert.Equal(t, []byte{'b'}, upperBound([]byte{'a', 0xff}))
	assert.Nil(t, upperBound([]byte{0xff, 0xff}))
	assert.Nil(t, upperBound(nil))
}

func TestLoad(t *testing.T) {
	tr := tree()
	s, err := Load(tr, DefaultWords, Options{VerifyEach: true})
	require.NoError(t, err)
	assert.Equal(t, 9, s.Read)
	assert.Equal(t, 8, s.Inserted)
	assert.Equal(t, 1, s.Duplicates)
	assert.Equal(t, uint(8), tr.Size())
	if s.Elapsed > 0 {
		assert.Equal(t, s.Elapsed/8, s.PerNode())
	}
	assert.Zero(t, Stats{}.PerNode())
}

func TestLoad_FoldLimit(t *testing.T) {
	tr := tree()
	s, err := Load(tr, Fixed{"B", "b", "A", "c"}, Options{Fold: true, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, Stats{Read: 3, Inserted: 2, Duplicates: 1, Elapsed: s.Elapsed}, s)
	assert.True(t, tr.Has("a"))
	assert.False(t, tr.Has("c"))
}

func TestLoad_Store(t *testing.T) {
	db := memDB(t)
	ws := words(t, Sampler{Path: file(t, strings.Repeat("x\ny\nz\n", 50)), N: 100, Rand: rand.New(rand.NewSource(2))})
	_, err := Import(db, Fixed(ws), "")
	require.NoError(t, err)

	tr := tree()
	s, err := Load(tr, Store{DB: db}, Options{VerifyEach: true})
	require.NoError(t, err)
	assert.Zero(t, s.Duplicates)
	assert.Equal(t, len(dedup(ws)), s.Inserted)
}

// brokenTree reports a violation after its second insertion.
type brokenTree struct {
	*Trees.RBTree[string, uint32]
}

func (u brokenTree) VerifyTree() error {
	if u.Size() > 1 {
		return &Trees.ViolationError{Kind: Trees.RedViolation, Node: 2}
	}
	return nil
}

func TestLoad_VerifyFails(t *testing.T) {
	s, err := Load(brokenTree{tree()}, DefaultWords, Options{VerifyEach: true})
	var ve *Trees.ViolationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, Trees.RedViolation, ve.Kind)
	assert.Contains(t, err.Error(), `"quick"`)
	assert.Equal(t, 2, s.Read)
}

func TestLoad_SourceError(t *testing.T) {
	_, err := Load(tree(), Dictionary{filepath.Join(t.TempDir(), "missing")}, Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
