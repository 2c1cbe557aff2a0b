package Trees

import (
	"strconv"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
)

// compares the in-order sequence against https://github.com/emirpasic/gods red-black tree
// and https://github.com/google/btree on the same input.
func TestRBTree_AgainstGods(t *testing.T) {
	tree := NewOrdered[int, uint32](Config{}, 0)
	ref := redblacktree.NewWithIntComparator()
	for range tAddN {
		a := _R.Intn(tAddValRange)
		_, in := ref.Get(a)
		if tree.Insert(a) == in {
			t.Fatalf("insert of %d disagrees with gods", a)
		}
		ref.Put(a, struct{}{})
	}
	if int(tree.Size()) != ref.Size() {
		t.Fatalf("tree size is %d, want %d", tree.Size(), ref.Size())
	}
	keys := ref.Keys()
	i := 0
	tree.InOrder(func(v int) bool {
		if keys[i].(int) != v {
			t.Errorf("wrong value at index %d: %d, want %d", i, v, keys[i])
			return false
		}
		i++
		return true
	})
	if h, err := tree.Verify(tree.root); err != nil {
		t.Fatal(err)
	} else {
		t.Logf("black height: %d, depth: %f.\n", h, tree.depth())
	}
}

func TestRBTree_AgainstBTree(t *testing.T) {
	tree := NewOrdered[string, uint32](Config{}, 0)
	ref := btree.NewOrderedG[string](16)
	for range tAddN / 2 {
		a := strconv.Itoa(_R.Intn(tAddValRange))
		_, replaced := ref.ReplaceOrInsert(a)
		if tree.Insert(a) == replaced {
			t.Fatalf("insert of %q disagrees with btree", a)
		}
	}
	var want []string
	ref.Ascend(func(item string) bool {
		want = append(want, item)
		return true
	})
	got := sorted(tree)
	if len(got) != len(want) {
		t.Fatalf("tree size is %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("wrong value at index %d: %q, want %q", i, got[i], want[i])
		}
	}
	if v, _ := tree.Minimum(); v != want[0] {
		t.Errorf("wrong minimum %q", v)
	}
	if v, _ := tree.Maximum(); v != want[len(want)-1] {
		t.Errorf("wrong maximum %q", v)
	}
	tree.MustVerify()
}
