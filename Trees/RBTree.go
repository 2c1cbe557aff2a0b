package Trees

import (
	"cmp"
	"log/slog"

	"golang.org/x/exp/constraints"
)

// Config holds the injectable parts of an RBTree. The zero value is a silent tree.
type Config struct {
	// Logger receives a Debug record for every structural change when Trace is set.
	Logger *slog.Logger
	Trace  bool
}

// RBTree is a red-black binary search tree with no repeated values.
// T is the type of values it holds, ordered by the comparator given to New.
// S is the type of the arena indexes that address nodes; index 0 is the absent
// node, so S must be able to count one past the largest size of the tree.
// Nodes are never removed and keep their index for the life of the tree.
// The tree isn't safe for concurrent use: there must be one writer at a time,
// and no readers while it writes.
// The height D of the tree is at most 2*log2(n+1).
type RBTree[T any, S constraints.Unsigned] struct {
	base[S]
	vs  []T // vs[i-1] is the value of node i
	cmp func(a, b T) int
	log *slog.Logger // nil unless tracing
}

// New returns an empty tree ordered by cmp, which must be a strict total order:
// negative when a<b, zero when a==b, positive when a>b. hint is the expected size.
func New[T any, S constraints.Unsigned](cmp func(a, b T) int, cfg Config, hint S) *RBTree[T, S] {
	u := &RBTree[T, S]{
		base: base[S]{ifs: make([]info[S], 1, int(hint)+1)},
		vs:   make([]T, 0, hint),
		cmp:  cmp,
	}
	if cfg.Trace && cfg.Logger != nil {
		u.log = cfg.Logger.With("component", "rbtree")
	}
	return u
}

// NewOrdered is New using cmp.Compare.
func NewOrdered[T cmp.Ordered, S constraints.Unsigned](cfg Config, hint S) *RBTree[T, S] {
	return New[T, S](cmp.Compare[T], cfg, hint)
}

func (u *RBTree[T, S]) trace(msg string, args ...any) {
	if u.log != nil {
		u.log.Debug(msg, args...)
	}
}

// search the subtree rooting at curI for v recursively. Returns the node holding v
// and 0, or the node v should hang off together with the sign of comparing v to it.
// Time: O(D)
func (u *RBTree[T, S]) search(v T, curI S) (S, int) {
	c := u.cmp(v, u.vs[curI-1])
	if c == 0 {
		return curI, 0
	}
	if next := u.ifs[curI].links[dirOf(c)]; next != 0 {
		return u.search(v, next)
	}
	return curI, c
}

// Insert v into the tree. Returns false, leaving the tree untouched, if an equal
// value is already in it. A panic raised by the comparator reaches the caller as is.
// Time: O(D)
func (u *RBTree[T, S]) Insert(v T) bool {
	if u.root == 0 {
		u.root = u.alloc(false, 0)
		u.vs = append(u.vs, v)
		u.trace("insert root", "node", u.root, "value", v)
		return true
	}
	at, c := u.search(v, u.root)
	if c == 0 {
		u.trace("insert duplicate", "node", at, "value", v)
		return false
	}
	d := dirOf(c)
	n := u.alloc(true, u.ifs[at].depth+1)
	u.vs = append(u.vs, v)
	u.setChild(at, d, n)
	u.trace("attach", "node", n, "value", v, "parent", at, "dir", d)
	u.rebalance(at, d)
	u.ifs[u.root].red = false
	return true
}

// rebalance walks from n up to the root. d is the side of n the walk came from.
// At each step a black node with two red children is split, and a red child on
// side d with a red child of its own is rotated away.
func (u *RBTree[T, S]) rebalance(n S, d Direction) {
	for {
		c, o := u.ifs[n].links[d], u.ifs[n].links[d.Not()]
		if !u.ifs[n].red && u.isRed(c) && u.isRed(o) {
			u.split(n)
		} else if u.isRed(c) {
			if u.isRed(u.ifs[c].links[d]) {
				n = u.rotate(n, d.Not())
				u.trace("rotate", "node", n, "dir", d.Not())
			} else if u.isRed(u.ifs[c].links[d.Not()]) {
				n = u.doubleRotate(n, d.Not())
				u.trace("double rotate", "node", n, "dir", d.Not())
			}
		}
		p := u.ifs[n].links[Parent]
		if p == 0 {
			return
		}
		d, n = u.parentDir(n), p
	}
}

// split recolors the black node n with two red children: the children turn
// black and n turns red, unless n is the root.
func (u *RBTree[T, S]) split(n S) {
	u.ifs[n].red = n != u.root
	u.ifs[u.ifs[n].links[Left]].red = false
	u.ifs[u.ifs[n].links[Right]].red = false
	u.trace("split", "node", n)
}

// Root returns the index of the root node, and false if the tree is empty.
func (u *RBTree[T, S]) Root() (S, bool) {
	return u.root, u.root != 0
}

func (u *RBTree[T, S]) IsRoot(h S) bool {
	return h != 0 && h == u.root
}

// Value of node h. h must be a node of u.
func (u *RBTree[T, S]) Value(h S) T {
	return u.vs[h-1]
}

// IsRed reports the color of node h; absent nodes are black.
func (u *RBTree[T, S]) IsRed(h S) bool {
	return u.isRed(h)
}

// Child returns the link of h in direction d, Parent included. 0 if absent.
func (u *RBTree[T, S]) Child(h S, d Direction) S {
	return u.child(h, d)
}

// ParentDir tells which child of its parent h is; None for the root.
func (u *RBTree[T, S]) ParentDir(h S) Direction {
	return u.parentDir(h)
}

// Depth is the cached depth of h. It is exact right after FixDepths, MinMaxDepth
// or PreOrder, and may be stale after later insertions.
func (u *RBTree[T, S]) Depth(h S) S {
	return u.ifs[h].depth
}

// Size of the tree.
// Time: O(1)
func (u *RBTree[T, S]) Size() uint {
	return uint(len(u.vs))
}

// Has v in the tree.
// Time: O(D)
func (u *RBTree[T, S]) Has(v T) bool {
	if u.root == 0 {
		return false
	}
	_, c := u.search(v, u.root)
	return c == 0
}

func (u *RBTree[T, S]) extreme(d Direction) (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	cur := u.root
	for u.ifs[cur].links[d] != 0 {
		cur = u.ifs[cur].links[d]
	}
	return u.vs[cur-1], true
}

// Minimum [Tree.Minimum]
// Time: O(D)
func (u *RBTree[T, S]) Minimum() (T, bool) {
	return u.extreme(Left)
}

// Maximum [Tree.Maximum]
// Time: O(D)
func (u *RBTree[T, S]) Maximum() (T, bool) {
	return u.extreme(Right)
}

// InOrder calls f on the values in sorted order until f returns false. Recursive.
func (u *RBTree[T, S]) InOrder(f func(T) bool) {
	u.inOrder(u.root, func(i S) bool {
		return f(u.vs[i-1])
	})
}

// PreOrder calls f on the nodes, root first, then the left subtree, then the right
// subtree, until f returns false. Depths are recomputed on the way. Recursive.
func (u *RBTree[T, S]) PreOrder(f func(NodeView[T, S]) bool) {
	u.preOrder(u.root, 0, f)
}

func (u *RBTree[T, S]) preOrder(i, d S, f func(NodeView[T, S]) bool) bool {
	if i == 0 {
		return true
	}
	n := &u.ifs[i]
	n.depth = d
	if !f(NodeView[T, S]{i, u.vs[i-1], n.red, d, n.links[Left], n.links[Right], n.links[Parent]}) {
		return false
	}
	return u.preOrder(n.links[Left], d+1, f) && u.preOrder(n.links[Right], d+1, f)
}

// FixDepths recomputes the cached depth of every node; the root has depth 0.
// Time: O(n)
func (u *RBTree[T, S]) FixDepths() {
	u.fixDepths(u.root, 0)
}

// MinMaxDepth returns the depths of the shallowest and the deepest leaf, found by
// a depth first scan that also refreshes the cached depths. (0, 0) when empty.
// Time: O(n)
func (u *RBTree[T, S]) MinMaxDepth() (lo, hi S) {
	if u.root == 0 {
		return 0, 0
	}
	lo = ^S(0)
	u.minMaxDepth(u.root, 0, &lo, &hi)
	return
}
