package Trees

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// base is the node arena shared by the tree operations. ifs[0] is the absent
// node; every real node is addressed by its index, which never changes.
type base[S constraints.Unsigned] struct {
	root S
	ifs  []info[S]
}

// alloc appends a node without links and returns its index.
// Panics with CapacityError when S can't address another node.
func (u *base[S]) alloc(red bool, depth S) S {
	i := S(len(u.ifs))
	if i == 0 || uint64(i) != uint64(len(u.ifs)) {
		panic(CapacityError{len(u.ifs)})
	}
	u.ifs = append(u.ifs, info[S]{depth: depth, red: red})
	return i
}

func (u *base[S]) child(i S, d Direction) S {
	if d == None {
		return 0
	}
	return u.ifs[i].links[d]
}

// setChild links c under i in direction d and points c back to i.
// c may be 0, which clears the link.
func (u *base[S]) setChild(i S, d Direction, c S) {
	u.ifs[i].links[d] = c
	if c != 0 {
		u.ifs[c].links[Parent] = i
	}
}

// parentDir tells which child of its parent i is. None for the root, or when
// the parent doesn't link back to i.
func (u *base[S]) parentDir(i S) Direction {
	p := u.ifs[i].links[Parent]
	if p == 0 {
		return None
	}
	switch i {
	case u.ifs[p].links[Left]:
		return Left
	case u.ifs[p].links[Right]:
		return Right
	default:
		return None
	}
}

// isRed treats absent nodes as black.
func (u *base[S]) isRed(i S) bool {
	return i != 0 && u.ifs[i].red
}

// rotate node n in direction d: its child on side !d takes its place and n
// becomes that child's d child. The promoted node turns black and n red.
// Returns the new root of the subtree.
// Time: O(1)
func (u *base[S]) rotate(n S, d Direction) S {
	nd := d.Not()
	save := u.ifs[n].links[nd]
	par, pd := u.ifs[n].links[Parent], u.parentDir(n)

	u.setChild(n, nd, u.ifs[save].links[d])
	u.setChild(save, d, n)
	if par == 0 {
		u.root = save
		u.ifs[save].links[Parent] = 0
	} else {
		u.setChild(par, pd, save)
	}
	u.ifs[save].red, u.ifs[n].red = false, true
	return save
}

// doubleRotate first rotates the child on side !d in direction !d, so that the
// red grandchild lines up with the red child, then rotates n in direction d.
func (u *base[S]) doubleRotate(n S, d Direction) S {
	nd := d.Not()
	u.rotate(u.ifs[n].links[nd], nd)
	return u.rotate(n, d)
}

// fixDepths rewrites the cached depth of every node under i. Recursive.
func (u *base[S]) fixDepths(i, d S) {
	if i == 0 {
		return
	}
	u.ifs[i].depth = d
	u.fixDepths(u.ifs[i].links[Left], d+1)
	u.fixDepths(u.ifs[i].links[Right], d+1)
}

// minMaxDepth scans the leaves under i, whose depth is d, refreshing cached depths on the way.
func (u *base[S]) minMaxDepth(i, d S, lo, hi *S) {
	u.ifs[i].depth = d
	l, r := u.ifs[i].links[Left], u.ifs[i].links[Right]
	if l == 0 && r == 0 {
		*lo, *hi = min(*lo, d), max(*hi, d)
		return
	}
	if l != 0 {
		u.minMaxDepth(l, d+1, lo, hi)
	}
	if r != 0 {
		u.minMaxDepth(r, d+1, lo, hi)
	}
}

// inOrder visits node indexes under i in sorted order until f returns false.
func (u *base[S]) inOrder(i S, f func(S) bool) bool {
	if i == 0 {
		return true
	}
	return u.inOrder(u.ifs[i].links[Left], f) && f(i) && u.inOrder(u.ifs[i].links[Right], f)
}

// CapacityError is raised when the index type of a tree is too narrow for another node.
type CapacityError struct {
	Len int
}

func (e CapacityError) Error() string {
	return "Trees: index type can't address node " + strconv.Itoa(e.Len)
}
