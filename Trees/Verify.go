package Trees

import "fmt"

// Violation is the kind of red-black invariant a node breaks.
type Violation uint8

const (
	RedViolation         Violation = iota + 1 // a red node has a red child
	OrderViolation                            // values out of order
	ParentViolation                           // a child doesn't link back to its parent
	BlackHeightViolation                      // the two subtrees have different black heights
	RootViolation                             // the root is red or has a parent
)

func (v Violation) String() string {
	switch v {
	case RedViolation:
		return "red violation"
	case OrderViolation:
		return "order violation"
	case ParentViolation:
		return "parent violation"
	case BlackHeightViolation:
		return "black height violation"
	case RootViolation:
		return "root violation"
	default:
		return "unknown violation"
	}
}

// ViolationError reports the first broken invariant found and the node it was found at.
// It always means the tree is corrupt: insertion never leaves a tree in this state.
type ViolationError struct {
	Kind  Violation
	Node  uint64
	Value any
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("Trees: %s at node %d (%v)", e.Kind, e.Node, e.Value)
}

func (u *RBTree[T, S]) violation(k Violation, h S) *ViolationError {
	return &ViolationError{k, uint64(h), u.vs[h-1]}
}

// checkNode checks the invariants that only involve h and its children.
func (u *RBTree[T, S]) checkNode(h S) error {
	n := &u.ifs[h]
	l, r := n.links[Left], n.links[Right]
	if n.red && (u.isRed(l) || u.isRed(r)) {
		return u.violation(RedViolation, h)
	}
	if l != 0 && u.cmp(u.vs[l-1], u.vs[h-1]) >= 0 || r != 0 && u.cmp(u.vs[r-1], u.vs[h-1]) <= 0 {
		return u.violation(OrderViolation, h)
	}
	if l != 0 && u.ifs[l].links[Parent] != h || r != 0 && u.ifs[r].links[Parent] != h {
		return u.violation(ParentViolation, h)
	}
	return nil
}

// Verify the subtree rooting at h and return its black height. An empty subtree
// has black height 1. The first violation found is returned as a *ViolationError.
// Recursive; see VerifyIterative for a version that doesn't use the call stack.
// Time: O(n)
func (u *RBTree[T, S]) Verify(h S) (int, error) {
	if h == 0 {
		return 1, nil
	}
	if err := u.checkNode(h); err != nil {
		return 0, err
	}
	lh, err := u.Verify(u.ifs[h].links[Left])
	if err != nil {
		return 0, err
	}
	rh, err := u.Verify(u.ifs[h].links[Right])
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, u.violation(BlackHeightViolation, h)
	}
	if !u.ifs[h].red {
		lh++
	}
	return lh, nil
}

// VerifyIterative is Verify using an explicit stack. It finds the same violation
// Verify does, in the same order.
// Time: O(n); Space: O(n)
func (u *RBTree[T, S]) VerifyIterative(h S) (int, error) {
	if h == 0 {
		return 1, nil
	}
	hs := make([]int, len(u.ifs)) // black heights of finished nodes
	hs[0] = 1
	expanded := newBitArray(len(u.ifs))
	for st := []S{h}; len(st) > 0; {
		top := st[len(st)-1]
		n := &u.ifs[top]
		if !expanded.Get(int(top)) {
			expanded.Up(int(top))
			if err := u.checkNode(top); err != nil {
				return 0, err
			}
			if n.links[Right] != 0 {
				st = append(st, n.links[Right])
			}
			if n.links[Left] != 0 {
				st = append(st, n.links[Left])
			}
			continue
		}
		st = st[:len(st)-1]
		lh, rh := hs[n.links[Left]], hs[n.links[Right]]
		if lh != rh {
			return 0, u.violation(BlackHeightViolation, top)
		}
		if !n.red {
			lh++
		}
		hs[top] = lh
	}
	return hs[h], nil
}

// VerifyTree verifies the whole tree: the root is black without a parent, every
// subtree passes Verify and the in-order sequence is strictly increasing.
func (u *RBTree[T, S]) VerifyTree() error {
	if u.root == 0 {
		return nil
	}
	if u.ifs[u.root].red || u.ifs[u.root].links[Parent] != 0 {
		return u.violation(RootViolation, u.root)
	}
	if _, err := u.Verify(u.root); err != nil {
		return err
	}
	var prev S
	var err error
	u.inOrder(u.root, func(i S) bool {
		if prev != 0 && u.cmp(u.vs[prev-1], u.vs[i-1]) >= 0 {
			err = u.violation(OrderViolation, i)
			return false
		}
		prev = i
		return true
	})
	return err
}

// MustVerify panics with the *ViolationError if VerifyTree fails.
func (u *RBTree[T, S]) MustVerify() {
	if err := u.VerifyTree(); err != nil {
		panic(err)
	}
}

// Corrupt [Tree.Corrupt]
func (u *RBTree[T, S]) Corrupt() bool {
	return u.VerifyTree() != nil
}
