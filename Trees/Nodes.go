package Trees

import "golang.org/x/exp/constraints"

// A node in the arena. links is indexed by Left, Right and Parent; 0 means absent.
// The zero value is meaningful: it is a black node without links, which is
// what slot 0 (the absent node) holds forever.
type info[S constraints.Unsigned] struct {
	links [3]S
	depth S // cached, see FixDepths
	red   bool
}

// NodeView is a read-only copy of one node of an RBTree. IDs are arena
// indexes; 0 stands for an absent node.
type NodeView[T any, S constraints.Unsigned] struct {
	ID                  S
	Value               T
	Red                 bool
	Depth               S
	Left, Right, Parent S
}

// Child returns the link in direction d; None gives 0.
func (n NodeView[T, S]) Child(d Direction) S {
	switch d {
	case Left:
		return n.Left
	case Right:
		return n.Right
	case Parent:
		return n.Parent
	default:
		return 0
	}
}

func (n NodeView[T, S]) IsLeaf() bool {
	return n.Left == 0 && n.Right == 0
}
