package Trees

// Direction names one of the three links of a node. Left and Right are the
// children; Parent is the back-reference. None is the unset value.
// The values of Left, Right and Parent index node links directly.
type Direction uint8

const (
	Left Direction = iota
	Right
	Parent
	None
)

// Not is the logical negation of a child direction: !Left=Right, !Right=Left and !None=None.
// Negating Parent is a programming error and panics.
func (d Direction) Not() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case None:
		return None
	default:
		panic(DirectionError{d})
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Parent:
		return "parent"
	case None:
		return "none"
	default:
		return "invalid"
	}
}

// dirOf maps the sign of a comparison to the side a value belongs on.
// c must be non-zero.
func dirOf(c int) Direction {
	if c < 0 {
		return Left
	}
	return Right
}

// DirectionError is raised when a Direction is used where it has no meaning.
type DirectionError struct {
	D Direction
}

func (e DirectionError) Error() string {
	return "Trees: invalid use of direction " + e.D.String()
}
