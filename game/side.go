package game

// Side 球拍所在侧
type Side int8

const (
	NoSide Side = iota - 1
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Opponent 对手一侧
func (s Side) Opponent() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	}
	return NoSide
}
