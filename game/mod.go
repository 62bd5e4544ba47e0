package game

// Side identifies a player. The zero value marks an empty square.
type Side int8

const (
	NoSide Side = iota
	Light
	Dark
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case Light:
		return Dark
	case Dark:
		return Light
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "none"
}

// Rank distinguishes a man from a crowned king.
type Rank int8

const (
	Man Rank = iota
	King
)

// Piece occupies one dark square. The zero Piece is an empty square.
type Piece struct {
	Side Side
	Rank Rank
}

// Cell addresses one square by row and column.
type Cell struct {
	Row, Col int
}
