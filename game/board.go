package game

import "strings"

// Size is the board edge length.
const Size = 8

// Board is an 8x8 grid of squares. It is a value type: every simulation
// produces a fresh copy, and no board is ever mutated after creation, so
// recursive search branches never alias each other's state. Only dark
// squares ((row+col) odd) are ever occupied.
type Board [Size][Size]Piece

// InitialBoard returns the standard starting layout: three back rows per
// side, dark squares only. Light plays toward row 7, Dark toward row 0.
func InitialBoard() Board {
	var b Board
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if (row+col)%2 != 1 {
				continue
			}
			switch {
			case row < 3:
				b[row][col] = Piece{Side: Light, Rank: Man}
			case row > 4:
				b[row][col] = Piece{Side: Dark, Rank: Man}
			}
		}
	}
	return b
}

// InBounds reports whether (row, col) addresses a square on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// PieceAt returns the piece at c, or the zero Piece for an empty square.
func (b Board) PieceAt(c Cell) Piece {
	return b[c.Row][c.Col]
}

// crowningRow is the opponent's back row, where a man becomes a king.
func crowningRow(s Side) int {
	if s == Light {
		return Size - 1
	}
	return 0
}

// ApplyMove moves the piece at from to to on a copy of the board and returns
// the copy; the receiver is never modified. A two-row move is a jump: the
// square between from and to is cleared, and a piece that captures a king is
// itself crowned no matter where it lands. A man ending on its crowning row
// is crowned as usual, even mid-chain.
func (b Board) ApplyMove(from, to Cell) Board {
	piece := b[from.Row][from.Col]
	b[from.Row][from.Col] = Piece{}
	if from.Row-to.Row == 2 || to.Row-from.Row == 2 {
		midRow := (from.Row + to.Row) / 2
		midCol := (from.Col + to.Col) / 2
		if b[midRow][midCol].Rank == King {
			piece.Rank = King
		}
		b[midRow][midCol] = Piece{}
	}
	if to.Row == crowningRow(piece.Side) {
		piece.Rank = King
	}
	b[to.Row][to.Col] = piece
	return b
}

// Winner reports the side that captured every opposing piece. There is no
// draw detection: a board with pieces on both sides has no winner yet.
func (b Board) Winner() (Side, bool) {
	var light, dark int
	for row := range b {
		for col := range b[row] {
			switch b[row][col].Side {
			case Light:
				light++
			case Dark:
				dark++
			}
		}
	}
	switch {
	case light == 0 && dark > 0:
		return Dark, true
	case dark == 0 && light > 0:
		return Light, true
	}
	return NoSide, false
}

// String renders the board for terminal play and logs. Light pieces are
// o/O, Dark pieces x/X, reachable empty squares ".".
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	for row := 0; row < Size; row++ {
		sb.WriteByte('0' + byte(row))
		for col := 0; col < Size; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(square(b[row][col], row, col))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func square(p Piece, row, col int) byte {
	switch {
	case p.Side == Light && p.Rank == King:
		return 'O'
	case p.Side == Light:
		return 'o'
	case p.Side == Dark && p.Rank == King:
		return 'X'
	case p.Side == Dark:
		return 'x'
	case (row+col)%2 == 1:
		return '.'
	}
	return ' '
}
