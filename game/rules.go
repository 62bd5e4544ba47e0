package game

// Generation order is fixed and gives deterministic move lists: pieces are
// scanned row-major, directions in the order below, chains depth-first.
var (
	lightDirs = [][2]int{{1, -1}, {1, 1}}
	darkDirs  = [][2]int{{-1, -1}, {-1, 1}}
	kingDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

func directions(p Piece) [][2]int {
	if p.Rank == King {
		return kingDirs
	}
	if p.Side == Light {
		return lightDirs
	}
	return darkDirs
}

// Sequences computes every legal turn for the piece at cell, chaining
// captures recursively. Capturing is mandatory: if any capture exists for
// this piece, simple steps are suppressed. Returns nil when cell does not
// hold a piece of side.
func (b Board) Sequences(side Side, cell Cell) []Sequence {
	piece := b.PieceAt(cell)
	if piece.Side != side {
		return nil
	}
	return b.sequences(piece, cell, false)
}

// sequences extends capture chains depth-first. The direction set is fixed
// by the rank the piece had when the turn began: a man crowned mid-chain
// keeps forward-only jumps until the turn ends.
func (b Board) sequences(piece Piece, cell Cell, chaining bool) []Sequence {
	var steps, captures []Sequence
	for _, d := range directions(piece) {
		row, col := cell.Row+d[0], cell.Col+d[1]
		if !InBounds(row, col) {
			continue
		}
		adjacent := b[row][col]
		if adjacent.Side == NoSide {
			if chaining {
				continue
			}
			to := Cell{Row: row, Col: col}
			steps = append(steps, Sequence{
				Path:   []Cell{cell, to},
				Result: b.ApplyMove(cell, to),
			})
			continue
		}
		if adjacent.Side == piece.Side {
			continue
		}
		landRow, landCol := row+d[0], col+d[1]
		if !InBounds(landRow, landCol) || b[landRow][landCol].Side != NoSide {
			continue
		}
		landing := Cell{Row: landRow, Col: landCol}
		after := b.ApplyMove(cell, landing)
		continuations := after.sequences(piece, landing, true)
		if len(continuations) == 0 {
			captures = append(captures, Sequence{
				Path:    []Cell{cell, landing},
				Capture: true,
				Result:  after,
			})
			continue
		}
		// A chain must run to exhaustion: only the full continuations are
		// legal, never the shorter prefix.
		for _, cont := range continuations {
			captures = append(captures, Sequence{
				Path:    append([]Cell{cell}, cont.Path...),
				Capture: true,
				Result:  cont.Result,
			})
		}
	}
	if len(captures) > 0 {
		return captures
	}
	return steps
}

// MovesForSide returns every legal turn for side, row-major over the board.
// Capturing is mandatory for the whole side, not just per piece: if any turn
// captures, the non-capturing ones are dropped here, so callers never filter
// again.
func (b Board) MovesForSide(side Side) []Move {
	var moves []Move
	anyCapture := false
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col].Side != side {
				continue
			}
			for _, seq := range b.Sequences(side, Cell{Row: row, Col: col}) {
				if seq.Capture {
					anyCapture = true
				}
				moves = append(moves, seq.Move())
			}
		}
	}
	if !anyCapture {
		return moves
	}
	captures := moves[:0]
	for _, m := range moves {
		if m.Capture {
			captures = append(captures, m)
		}
	}
	return captures
}
