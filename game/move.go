package game

// Sequence is one legal turn for a single piece: the origin cell followed by
// every landing cell, plus the board after the whole turn. A capture chain
// records one landing per jump.
type Sequence struct {
	Path    []Cell
	Capture bool
	Result  Board
}

// Move is the flattened form handed to drivers and the searcher: origin,
// final landing cell, and the board after the whole turn.
type Move struct {
	From    Cell
	To      Cell
	Capture bool
	Result  Board
}

// Move flattens a sequence to its endpoints.
func (s Sequence) Move() Move {
	return Move{
		From:    s.Path[0],
		To:      s.Path[len(s.Path)-1],
		Capture: s.Capture,
		Result:  s.Result,
	}
}
