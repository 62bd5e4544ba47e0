package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequencesSimpleSteps(t *testing.T) {
	t.Run("man steps forward only", func(t *testing.T) {
		var b Board
		b[3][2] = Piece{Side: Light, Rank: Man}

		seqs := b.Sequences(Light, Cell{3, 2})

		require.Len(t, seqs, 2)
		require.Equal(t, []Cell{{3, 2}, {4, 1}}, seqs[0].Path)
		require.Equal(t, []Cell{{3, 2}, {4, 3}}, seqs[1].Path)
		for _, s := range seqs {
			require.False(t, s.Capture)
		}
	})

	t.Run("king steps in all four directions", func(t *testing.T) {
		var b Board
		b[3][2] = Piece{Side: Dark, Rank: King}

		seqs := b.Sequences(Dark, Cell{3, 2})

		require.Len(t, seqs, 4)
		var dests []Cell
		for _, s := range seqs {
			dests = append(dests, s.Path[len(s.Path)-1])
		}
		require.ElementsMatch(t, []Cell{{2, 1}, {2, 3}, {4, 1}, {4, 3}}, dests)
	})

	t.Run("edge piece has no out-of-board candidates", func(t *testing.T) {
		var b Board
		b[3][0] = Piece{Side: Light, Rank: Man}

		seqs := b.Sequences(Light, Cell{3, 0})

		require.Len(t, seqs, 1)
		require.Equal(t, []Cell{{3, 0}, {4, 1}}, seqs[0].Path)
	})

	t.Run("wrong side yields nothing", func(t *testing.T) {
		var b Board
		b[3][2] = Piece{Side: Light, Rank: Man}

		require.Empty(t, b.Sequences(Dark, Cell{3, 2}))
		require.Empty(t, b.Sequences(Light, Cell{4, 3}), "empty cell yields nothing")
	})
}

func TestSequencesMandatoryCapturePerPiece(t *testing.T) {
	// The piece has a free step and a capture; only the capture is legal.
	var b Board
	b[4][3] = Piece{Side: Dark, Rank: Man}
	b[3][2] = Piece{Side: Light, Rank: Man}

	seqs := b.Sequences(Dark, Cell{4, 3})

	require.Len(t, seqs, 1)
	require.True(t, seqs[0].Capture)
	require.Equal(t, []Cell{{4, 3}, {2, 1}}, seqs[0].Path)
	require.Equal(t, Piece{}, seqs[0].Result.PieceAt(Cell{3, 2}))
}

func TestSequencesChainRunsToExhaustion(t *testing.T) {
	// Two light men line up a double jump; the single-jump prefix must not
	// be offered.
	var b Board
	b[5][2] = Piece{Side: Dark, Rank: Man}
	b[4][3] = Piece{Side: Light, Rank: Man}
	b[2][3] = Piece{Side: Light, Rank: Man}

	seqs := b.Sequences(Dark, Cell{5, 2})

	require.Len(t, seqs, 1)
	require.Equal(t, []Cell{{5, 2}, {3, 4}, {1, 2}}, seqs[0].Path)
	require.True(t, seqs[0].Capture)
	require.Equal(t, Piece{}, seqs[0].Result.PieceAt(Cell{4, 3}))
	require.Equal(t, Piece{}, seqs[0].Result.PieceAt(Cell{2, 3}))
	require.Equal(t, Piece{Side: Dark, Rank: Man}, seqs[0].Result.PieceAt(Cell{1, 2}))
}

func TestSequencesChainBranches(t *testing.T) {
	// After the first jump the chain forks; both full chains are offered.
	var b Board
	b[5][2] = Piece{Side: Dark, Rank: Man}
	b[4][3] = Piece{Side: Light, Rank: Man}
	b[2][3] = Piece{Side: Light, Rank: Man}
	b[2][5] = Piece{Side: Light, Rank: Man}

	seqs := b.Sequences(Dark, Cell{5, 2})

	require.Len(t, seqs, 2)
	require.Equal(t, []Cell{{5, 2}, {3, 4}, {1, 2}}, seqs[0].Path)
	require.Equal(t, []Cell{{5, 2}, {3, 4}, {1, 6}}, seqs[1].Path)
}

func TestSequencesNoJumpWithoutLanding(t *testing.T) {
	t.Run("landing square occupied", func(t *testing.T) {
		var b Board
		b[4][3] = Piece{Side: Dark, Rank: Man}
		b[3][2] = Piece{Side: Light, Rank: Man}
		b[2][1] = Piece{Side: Light, Rank: Man}

		seqs := b.Sequences(Dark, Cell{4, 3})

		// The blocked jump is no capture at all, so the remaining forward
		// step is legal.
		require.Len(t, seqs, 1)
		for _, s := range seqs {
			require.False(t, s.Capture)
		}
	})

	t.Run("landing square off the board", func(t *testing.T) {
		var b Board
		b[1][2] = Piece{Side: Dark, Rank: Man}
		b[0][1] = Piece{Side: Light, Rank: Man}

		seqs := b.Sequences(Dark, Cell{1, 2})

		for _, s := range seqs {
			require.False(t, s.Capture)
		}
	})

	t.Run("own piece is never jumped", func(t *testing.T) {
		var b Board
		b[4][3] = Piece{Side: Dark, Rank: Man}
		b[3][2] = Piece{Side: Dark, Rank: Man}

		seqs := b.Sequences(Dark, Cell{4, 3})

		require.Len(t, seqs, 1)
		require.Equal(t, []Cell{{4, 3}, {3, 4}}, seqs[0].Path)
	})
}

func TestSequencesMidChainCrowningEndsBackwardJumps(t *testing.T) {
	// The man crowns on landing at row 0. A king could jump backward over
	// (1,4), but within the crowning turn the chain keeps forward-only
	// directions, so the turn ends there.
	var b Board
	b[2][1] = Piece{Side: Dark, Rank: Man}
	b[1][2] = Piece{Side: Light, Rank: Man}
	b[1][4] = Piece{Side: Light, Rank: Man}

	seqs := b.Sequences(Dark, Cell{2, 1})

	require.Len(t, seqs, 1)
	require.Equal(t, []Cell{{2, 1}, {0, 3}}, seqs[0].Path)
	require.Equal(t, Piece{Side: Dark, Rank: King}, seqs[0].Result.PieceAt(Cell{0, 3}),
		"crowning happens the instant the man lands on row 0")
	require.Equal(t, Piece{Side: Light, Rank: Man}, seqs[0].Result.PieceAt(Cell{1, 4}),
		"the backward continuation must not be taken")
}

func TestSequencesKingChainsBackward(t *testing.T) {
	// A piece that began the turn as a king does zig-zag chains.
	var b Board
	b[5][2] = Piece{Side: Dark, Rank: King}
	b[4][3] = Piece{Side: Light, Rank: Man}
	b[4][5] = Piece{Side: Light, Rank: Man}

	seqs := b.Sequences(Dark, Cell{5, 2})

	require.Len(t, seqs, 1)
	require.Equal(t, []Cell{{5, 2}, {3, 4}, {5, 6}}, seqs[0].Path)
	require.Equal(t, Piece{}, seqs[0].Result.PieceAt(Cell{4, 3}))
	require.Equal(t, Piece{}, seqs[0].Result.PieceAt(Cell{4, 5}))
}

func TestMovesForSideMandatoryCaptureAcrossSide(t *testing.T) {
	// One dark piece can capture, another only step: the step is illegal.
	var b Board
	b[4][3] = Piece{Side: Dark, Rank: Man}
	b[3][2] = Piece{Side: Light, Rank: Man}
	b[6][1] = Piece{Side: Dark, Rank: Man}

	moves := b.MovesForSide(Dark)

	require.Len(t, moves, 1)
	require.True(t, moves[0].Capture)
	require.Equal(t, Cell{4, 3}, moves[0].From)
	require.Equal(t, Cell{2, 1}, moves[0].To)
	require.Equal(t, Piece{}, moves[0].Result.PieceAt(Cell{3, 2}))
}

func TestMovesForSideLegalityClosure(t *testing.T) {
	b := InitialBoard()
	for _, side := range []Side{Light, Dark} {
		for _, m := range b.MovesForSide(side) {
			require.True(t, InBounds(m.To.Row, m.To.Col))
			require.Equal(t, 1, (m.To.Row+m.To.Col)%2, "moves end on dark squares")
			require.Equal(t, side, m.Result.PieceAt(m.To).Side)
		}
	}
}

func TestMovesForSideInitialBoard(t *testing.T) {
	moves := InitialBoard().MovesForSide(Light)

	require.Len(t, moves, 7)
	for _, m := range moves {
		require.False(t, m.Capture)
		require.Equal(t, 2, m.From.Row, "only the front row can move")
		require.Equal(t, 3, m.To.Row)
	}
	// Row-major, direction-order generation is deterministic.
	require.Equal(t, Cell{2, 1}, moves[0].From)
	require.Equal(t, Cell{3, 0}, moves[0].To)
}

func TestMovesForSideEmpty(t *testing.T) {
	var b Board
	b[3][2] = Piece{Side: Light, Rank: Man}

	require.Empty(t, b.MovesForSide(Dark))
}
