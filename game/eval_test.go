package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("initial board is balanced", func(t *testing.T) {
		require.Equal(t, 0, Evaluate(InitialBoard()))
	})

	t.Run("men count one, kings two", func(t *testing.T) {
		var b Board
		b[3][2] = Piece{Side: Light, Rank: Man}
		b[5][2] = Piece{Side: Light, Rank: King}
		b[4][3] = Piece{Side: Dark, Rank: Man}

		require.Equal(t, 1+2-1, Evaluate(b))
	})

	t.Run("dark material is negative", func(t *testing.T) {
		var b Board
		b[4][3] = Piece{Side: Dark, Rank: King}
		b[6][1] = Piece{Side: Dark, Rank: Man}

		require.Equal(t, -3, Evaluate(b))
	})

	t.Run("empty board scores zero", func(t *testing.T) {
		var b Board
		require.Equal(t, 0, Evaluate(b))
	})
}
