package engine

import (
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"

	"github.com/rs/zerolog/log"
)

// LocalEngine runs a full game between two players on one machine. It owns
// the only mutable state in the system, the current board and the side to
// move, and updates it strictly between turns, never during a search.
type LocalEngine struct {
	Board   game.Board
	Turn    game.Side
	Players map[game.Side]Player
}

func Local(light, dark Player) *LocalEngine {
	if light == nil || dark == nil {
		panic("need a player for each side")
	}
	return &LocalEngine{
		Board: game.InitialBoard(),
		Turn:  game.Light,
		Players: map[game.Side]Player{
			game.Light: light,
			game.Dark:  dark,
		},
	}
}

// Run executes the game loop: ask the side to move for a move; no move means
// the opponent wins; otherwise apply it, check for a capture-out win and
// hand the turn over. A game with no winner after meta.MAX_MOVES moves ends
// with NoSide (draw rules are not implemented).
func (e *LocalEngine) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	gameMetric := metrics.GameMetric{
		StartingSide: e.Turn.String(),
		StartTime:    start,
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.Turn)

	winner := game.NoSide
	step := 0
	for step < meta.MAX_MOVES {
		move, metric, ok := e.Players[e.Turn].FindMove(e.Board, e.Turn)
		if !ok {
			winner = e.Turn.Opponent()
			log.Info().Msgf("%s has no legal move, %s wins", e.Turn, winner)
			break
		}
		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Side:         e.Turn.String(),
			SearchMetric: metric,
		})
		log.Debug().Msgf("move %d: %s plays (%d,%d)-(%d,%d)",
			step, e.Turn, move.From.Row, move.From.Col, move.To.Row, move.To.Col)

		e.Board = move.Result
		if w, over := e.Board.Winner(); over {
			winner = w
			log.Info().Msgf("%s wins after %d moves", winner, step)
			break
		}
		e.Turn = e.Turn.Opponent()
	}

	gameMetric.Winner = winner.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(start)
	gameMetric.TotalMoves = step
	return winner, gameMetric, moveMetrics
}
