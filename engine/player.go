package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"

	"golang.org/x/exp/rand"
)

// Player produces one move per turn for the given side. ok is false when the
// side has no legal move, which is the loss condition, not an error.
type Player interface {
	FindMove(b game.Board, side game.Side) (move game.Move, metric metrics.SearchMetric, ok bool)
}

// SearchPlayer answers with the minimax searcher's choice.
type SearchPlayer struct {
	searcher *searcher.Minimax
}

func NewSearchPlayer(options ...searcher.Option) *SearchPlayer {
	return &SearchPlayer{searcher: searcher.NewMinimax(options...)}
}

func (p *SearchPlayer) FindMove(b game.Board, side game.Side) (game.Move, metrics.SearchMetric, bool) {
	return p.searcher.FindMove(b, side)
}

// RandomPlayer picks uniformly among the legal moves. Baseline opponent for
// experiments.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) FindMove(b game.Board, side game.Side) (game.Move, metrics.SearchMetric, bool) {
	moves := b.MovesForSide(side)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, false
	}
	return moves[p.rng.Intn(len(moves))], metrics.SearchMetric{}, true
}
