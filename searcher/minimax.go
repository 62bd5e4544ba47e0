package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
)

// WinScore dominates any material score. Search layers where the side to
// move has no reply score +-WinScore, so losing lines rank below any
// material deficit.
const WinScore = 1 << 10

type Option func(m *Minimax)

// Minimax picks moves by depth-limited minimax with alpha-beta pruning over
// board values. There is no transposition table, no move ordering and no
// iterative deepening: the tree is expanded in natural generation order to a
// fixed depth, and pruning is the only cost mitigation.
type Minimax struct {
	depth   int
	metrics metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:   meta.DEPTH_NORMAL,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best move for side, or false when side has no legal
// move (the loss condition). Playing each candidate is free: the search
// scores only the reply tree, at the configured depth, from the opponent's
// perspective. Among equal scores the first candidate in generation order
// is kept.
func (m *Minimax) FindMove(b game.Board, side game.Side) (game.Move, metrics.SearchMetric, bool) {
	m.metrics.Start(m.depth)
	moves := b.MovesForSide(side)
	if len(moves) == 0 {
		return game.Move{}, m.metrics.Complete(), false
	}

	// After side's move the opponent is to move in every child.
	childMaximizing := side == game.Dark

	best := moves[0]
	bestScore := m.search(best.Result, m.depth, -WinScore, WinScore, childMaximizing)
	for _, move := range moves[1:] {
		score := m.search(move.Result, m.depth, -WinScore, WinScore, childMaximizing)
		if side == game.Light && score > bestScore || side == game.Dark && score < bestScore {
			best = move
			bestScore = score
		}
	}
	return best, m.metrics.Complete(), true
}

// search is the alpha-beta recursion. Light maximizes, Dark minimizes;
// siblings stop expanding once beta <= alpha.
func (m *Minimax) search(b game.Board, depth, alpha, beta int, maximizing bool) int {
	m.metrics.AddNode()
	if depth == 0 {
		m.metrics.AddEvaluation()
		return game.Evaluate(b)
	}

	if maximizing {
		moves := b.MovesForSide(game.Light)
		if len(moves) == 0 {
			return -WinScore
		}
		best := -WinScore
		for _, move := range moves {
			value := m.search(move.Result, depth-1, alpha, beta, false)
			if value > best {
				best = value
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				m.metrics.AddCutoff()
				break
			}
		}
		return best
	}

	moves := b.MovesForSide(game.Dark)
	if len(moves) == 0 {
		return WinScore
	}
	best := WinScore
	for _, move := range moves {
		value := m.search(move.Result, depth-1, alpha, beta, true)
		if value < best {
			best = value
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}
