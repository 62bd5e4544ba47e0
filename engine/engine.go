package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

type Engine interface {
	// Run starts a game till there's a winner or the move cap is reached
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
