package game

const (
	manValue  = 1
	kingValue = 2
)

// Evaluate scores a board by material: +1 per Light man, +2 per Light king,
// -1 per Dark man, -2 per Dark king. Positive favors Light. Purely static;
// no positional or mobility terms.
func Evaluate(b Board) int {
	score := 0
	for row := range b {
		for col := range b[row] {
			p := b[row][col]
			value := manValue
			if p.Rank == King {
				value = kingValue
			}
			switch p.Side {
			case Light:
				score += value
			case Dark:
				score -= value
			}
		}
	}
	return score
}
