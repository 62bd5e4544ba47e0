package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"checkers/engine"
	"checkers/experiments"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play, selfplay or experiment")
	difficulty := flag.String("difficulty", "normal", "easy, normal or hard")
	depth := flag.Int("depth", 0, "search depth in plies; overrides -difficulty")
	humanSide := flag.String("side", "light", "side played by the human in play mode")
	experiment := flag.String("experiment", "depth", "experiment to run: depth or baseline")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	plies := depthFor(*difficulty)
	if *depth > 0 {
		plies = *depth
	}

	switch *mode {
	case "play":
		runInteractive(plies, parseSide(*humanSide))
	case "selfplay":
		runSelfPlay(plies)
	case "experiment":
		switch *experiment {
		case "depth":
			experiments.RunDepthExperiment()
		case "baseline":
			experiments.RunBaselineExperiment()
		default:
			fmt.Fprintf(os.Stderr, "unknown experiment %q\n", *experiment)
			os.Exit(2)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		flag.Usage()
		os.Exit(2)
	}
}

func depthFor(difficulty string) int {
	switch difficulty {
	case "easy":
		return meta.DEPTH_EASY
	case "normal":
		return meta.DEPTH_NORMAL
	case "hard":
		return meta.DEPTH_HARD
	}
	log.Warn().Msgf("unknown difficulty %q, using normal", difficulty)
	return meta.DEPTH_NORMAL
}

func parseSide(s string) game.Side {
	if s == "dark" {
		return game.Dark
	}
	return game.Light
}

func runSelfPlay(plies int) {
	light := engine.NewSearchPlayer(searcher.WithDepth(plies), searcher.WithMetrics())
	dark := engine.NewSearchPlayer(searcher.WithDepth(plies), searcher.WithMetrics())

	winner, gameMetric, _ := engine.Local(light, dark).Run()

	log.Info().Msgf("self-play finished: winner=%s moves=%d duration=%s",
		winner, gameMetric.TotalMoves, gameMetric.Duration)
}

// runInteractive is the terminal stand-in for a click-driven UI: it reads
// cell coordinates, validates them against the legal move list and plays the
// computer's reply.
func runInteractive(plies int, human game.Side) {
	computer := engine.NewSearchPlayer(searcher.WithDepth(plies))
	board := game.InitialBoard()
	turn := game.Light
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("you play %s, computer searches %d plies\n", human, plies)
	for {
		fmt.Println(board)
		moves := board.MovesForSide(turn)
		if len(moves) == 0 {
			fmt.Printf("%s has no legal move, %s wins\n", turn, turn.Opponent())
			return
		}

		var move game.Move
		if turn == human {
			m, ok := readMove(scanner, moves)
			if !ok {
				return
			}
			move = m
		} else {
			m, _, _ := computer.FindMove(board, turn)
			move = m
			fmt.Printf("computer plays (%d,%d)-(%d,%d)\n",
				m.From.Row, m.From.Col, m.To.Row, m.To.Col)
		}

		board = move.Result
		if winner, over := board.Winner(); over {
			fmt.Println(board)
			fmt.Printf("%s wins\n", winner)
			return
		}
		turn = turn.Opponent()
	}
}

func readMove(scanner *bufio.Scanner, moves []game.Move) (game.Move, bool) {
	for {
		fmt.Print("move (fromRow fromCol toRow toCol): ")
		if !scanner.Scan() {
			return game.Move{}, false
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != 4 {
			fmt.Println("enter four numbers, e.g. 2 1 3 0")
			continue
		}
		nums := make([]int, 4)
		valid := true
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				valid = false
				break
			}
			nums[i] = n
		}
		if !valid {
			fmt.Println("enter four numbers, e.g. 2 1 3 0")
			continue
		}
		from := game.Cell{Row: nums[0], Col: nums[1]}
		to := game.Cell{Row: nums[2], Col: nums[3]}
		for _, m := range moves {
			if m.From == from && m.To == to {
				return m, true
			}
		}
		fmt.Println("illegal move; captures are mandatory when available")
	}
}
