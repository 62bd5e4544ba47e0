package experiments

import (
	"fmt"
	"sync"

	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const NumGames = 10 // Per match up

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Depth: meta.DEPTH_EASY},
	{ID: 2, Depth: meta.DEPTH_NORMAL},
	{ID: 3, Depth: meta.DEPTH_HARD},
}

// RunDepthExperiment pits every difficulty depth against every deeper one.
func RunDepthExperiment() {
	matchUps := [][2]metrics.AgentConfig{}
	for i, light := range depthConfigs {
		for _, dark := range depthConfigs[i+1:] {
			matchUps = append(matchUps, [2]metrics.AgentConfig{light, dark})
		}
	}

	runExperiment("depth_to_strength", depthConfigs, matchUps)
}

// RunBaselineExperiment pits each depth as Light against the random
// baseline as Dark.
func RunBaselineExperiment() {
	baseline := metrics.AgentConfig{ID: 0, Random: true}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, baseline})
	}

	runExperiment("depth_to_baseline", append(depthConfigs, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig) {
	log.Info().Msgf("starting %s experiment...", name)

	// Games are independent, so they run concurrently; each search inside a
	// game stays single-threaded.
	var mu sync.Mutex
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	var group errgroup.Group
	group.SetLimit(meta.GO_ROUTINES)

	for mi, matchup := range matchUps {
		light := matchup[0]
		dark := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between light=%+v and dark=%+v...",
			mi+1, len(matchUps), light, dark)

		for i := 0; i < NumGames; i++ {
			seed := uint64(mi*NumGames + i + 1)
			group.Go(func() error {
				id := uuid.New()
				winner, gameMetric, moveMetrics := runGame(light, dark, seed)

				mu.Lock()
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         id,
					Light:      light.ID,
					Dark:       dark.ID,
					GameMetric: gameMetric,
				})
				for _, mm := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{
						Game:       id,
						MoveMetric: mm,
					})
				}
				mu.Unlock()

				log.Info().Msgf("completed game %s with winner: %s", id, winner)
				return nil
			})
		}
	}
	_ = group.Wait()

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		panic(fmt.Sprintf("failed to store game records: %v", err))
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		panic(fmt.Sprintf("failed to store move records: %v", err))
	}
}

func runGame(light, dark metrics.AgentConfig, seed uint64) (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.Local(newPlayer(light, seed), newPlayer(dark, seed+NumGames*1000))
	return e.Run()
}

func newPlayer(config metrics.AgentConfig, seed uint64) engine.Player {
	if config.Random {
		return engine.NewRandomPlayer(seed)
	}
	return engine.NewSearchPlayer(searcher.WithDepth(config.Depth), searcher.WithMetrics())
}
