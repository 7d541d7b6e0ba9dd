package experiments

import (
	"context"
	"errors"
	"fmt"

	"gamesearch/connectfour"
	"gamesearch/engine"
	"gamesearch/experiments/metrics"
	"gamesearch/searcher"

	"github.com/rs/zerolog/log"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// MatchUp pairs two agents. The first one starts the first game and the
// starting side alternates from then on.
type MatchUp [2]metrics.AgentConfig

// Report holds everything recorded by one experiment run.
type Report struct {
	Dir     string
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
	Summary metrics.Summary
}

// Run plays games per match up from board and stores the records as CSV
// files under root.
func Run(ctx context.Context, root, name string, configs []metrics.AgentConfig, matchUps []MatchUp, games int, board connectfour.State) (Report, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return Report{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return Report{}, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored agent configs")

	report := Report{Dir: writer.Dir()}
	count := 0

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < games; i++ {
			// Alternate the starting agent
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}

			result, err := runGame(ctx, first, second, board, i)
			if err != nil {
				return report, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			report.Games = append(report.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     first.ID,
				Agent2:     second.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				report.Moves = append(report.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, result.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := writer.WriteGameRecords(report.Games); err != nil {
		return report, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(report.Moves); err != nil {
		return report, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	report.Summary = metrics.Summarize(report.Games, report.Moves)
	return report, nil
}

// runGame plays a single game with player1 moving first.
func runGame(ctx context.Context, player1, player2 metrics.AgentConfig, board connectfour.State, index int) (engine.Result[connectfour.State], error) {
	agents := make([]engine.Agent[connectfour.State], 2)
	for i, config := range []metrics.AgentConfig{player1, player2} {
		// Offset fixed seeds so that repeated games differ but stay reproducible
		if config.Seed != 0 {
			config.Seed += uint64(index)
		}
		strategy, err := NewStrategy(config, searcher.WithMetrics())
		if err != nil {
			return engine.Result[connectfour.State]{}, err
		}
		agents[i] = engine.NewStrategyAgent(strategy)
	}

	e := engine.NewLocalEngine(board, agents[0], agents[1])
	return e.Run(ctx)
}

// NewStrategy builds the search strategy an agent config describes.
func NewStrategy(config metrics.AgentConfig, options ...searcher.Option) (searcher.Strategy[connectfour.State], error) {
	if config.Rollouts > 0 {
		options = append(options, searcher.WithRollouts(config.Rollouts))
	}
	if config.Seed != 0 {
		options = append(options, searcher.WithSeed(config.Seed))
	}

	switch config.Strategy {
	case "mcts":
		return searcher.NewMCTS[connectfour.State](config.Goroutines, options...), nil
	case "bruteforce":
		return searcher.NewBruteForce[connectfour.State](config.Goroutines, options...), nil
	case "random":
		return searcher.NewRandom[connectfour.State](options...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, config.Strategy)
	}
}
