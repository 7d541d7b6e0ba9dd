package experiments

import (
	"context"

	"gamesearch/connectfour"
	"gamesearch/experiments/metrics"
)

// RunThroughput measures how search time per move scales with the number of
// goroutines. Both sides of a match up share a config so that games have a
// similar length.
func RunThroughput(ctx context.Context, root string, games, rollouts int, board connectfour.State) (Report, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Strategy: "mcts", Goroutines: 1, Rollouts: rollouts},
		{ID: 2, Strategy: "mcts", Goroutines: 2, Rollouts: rollouts},
		{ID: 3, Strategy: "mcts", Goroutines: 4, Rollouts: rollouts},
		{ID: 4, Strategy: "mcts", Goroutines: 8, Rollouts: rollouts},
	}
	matchUps := make([]MatchUp, 0, len(configs))
	for _, config := range configs {
		matchUps = append(matchUps, MatchUp{config, config})
	}

	return Run(ctx, root, "throughput", configs, matchUps, games, board)
}

// RunStrength pairs a random baseline against Monte-Carlo agents with an
// increasing number of rollouts per move.
func RunStrength(ctx context.Context, root string, games, goroutines int, board connectfour.State) (Report, error) {
	baseline := metrics.AgentConfig{ID: 0, Strategy: "random", Goroutines: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Strategy: "mcts", Goroutines: goroutines, Rollouts: 10},
		{ID: 2, Strategy: "mcts", Goroutines: goroutines, Rollouts: 100},
		{ID: 3, Strategy: "mcts", Goroutines: goroutines, Rollouts: 1000},
	}
	matchUps := make([]MatchUp, 0, len(configs))
	for _, config := range configs {
		matchUps = append(matchUps, MatchUp{baseline, config})
	}

	return Run(ctx, root, "strength", append(configs, baseline), matchUps, games, board)
}
