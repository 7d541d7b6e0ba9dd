package searcher

import (
	"math"

	"gamesearch/experiments/metrics"
	"gamesearch/game"

	"github.com/rs/zerolog/log"
)

// BruteForce plays optimally by scoring the complete game tree with negamax.
// There is no pruning and no depth limit, so it is only tractable on small
// boards or close to the end of a game.
type BruteForce[S game.Game[S]] struct {
	goroutines   int
	newCollector func() metrics.Collector
}

func NewBruteForce[S game.Game[S]](goroutines int, options ...Option) *BruteForce[S] {
	c := newConfig(goroutines, options)
	return &BruteForce[S]{
		goroutines:   c.goroutines,
		newCollector: c.newCollector,
	}
}

func (b *BruteForce[S]) Name() string {
	return "bruteforce"
}

func (b *BruteForce[S]) MakeMove(state S) (S, error) {
	next, _, err := b.Search(state)
	return next, err
}

func (b *BruteForce[S]) Search(state S) (S, metrics.SearchMetric, error) {
	children := state.PossibleMoves()
	if len(children) == 0 {
		var zero S
		return zero, metrics.SearchMetric{}, ErrTerminalState
	}

	collector := b.newCollector()
	collector.Start(b.Name(), b.goroutines)

	// Subtrees are independent, score them in parallel
	mover := state.PlayerTurn()
	scores := make([]int, len(children))
	iterate(b.goroutines, len(children), func(i int) {
		nodes := 0
		scores[i] = -score(children[i], mover.Other(), &nodes)
		collector.AddNodes(nodes)
	})

	chosen := best(scores)
	metric := collector.Complete()
	log.Debug().Str("strategy", b.Name()).Str("player", mover.String()).
		Ints("scores", scores).Int("chosen", chosen).Msg("search complete")

	return children[chosen], metric, nil
}

// score returns the negamax value of state for viewpoint, the player to move
// in state: the best of the negated values of its children for the opponent.
func score[S game.Game[S]](state S, viewpoint game.Player, nodes *int) int {
	*nodes++

	children := state.PossibleMoves()
	if len(children) == 0 {
		return state.RewardValue(viewpoint)
	}

	bestScore := math.MinInt
	for _, child := range children {
		if s := -score(child, viewpoint.Other(), nodes); s > bestScore {
			bestScore = s
		}
	}
	return bestScore
}
