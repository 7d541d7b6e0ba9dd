package searcher

import (
	"gamesearch/experiments/metrics"
	"gamesearch/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MCTS scores every candidate move by the summed outcome of repeated uniformly
// random playouts. It keeps no tree statistics between searches.
type MCTS[S game.Game[S]] struct {
	goroutines   int
	rollouts     int
	rand         *lockedRand
	newCollector func() metrics.Collector
}

func NewMCTS[S game.Game[S]](goroutines int, options ...Option) *MCTS[S] {
	c := newConfig(goroutines, options)
	return &MCTS[S]{
		goroutines:   c.goroutines,
		rollouts:     c.rollouts,
		rand:         newLockedRand(c.source),
		newCollector: c.newCollector,
	}
}

func (m *MCTS[S]) Name() string {
	return "mcts"
}

func (m *MCTS[S]) MakeMove(state S) (S, error) {
	next, _, err := m.Search(state)
	return next, err
}

func (m *MCTS[S]) Search(state S) (S, metrics.SearchMetric, error) {
	children := state.PossibleMoves()
	if len(children) == 0 {
		var zero S
		return zero, metrics.SearchMetric{}, ErrTerminalState
	}

	collector := m.newCollector()
	collector.Start(m.Name(), m.goroutines)

	// Seeds are drawn up front so results do not depend on scheduling
	seeds := m.rand.seeds(len(children))
	scores := make([]int, len(children))
	iterate(m.goroutines, len(children), func(i int) {
		rng := rand.New(rand.NewSource(seeds[i]))
		total := 0
		for r := 0; r < m.rollouts; r++ {
			total += playOut(children[i], rng, collector)
		}
		scores[i] = total
	})

	// Outcomes favour Player1, flip them so the mover always maximizes
	mover := state.PlayerTurn()
	if mover == game.Player2 {
		for i := range scores {
			scores[i] = -scores[i]
		}
	}

	chosen := best(scores)
	metric := collector.Complete()
	log.Debug().Str("strategy", m.Name()).Str("player", mover.String()).
		Ints("scores", scores).Int("chosen", chosen).Msg("search complete")

	return children[chosen], metric, nil
}

// playOut plays uniformly random moves from state until the game ends and
// returns the outcome in the game.Outcome convention.
func playOut[S game.Game[S]](state S, rng *rand.Rand, collector metrics.Collector) int {
	collector.AddRollout()
	for {
		if state.IsWinningState() {
			collector.AddDecisive()
			return game.Outcome(state)
		}

		children := state.PossibleMoves()
		if len(children) == 0 {
			return game.Draw
		}
		state = children[rng.Intn(len(children))]
	}
}
