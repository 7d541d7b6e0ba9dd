package searcher

import (
	"gamesearch/experiments/metrics"
	"gamesearch/game"
)

// Random picks a successor uniformly at random.
type Random[S game.Game[S]] struct {
	rand         *lockedRand
	newCollector func() metrics.Collector
}

func NewRandom[S game.Game[S]](options ...Option) *Random[S] {
	c := newConfig(1, options)
	return &Random[S]{
		rand:         newLockedRand(c.source),
		newCollector: c.newCollector,
	}
}

func (r *Random[S]) Name() string {
	return "random"
}

func (r *Random[S]) MakeMove(state S) (S, error) {
	next, _, err := r.Search(state)
	return next, err
}

func (r *Random[S]) Search(state S) (S, metrics.SearchMetric, error) {
	children := state.PossibleMoves()
	if len(children) == 0 {
		var zero S
		return zero, metrics.SearchMetric{}, ErrTerminalState
	}

	collector := r.newCollector()
	collector.Start(r.Name(), 1)
	next := children[r.rand.Intn(len(children))]
	return next, collector.Complete(), nil
}
