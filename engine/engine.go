package engine

import (
	"errors"

	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/searcher"
)

var (
	ErrIllegalMove = errors.New("agent returned a state that is not a successor")
	ErrInputClosed = errors.New("input closed")
)

// Agent picks the next state on behalf of one player.
type Agent[S game.Game[S]] interface {
	FindMove(state S) (S, metrics.SearchMetric, error)
}

// StrategyAgent plays whatever its search strategy chooses.
type StrategyAgent[S game.Game[S]] struct {
	Strategy searcher.Strategy[S]
}

func NewStrategyAgent[S game.Game[S]](strategy searcher.Strategy[S]) *StrategyAgent[S] {
	return &StrategyAgent[S]{Strategy: strategy}
}

func (a *StrategyAgent[S]) FindMove(state S) (S, metrics.SearchMetric, error) {
	return a.Strategy.Search(state)
}

// Result describes a finished or abandoned game.
type Result[S game.Game[S]] struct {
	Final  S
	Winner string // "" on a draw or an unfinished game
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}
