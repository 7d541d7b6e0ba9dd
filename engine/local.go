package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/meta"

	"github.com/rs/zerolog/log"
)

type Option func(c *config)

type config struct {
	maxTurns int
	out      io.Writer
}

// WithMaxTurns stops the game as unfinished after the given number of moves.
func WithMaxTurns(turns int) Option {
	return func(c *config) {
		if turns > 0 {
			c.maxTurns = turns
		}
	}
}

// WithOutput prints the board to w before the first move and after every move.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// LocalEngine runs a game between two in-process agents.
type LocalEngine[S game.Game[S]] struct {
	initial S
	agents  [2]Agent[S] // Indexed by game.Player
	config
}

// NewLocalEngine pits player1 against player2 from the initial state. Which of
// them moves first is decided by the state.
func NewLocalEngine[S game.Game[S]](initial S, player1, player2 Agent[S], options ...Option) *LocalEngine[S] {
	if player1 == nil || player2 == nil {
		panic("engine needs two agents")
	}
	c := config{maxTurns: meta.MaxTurns}
	for _, option := range options {
		option(&c)
	}
	return &LocalEngine[S]{
		initial: initial,
		agents:  [2]Agent[S]{player1, player2},
		config:  c,
	}
}

// Run plays until the game is over or the turn limit is reached. An agent error
// or an illegal move ends the game early; the partial result is still returned.
func (e *LocalEngine[S]) Run(ctx context.Context) (Result[S], error) {
	state := e.initial
	result := Result[S]{
		Game: metrics.GameMetric{
			StartingPlayer: state.PlayerTurn().String(),
			StartTime:      time.Now(),
		},
	}
	log.Info().Str("player", result.Game.StartingPlayer).Msg("game starting")
	e.print(state)

	var err error
	for turn := 1; !state.IsGameOver(); turn++ {
		if turn > e.maxTurns {
			log.Warn().Int("turns", e.maxTurns).Msg("turn limit reached, stopping game")
			break
		}
		if err = ctx.Err(); err != nil {
			break
		}

		mover := state.PlayerTurn()
		next, metric, findErr := e.agents[mover].FindMove(state)
		if findErr != nil {
			err = fmt.Errorf("turn %d, %s: %w", turn, mover, findErr)
			break
		}
		if !game.IsSuccessor(state, next) {
			err = fmt.Errorf("turn %d, %s: %w", turn, mover, ErrIllegalMove)
			break
		}

		result.Moves = append(result.Moves, metrics.MoveMetric{
			Step:         turn,
			Player:       mover.String(),
			SearchMetric: metric,
		})
		log.Debug().Int("turn", turn).Str("player", mover.String()).Dur("duration", metric.Duration).Msg("move played")

		state = next
		e.print(state)
	}

	if winner, ok := game.Winner(state); ok {
		result.Winner = winner.String()
	}
	result.Final = state
	result.Game.EndTime = time.Now()
	result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)
	result.Game.TotalMoves = len(result.Moves)
	result.Game.Winner = result.Winner

	log.Info().Str("winner", result.Winner).Int("moves", result.Game.TotalMoves).
		Bool("over", state.IsGameOver()).Msg("game finished")
	return result, err
}

func (e *LocalEngine[S]) print(state S) {
	if e.out == nil {
		return
	}
	fmt.Fprintf(e.out, "%s\n\n", state)
}
