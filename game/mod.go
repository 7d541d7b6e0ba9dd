package game

import "fmt"

// State should be immutable - operations on State always return a new copy, so
// any number of goroutines may inspect the same state without synchronization.
type State[S any] interface {
	// InitialState returns the fixed starting configuration. It ignores its
	// receiver, so it can be called on the zero value of S.
	InitialState() S
	// PlayerTurn returns the player who moves next.
	PlayerTurn() Player
	fmt.Stringer
}

type Rules[S any] interface {
	// PossibleMoves returns every successor reachable in one ply, in a fixed
	// order. It is empty exactly at a terminal position.
	PossibleMoves() []S
	IsGameOver() bool
	// IsWinningState reports whether the player who made the most recent move
	// completed a winning configuration.
	IsWinningState() bool
	// RewardValue scores a terminal state for player: 1 win, -1 loss, 0 draw.
	// Calling it before IsGameOver holds is a programming error.
	RewardValue(player Player) int
}

// Game is the capability set any board game must implement to be searchable.
type Game[S any] interface {
	State[S]
	Rules[S]
}
