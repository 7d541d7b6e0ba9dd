package game

import "fmt"

const (
	Player1Wins = 1
	Draw        = 0
	Player2Wins = -1
)

// Winner returns the player who just completed a winning configuration.
func Winner[S Game[S]](s S) (Player, bool) {
	if !s.IsWinningState() {
		return 0, false
	}
	// The winner is always whoever moved last
	return s.PlayerTurn().Other(), true
}

// Outcome maps a state onto the fixed global convention: Player1Wins, Player2Wins
// or Draw. On terminal states it panics unless RewardValue(Player1) agrees.
func Outcome[S Game[S]](s S) int {
	outcome := Draw
	if winner, ok := Winner(s); ok {
		outcome = Player1Wins
		if winner == Player2 {
			outcome = Player2Wins
		}
	}

	if s.IsGameOver() {
		if reward := s.RewardValue(Player1); reward != outcome {
			panic(fmt.Sprintf("reward convention mismatch: RewardValue(%s)=%d, outcome=%d", Player1, reward, outcome))
		}
	}
	return outcome
}

// IsSuccessor reports whether next is one of the states reachable from s in one ply.
func IsSuccessor[S Game[S]](s S, next S) bool {
	want := next.String()
	for _, child := range s.PossibleMoves() {
		if child.PlayerTurn() == next.PlayerTurn() && child.String() == want {
			return true
		}
	}
	return false
}
