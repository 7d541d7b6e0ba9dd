package searcher

import (
	"strconv"
	"testing"

	"gamesearch/connectfour"
	"gamesearch/game"

	"github.com/stretchr/testify/require"
)

// mockState is a game of Nim: take one or two stones, taking the last one wins.
// Positions with a multiple of three stones are lost for the player to move.
type mockState struct {
	stones    int
	lastMover game.Player
	moved     bool
}

func (mockState) InitialState() mockState {
	return mockState{stones: 7, lastMover: game.Player2}
}

func (m mockState) PlayerTurn() game.Player {
	return m.lastMover.Other()
}

func (m mockState) String() string {
	return strconv.Itoa(m.stones)
}

func (m mockState) PossibleMoves() []mockState {
	if m.IsGameOver() {
		return nil
	}
	var moves []mockState
	for take := 1; take <= 2 && take <= m.stones; take++ {
		moves = append(moves, mockState{stones: m.stones - take, lastMover: m.PlayerTurn(), moved: true})
	}
	return moves
}

func (m mockState) IsGameOver() bool {
	return m.stones == 0
}

func (m mockState) IsWinningState() bool {
	return m.moved && m.stones == 0
}

func (m mockState) RewardValue(player game.Player) int {
	if !m.IsGameOver() {
		panic("not over")
	}
	if !m.IsWinningState() {
		return 0
	}
	if m.lastMover == player {
		return 1
	}
	return -1
}

func nim(stones int, toMove game.Player) mockState {
	return mockState{stones: stones, lastMover: toMove.Other(), moved: true}
}

// Red wins at once by dropping into column 3; column 0 only draws
const redToWin = `
	.BR.
	.RB.
	BBB.
	RRR.`

// The same position with colours swapped, Black to move
const blackToWin = `
	.RB.
	.BR.
	RRR.
	BBB.`

func mustParse(t *testing.T, text string, lastMover game.Player) connectfour.State {
	t.Helper()
	s, err := connectfour.Parse(text, lastMover)
	require.NoError(t, err)
	return s
}

func lastColumn(t *testing.T, s connectfour.State) int {
	t.Helper()
	at, ok := s.LastMove()
	require.True(t, ok, "State should record its move")
	return at.Column
}
