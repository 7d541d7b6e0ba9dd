package connectfour

import (
	"errors"
	"testing"

	"gamesearch/game"

	"github.com/stretchr/testify/require"
)

// Full 6x7 board without any line of four
const fullDrawBoard = `
	RRBBRRB
	BBRRBBR
	RRBBRRB
	BBRRBBR
	RRBBRRB
	BBRRBBR`

func TestInitialState(t *testing.T) {
	s := InitialState()

	require.Equal(t, 6, s.Rows())
	require.Equal(t, 7, s.Columns())
	for r := 0; r < s.Rows(); r++ {
		for c := 0; c < s.Columns(); c++ {
			require.Equal(t, Empty, s.Cell(r, c), "Every cell should start empty")
		}
	}
	require.Equal(t, game.Player1, s.PlayerTurn(), "Player1 should move first")
	_, moved := s.LastMove()
	require.False(t, moved, "No move should be recorded")
	require.False(t, s.IsGameOver())

	var zero State
	require.Equal(t, s, zero.InitialState(), "The zero value should produce the initial state")
}

func TestPossibleMoves(t *testing.T) {
	t.Run("dropping into every column of an empty board", func(t *testing.T) {
		s := InitialState()

		moves := s.PossibleMoves()

		require.Len(t, moves, 7)
		for c, child := range moves {
			require.Equal(t, game.Player2, child.PlayerTurn(), "Turn should flip")
			require.Equal(t, game.Player1, child.LastMover())
			at, moved := child.LastMove()
			require.True(t, moved)
			require.Equal(t, Coord{Row: 5, Column: c}, at, "Children should follow column order")
			for r := 0; r < s.Rows(); r++ {
				for col := 0; col < s.Columns(); col++ {
					want := Empty
					if r == 5 && col == c {
						want = Red
					}
					require.Equal(t, want, child.Cell(r, col), "Child should differ only at the dropped cell")
				}
			}
		}
	})

	t.Run("skipping full columns", func(t *testing.T) {
		s := mustParse(t, `
			B......
			R......
			B......
			R......
			B......
			R......`, game.Player2)

		moves := s.PossibleMoves()

		require.Len(t, moves, 6)
		require.Equal(t, []int{1, 2, 3, 4, 5, 6}, s.OpenColumns())
		at, _ := moves[0].LastMove()
		require.Equal(t, Coord{Row: 5, Column: 1}, at)
	})

	t.Run("returning nothing on a full board", func(t *testing.T) {
		s := mustParse(t, fullDrawBoard, game.Player2)

		require.Empty(t, s.PossibleMoves())
		require.Empty(t, s.OpenColumns())
		require.True(t, s.IsGameOver())
	})

	t.Run("leaving the parent untouched", func(t *testing.T) {
		s := InitialState()
		before := s.String()

		for _, child := range s.PossibleMoves() {
			_ = child.PossibleMoves()
		}

		require.Equal(t, before, s.String(), "States should never be mutated")
	})
}

func TestPlay(t *testing.T) {
	t.Run("stacking pieces from the bottom", func(t *testing.T) {
		s := InitialState()
		var err error
		for i := 0; i < 3; i++ {
			s, err = s.Play(3)
			require.NoError(t, err)
		}

		require.Equal(t, Red, s.Cell(5, 3))
		require.Equal(t, Black, s.Cell(4, 3))
		require.Equal(t, Red, s.Cell(3, 3))
		require.Equal(t, Empty, s.Cell(2, 3))
		at, moved := s.LastMove()
		require.True(t, moved)
		require.Equal(t, Coord{Row: 3, Column: 3}, at)
		require.Equal(t, game.Player2, s.PlayerTurn())
	})

	t.Run("matching the generated successor", func(t *testing.T) {
		s := InitialState()

		got, err := s.Play(4)

		require.NoError(t, err)
		require.Equal(t, s.PossibleMoves()[4], got)
		require.True(t, game.IsSuccessor(s, got))
	})

	t.Run("rejecting out of range columns", func(t *testing.T) {
		s := InitialState()

		for _, column := range []int{-1, 7} {
			_, err := s.Play(column)
			require.True(t, errors.Is(err, ErrColumnOutOfRange), "column %d", column)
		}
	})

	t.Run("rejecting a full column", func(t *testing.T) {
		s := mustParse(t, `
			B......
			R......
			B......
			R......
			B......
			R......`, game.Player2)

		_, err := s.Play(0)

		require.True(t, errors.Is(err, ErrColumnFull))
	})

	t.Run("rejecting moves after a win", func(t *testing.T) {
		s := mustParse(t, `
			.......
			.......
			.......
			.......
			.......
			RRRR...`, game.Player1)

		_, err := s.Play(5)

		require.True(t, errors.Is(err, ErrGameOver))
	})
}

func TestFromRows(t *testing.T) {
	t.Run("copying the given grid", func(t *testing.T) {
		rows := [][]Piece{
			{Empty, Empty},
			{Red, Black},
		}

		s, err := FromRows(rows, game.Player2)
		require.NoError(t, err)
		rows[1][0] = Black

		require.Equal(t, Red, s.Cell(1, 0), "State should not alias the input")
		require.Equal(t, game.Player1, s.PlayerTurn())
	})

	t.Run("rejecting a ragged grid", func(t *testing.T) {
		_, err := FromRows([][]Piece{{Empty, Empty}, {Red}}, game.Player1)

		require.True(t, errors.Is(err, ErrMalformedBoard))
	})

	t.Run("rejecting floating pieces", func(t *testing.T) {
		_, err := FromRows([][]Piece{{Red, Empty}, {Empty, Black}}, game.Player1)

		require.True(t, errors.Is(err, ErrMalformedBoard))
	})

	t.Run("rejecting an empty grid", func(t *testing.T) {
		_, err := FromRows(nil, game.Player1)

		require.True(t, errors.Is(err, ErrMalformedBoard))
	})
}

func TestNew(t *testing.T) {
	s, err := New(4, 5)
	require.NoError(t, err)
	require.Equal(t, 4, s.Rows())
	require.Equal(t, 5, s.Columns())
	require.Len(t, s.PossibleMoves(), 5)

	_, err = New(0, 7)
	require.True(t, errors.Is(err, ErrMalformedBoard))
}

func TestString(t *testing.T) {
	s, err := InitialState().Play(0)
	require.NoError(t, err)
	s, err = s.Play(6)
	require.NoError(t, err)

	text := s.String()

	require.Equal(t, ".......\n.......\n.......\n.......\n.......\nR.....B", text)

	parsed, err := Parse(text, s.LastMover())
	require.NoError(t, err)
	require.Equal(t, text, parsed.String(), "Parsing the rendering should give the same board")
}

func TestSmallBoards(t *testing.T) {
	t.Run("drawing a full board too small for four in a row", func(t *testing.T) {
		s := mustParse(t, `
			RB
			BR`, game.Player2)

		require.True(t, s.IsGameOver())
		require.Empty(t, s.PossibleMoves())
		require.Equal(t, 0, s.RewardValue(game.Player1))
		require.Equal(t, 0, s.RewardValue(game.Player2))
	})

	t.Run("counting one move per open column", func(t *testing.T) {
		s := mustParse(t, `
			.B..
			.R..
			BR.R
			RB.B`, game.Player2)

		require.Len(t, s.PossibleMoves(), 3, "Only column 1 is full")
	})
}
