package connectfour

import (
	"fmt"

	"gamesearch/meta"
	"gamesearch/utils"

	"golang.org/x/exp/slices"
)

// IsWinningState reports whether the last mover has meta.WinLength pieces in a
// line. Every direction is reduced to the same row scan: columns through a
// transpose, diagonals through bucketing by row+column, and the other diagonal
// direction by mirroring the rows first.
func (s State) IsWinningState() bool {
	piece := pieceOf(s.lastMover)

	if horizontalWin(s.board, piece) {
		return true
	}

	// Transpose to turn vertical runs into horizontal runs
	columns, err := utils.Transpose(s.board)
	if err != nil {
		panic(fmt.Sprintf("board invariant broken: %v", err))
	}
	if horizontalWin(columns, piece) {
		return true
	}

	if diagonalWin(s.board, piece) {
		return true
	}

	// Mirror every row so the remaining diagonal direction becomes the first one
	return diagonalWin(mirror(s.board), piece)
}

func horizontalWin(rows [][]Piece, piece Piece) bool {
	for _, row := range rows {
		count := 0
		for _, p := range row {
			if p == piece {
				count++
			} else {
				count = 0
			}
			if count == meta.WinLength {
				return true
			}
		}
	}
	return false
}

type bucketed struct {
	column int
	piece  Piece
}

// diagonalWin checks the lines along which row+column is constant.
func diagonalWin(board [][]Piece, piece Piece) bool {
	if len(board) == 0 {
		return false
	}

	buckets := make([][]bucketed, len(board)+len(board[0])-1)
	for r, row := range board {
		for c, p := range row {
			buckets[r+c] = append(buckets[r+c], bucketed{column: c, piece: p})
		}
	}

	diagonals := make([][]Piece, len(buckets))
	for key, bucket := range buckets {
		slices.SortFunc(bucket, func(a, b bucketed) int {
			return a.column - b.column
		})
		diagonal := make([]Piece, len(bucket))
		for i, cell := range bucket {
			diagonal[i] = cell.piece
		}
		diagonals[key] = diagonal
	}

	return horizontalWin(diagonals, piece)
}

func mirror(board [][]Piece) [][]Piece {
	mirrored := make([][]Piece, len(board))
	for r, row := range board {
		reversed := slices.Clone(row)
		slices.Reverse(reversed)
		mirrored[r] = reversed
	}
	return mirrored
}
