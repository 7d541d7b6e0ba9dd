package connectfour

import (
	"errors"
	"fmt"
	"strings"

	"gamesearch/game"
	"gamesearch/meta"
	"gamesearch/utils"

	"golang.org/x/exp/slices"
)

var (
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrGameOver         = errors.New("game already finished")
	ErrMalformedBoard   = errors.New("malformed board")
)

type Piece int

const (
	Empty Piece = iota
	Red         // Player1
	Black       // Player2
)

func (p Piece) String() string {
	switch p {
	case Red:
		return "R"
	case Black:
		return "B"
	default:
		return "."
	}
}

func pieceOf(player game.Player) Piece {
	if player == game.Player1 {
		return Red
	}
	return Black
}

type Coord struct {
	Row    int // 0 is the top row
	Column int
}

// State is an immutable Connect-Four position. Rows are never written after a
// State is built, so successors share unchanged rows with their parent.
type State struct {
	board     [][]Piece
	lastMover game.Player
	lastMove  Coord // Kept for incremental win checks, not read by the full rescan
	moved     bool
}

var _ game.Game[State] = State{}

// InitialState returns an empty 6x7 board with Player1 to move.
func InitialState() State {
	board := make([][]Piece, meta.Rows)
	for r := range board {
		board[r] = make([]Piece, meta.Columns)
	}
	return State{
		board:     board,
		lastMover: game.Player2,
	}
}

// New returns an empty board of the given size with Player1 to move.
func New(rows, columns int) (State, error) {
	if rows < 1 || columns < 1 {
		return State{}, fmt.Errorf("%w: %dx%d board", ErrMalformedBoard, rows, columns)
	}
	board := make([][]Piece, rows)
	for r := range board {
		board[r] = make([]Piece, columns)
	}
	return State{
		board:     board,
		lastMover: game.Player2,
	}, nil
}

// FromRows builds a position from a grid, top row first. The grid must be
// rectangular and obey gravity. lastMover is taken as given; piece counts are
// not checked against it.
func FromRows(rows [][]Piece, lastMover game.Player) (State, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return State{}, fmt.Errorf("%w: empty board", ErrMalformedBoard)
	}
	columns, err := utils.Transpose(rows)
	if err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrMalformedBoard, err)
	}
	for c, column := range columns {
		occupied := false
		for r, piece := range column {
			switch {
			case piece != Empty && piece != Red && piece != Black:
				return State{}, fmt.Errorf("%w: unknown piece %d at (%d, %d)", ErrMalformedBoard, piece, r, c)
			case piece != Empty:
				occupied = true
			case occupied:
				return State{}, fmt.Errorf("%w: empty cell (%d, %d) below a piece", ErrMalformedBoard, r, c)
			}
		}
	}

	board := make([][]Piece, len(rows))
	for r, row := range rows {
		board[r] = slices.Clone(row)
	}
	return State{
		board:     board,
		lastMover: lastMover,
	}, nil
}

// Parse reads a board in the format produced by String. Blank lines and
// surrounding whitespace are ignored.
func Parse(text string, lastMover game.Player) (State, error) {
	var rows [][]Piece
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]Piece, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '.':
				row = append(row, Empty)
			case 'R':
				row = append(row, Red)
			case 'B':
				row = append(row, Black)
			default:
				return State{}, fmt.Errorf("%w: unexpected character %q", ErrMalformedBoard, ch)
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows, lastMover)
}

func (State) InitialState() State {
	return InitialState()
}

func (s State) PlayerTurn() game.Player {
	return s.lastMover.Other()
}

// LastMover returns the player who made the most recent move.
func (s State) LastMover() game.Player {
	return s.lastMover
}

// LastMove returns the cell filled by the most recent move, if it is known.
func (s State) LastMove() (Coord, bool) {
	return s.lastMove, s.moved
}

func (s State) Rows() int {
	return len(s.board)
}

func (s State) Columns() int {
	return len(s.board[0])
}

func (s State) Cell(row, column int) Piece {
	return s.board[row][column]
}

func (s State) String() string {
	var sb strings.Builder
	for r, row := range s.board {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, piece := range row {
			sb.WriteString(piece.String())
		}
	}
	return sb.String()
}

// openRow returns the lowest empty row of column.
func (s State) openRow(column int) (int, bool) {
	for r := len(s.board) - 1; r >= 0; r-- {
		if s.board[r][column] == Empty {
			return r, true
		}
	}
	return 0, false
}

func (s State) openCells() []Coord {
	var cells []Coord
	for c := 0; c < s.Columns(); c++ {
		if r, ok := s.openRow(c); ok {
			cells = append(cells, Coord{Row: r, Column: c})
		}
	}
	return cells
}

// OpenColumns returns the columns that still have room, left to right.
func (s State) OpenColumns() []int {
	cells := s.openCells()
	columns := make([]int, len(cells))
	for i, cell := range cells {
		columns[i] = cell.Column
	}
	return columns
}

func (s State) setPosition(at Coord) State {
	mover := s.PlayerTurn()

	// Only the touched row is copied, the rest are shared
	board := slices.Clone(s.board)
	row := slices.Clone(board[at.Row])
	row[at.Column] = pieceOf(mover)
	board[at.Row] = row

	return State{
		board:     board,
		lastMover: mover,
		lastMove:  at,
		moved:     true,
	}
}

// PossibleMoves returns one successor per open column, left to right, or none
// once the game is over.
func (s State) PossibleMoves() []State {
	if s.IsWinningState() {
		return nil
	}
	cells := s.openCells()
	moves := make([]State, 0, len(cells))
	for _, cell := range cells {
		moves = append(moves, s.setPosition(cell))
	}
	return moves
}

func (s State) IsGameOver() bool {
	return len(s.openCells()) == 0 || s.IsWinningState()
}

func (s State) RewardValue(player game.Player) int {
	if !s.IsGameOver() {
		panic("reward queried before game over")
	}
	if !s.IsWinningState() {
		return 0
	}
	if s.lastMover == player {
		return 1
	}
	return -1
}

// Play drops the current player's piece into column.
func (s State) Play(column int) (State, error) {
	if column < 0 || column >= s.Columns() {
		return State{}, fmt.Errorf("column %d not in [0, %d): %w", column, s.Columns(), ErrColumnOutOfRange)
	}
	if s.IsGameOver() {
		return State{}, ErrGameOver
	}
	row, ok := s.openRow(column)
	if !ok {
		return State{}, fmt.Errorf("column %d: %w", column, ErrColumnFull)
	}
	return s.setPosition(Coord{Row: row, Column: column}), nil
}
