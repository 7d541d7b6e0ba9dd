package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gamesearch/connectfour"
	"gamesearch/experiments/metrics"
)

// Human reads Connect-Four column indices from a line-oriented input.
// Out-of-range and full columns are reported and asked for again; anything
// that is not a number ends the game.
type Human struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (h *Human) FindMove(state connectfour.State) (connectfour.State, metrics.SearchMetric, error) {
	start := time.Now()
	for {
		fmt.Fprintf(h.out, "Your move, column 0-%d: ", state.Columns()-1)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return connectfour.State{}, metrics.SearchMetric{}, err
			}
			return connectfour.State{}, metrics.SearchMetric{}, ErrInputClosed
		}

		text := strings.TrimSpace(h.in.Text())
		column, err := strconv.Atoi(text)
		if err != nil {
			return connectfour.State{}, metrics.SearchMetric{}, fmt.Errorf("%q is not a column: %w", text, err)
		}

		next, err := state.Play(column)
		switch {
		case errors.Is(err, connectfour.ErrColumnOutOfRange), errors.Is(err, connectfour.ErrColumnFull):
			fmt.Fprintf(h.out, "%v, try again\n", err)
			continue
		case err != nil:
			return connectfour.State{}, metrics.SearchMetric{}, err
		}

		return next, metrics.SearchMetric{
			Strategy:   "human",
			Goroutines: 1,
			Duration:   time.Since(start),
		}, nil
	}
}
