package utils

import (
	"errors"
	"fmt"
)

var ErrNotRectangular = errors.New("rows have different lengths")

// Transpose turns the columns of a rectangular grid into rows, keeping column
// order. The grid does not need to be square.
func Transpose[T any](rows [][]T) ([][]T, error) {
	if len(rows) == 0 {
		return [][]T{}, nil
	}

	width := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has length %d, expected %d: %w", i+1, len(row), width, ErrNotRectangular)
		}
	}

	columns := make([][]T, width)
	for c := range columns {
		column := make([]T, len(rows))
		for r, row := range rows {
			column[r] = row[c]
		}
		columns[c] = column
	}
	return columns, nil
}
