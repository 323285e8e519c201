package game

import (
	"fmt"
	"math/rand"
)

// MineField is the ground-truth mine layout for a game. It is mutated only
// through Populate and ResetEmpty; queries never change it. Locations are
// (row, col) with both starting from 0.
//
// In-range preconditions on queries are caller contracts: violating one
// panics rather than returning an error.
type MineField struct {
	mines    [][]bool
	numMines int
	rng      *rand.Rand
}

// NewMineFieldFromLayout creates a mine field matching the given layout,
// where layout[row][col] == true means a mine at (row, col). The layout is
// copied. NumMines reports the number of true entries.
//
// The layout must have at least one row and one column and be rectangular.
func NewMineFieldFromLayout(layout [][]bool) *MineField {
	if len(layout) == 0 || len(layout[0]) == 0 {
		panic("game: mine layout must have at least one row and one column")
	}

	numCols := len(layout[0])
	mines := make([][]bool, len(layout))
	numMines := 0
	for row, src := range layout {
		if len(src) != numCols {
			panic(fmt.Sprintf("game: mine layout is not rectangular: row %d has %d columns, want %d",
				row, len(src), numCols))
		}

		mines[row] = make([]bool, numCols)
		copy(mines[row], src)
		for _, mine := range src {
			if mine {
				numMines++
			}
		}
	}

	return &MineField{mines: mines, numMines: numMines}
}

// NewMineField creates an empty field of the given dimensions that will hold
// numMines mines once Populate is called. Until then the grid has no mines
// and NumMines does not match the actual mine count.
//
// Contract: numRows > 0, numCols > 0, and 0 <= numMines < numRows*numCols/3.
// The rng drives mine placement; a fixed seed gives reproducible fields.
func NewMineField(numRows, numCols, numMines int, rng *rand.Rand) *MineField {
	if numRows <= 0 || numCols <= 0 {
		panic(fmt.Sprintf("game: field dimensions %dx%d must be positive", numRows, numCols))
	}
	if numMines < 0 || numMines >= numRows*numCols/3 {
		panic(fmt.Sprintf("game: %d mines violates the one-third bound for a %dx%d field",
			numMines, numRows, numCols))
	}

	mines := make([][]bool, numRows)
	for row := range mines {
		mines[row] = make([]bool, numCols)
	}

	return &MineField{mines: mines, numMines: numMines, rng: rng}
}

// Populate clears the field and places exactly NumMines mines at distinct
// random locations, never at (excludeRow, excludeCol). Placement is rejection
// sampled: occupied picks and the excluded cell are retried, which always
// terminates because the mine count is bounded below a third of the cells.
func (field *MineField) Populate(excludeRow, excludeCol int) {
	field.assertInRange(excludeRow, excludeCol)
	if field.rng == nil {
		panic("game: mine field has no randomness source to populate from")
	}
	if field.numMines >= field.NumRows()*field.NumCols()/3 {
		panic(fmt.Sprintf("game: %d mines violates the one-third bound for a %dx%d field",
			field.numMines, field.NumRows(), field.NumCols()))
	}

	field.ResetEmpty()

	placed := 0
	for placed < field.numMines {
		row := field.rng.Intn(field.NumRows())
		col := field.rng.Intn(field.NumCols())

		if (row == excludeRow && col == excludeCol) || field.mines[row][col] {
			continue
		}
		field.mines[row][col] = true
		placed++
	}
}

// ResetEmpty removes every mine from the field. NumMines is unchanged, so
// until Populate runs again the grid no longer matches it.
func (field *MineField) ResetEmpty() {
	for row := range field.mines {
		for col := range field.mines[row] {
			field.mines[row][col] = false
		}
	}
}

// HasMine reports whether there is a mine at (row, col).
func (field *MineField) HasMine(row, col int) bool {
	field.assertInRange(row, col)
	return field.mines[row][col]
}

// NumAdjacentMines counts the mines among the up-to-8 neighbors of
// (row, col), not counting a mine at (row, col) itself.
func (field *MineField) NumAdjacentMines(row, col int) int {
	field.assertInRange(row, col)

	adjacent := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if field.InRange(row+dr, col+dc) && field.mines[row+dr][col+dc] {
				adjacent++
			}
		}
	}
	return adjacent
}

// InRange reports whether (row, col) is a valid field location.
func (field *MineField) InRange(row, col int) bool {
	return row >= 0 && col >= 0 && row < field.NumRows() && col < field.NumCols()
}

func (field *MineField) NumRows() int {
	return len(field.mines)
}

func (field *MineField) NumCols() int {
	return len(field.mines[0])
}

// NumMines returns the number of mines this field holds when populated. For
// fields created empty this can differ from the actual count until Populate
// is called; see NewMineField and ResetEmpty.
func (field *MineField) NumMines() int {
	return field.numMines
}

func (field *MineField) assertInRange(row, col int) {
	if !field.InRange(row, col) {
		panic(fmt.Sprintf("game: location (%d, %d) out of range for %dx%d field",
			row, col, field.NumRows(), field.NumCols()))
	}
}
