package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweepline/minesweeper/game"
)

func TestMineFieldFromLayoutRoundTrip(t *testing.T) {
	layout := [][]bool{
		{false, true, false},
		{false, false, true},
	}
	field := game.NewMineFieldFromLayout(layout)

	require.Equal(t, 2, field.NumRows())
	require.Equal(t, 3, field.NumCols())
	assert.Equal(t, 2, field.NumMines())

	for row := range layout {
		for col := range layout[row] {
			assert.Equal(t, layout[row][col], field.HasMine(row, col), "cell (%d, %d)", row, col)
		}
	}
}

func TestMineFieldFromLayoutCopiesLayout(t *testing.T) {
	layout := [][]bool{{true, false}}
	field := game.NewMineFieldFromLayout(layout)

	layout[0][1] = true

	assert.False(t, field.HasMine(0, 1))
	assert.Equal(t, 1, field.NumMines())
}

func TestMineFieldFromLayoutContract(t *testing.T) {
	assert.Panics(t, func() { game.NewMineFieldFromLayout(nil) })
	assert.Panics(t, func() { game.NewMineFieldFromLayout([][]bool{}) })
	assert.Panics(t, func() { game.NewMineFieldFromLayout([][]bool{{}}) })
	assert.Panics(t, func() {
		game.NewMineFieldFromLayout([][]bool{
			{false, false},
			{false},
		})
	})
}

func TestNewMineFieldContract(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Panics(t, func() { game.NewMineField(0, 5, 0, rng) })
	assert.Panics(t, func() { game.NewMineField(5, 0, 0, rng) })
	assert.Panics(t, func() { game.NewMineField(3, 3, -1, rng) })
	// Exactly a third of the cells is already over the bound.
	assert.Panics(t, func() { game.NewMineField(3, 3, 3, rng) })
	assert.NotPanics(t, func() { game.NewMineField(3, 3, 2, rng) })
}

func TestNumAdjacentMines(t *testing.T) {
	field := game.NewMineFieldFromLayout([][]bool{
		{false, false, false},
		{false, true, false},
		{false, false, false},
	})

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := 1
			if row == 1 && col == 1 {
				// The cell itself never counts.
				want = 0
			}
			assert.Equal(t, want, field.NumAdjacentMines(row, col), "cell (%d, %d)", row, col)
		}
	}
}

func TestNumAdjacentMinesAtEdges(t *testing.T) {
	field := game.NewMineFieldFromLayout([][]bool{
		{true, false, true},
		{false, false, false},
	})

	assert.Equal(t, 0, field.NumAdjacentMines(0, 0))
	assert.Equal(t, 2, field.NumAdjacentMines(0, 1))
	assert.Equal(t, 1, field.NumAdjacentMines(1, 0))
	assert.Equal(t, 2, field.NumAdjacentMines(1, 1))
	assert.Equal(t, 1, field.NumAdjacentMines(1, 2))
}

func TestInRange(t *testing.T) {
	field := game.NewMineFieldFromLayout([][]bool{
		{false, false, false},
		{false, false, false},
	})

	testCases := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{1, 2, true},
		{-1, 0, false},
		{0, -1, false},
		{2, 0, false},
		{0, 3, false},
	}
	for _, test := range testCases {
		assert.Equal(t, test.want, field.InRange(test.row, test.col), "(%d, %d)", test.row, test.col)
	}
}

func TestPopulate(t *testing.T) {
	field := game.NewMineField(8, 8, 10, rand.New(rand.NewSource(7)))

	for trial := 0; trial < 50; trial++ {
		field.Populate(3, 4)

		assert.False(t, field.HasMine(3, 4), "trial %d placed a mine on the excluded cell", trial)

		placed := 0
		for row := 0; row < field.NumRows(); row++ {
			for col := 0; col < field.NumCols(); col++ {
				if field.HasMine(row, col) {
					placed++
				}
			}
		}
		require.Equal(t, field.NumMines(), placed, "trial %d", trial)
	}
}

func TestPopulateIsReproducible(t *testing.T) {
	first := game.NewMineField(6, 6, 8, rand.New(rand.NewSource(99)))
	second := game.NewMineField(6, 6, 8, rand.New(rand.NewSource(99)))

	first.Populate(0, 0)
	second.Populate(0, 0)

	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			assert.Equal(t, first.HasMine(row, col), second.HasMine(row, col), "cell (%d, %d)", row, col)
		}
	}
}

func TestResetEmpty(t *testing.T) {
	field := game.NewMineField(5, 5, 6, rand.New(rand.NewSource(3)))
	field.Populate(0, 0)

	field.ResetEmpty()

	for row := 0; row < field.NumRows(); row++ {
		for col := 0; col < field.NumCols(); col++ {
			assert.False(t, field.HasMine(row, col), "cell (%d, %d)", row, col)
		}
	}
	// The target count survives a reset; only the grid is cleared.
	assert.Equal(t, 6, field.NumMines())
}

func TestQueryContracts(t *testing.T) {
	field := game.NewMineFieldFromLayout([][]bool{{false, true}})

	assert.Panics(t, func() { field.HasMine(-1, 0) })
	assert.Panics(t, func() { field.HasMine(0, 2) })
	assert.Panics(t, func() { field.NumAdjacentMines(1, 0) })
	assert.Panics(t, func() { field.Populate(0, 5) })
}
