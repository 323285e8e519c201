package random

import (
	"math/rand"

	"github.com/sweepline/minesweeper/game"
)

// Director plays by uncovering cells uniformly at random among those still
// covered and not flagged. It never flags anything.
type Director struct {
	visible *game.VisibleField
	rng     *rand.Rand
}

func (director *Director) Init(visible *game.VisibleField, rng *rand.Rand) {
	director.visible = visible
	director.rng = rng
}

// Act uncovers one randomly chosen covered, unflagged cell. When none is
// left the game is necessarily already won and Act does nothing.
func (director *Director) Act() {
	type location struct {
		row, col int
	}

	field := director.visible.MineField()
	var candidates []location
	for row := 0; row < field.NumRows(); row++ {
		for col := 0; col < field.NumCols(); col++ {
			if !director.visible.IsUncovered(row, col) &&
				director.visible.GetStatus(row, col) != game.Flagged {
				candidates = append(candidates, location{row, col})
			}
		}
	}

	if len(candidates) == 0 {
		return
	}
	pick := candidates[director.rng.Intn(len(candidates))]
	director.visible.Uncover(pick.row, pick.col)
}

func (director *Director) End() {}
