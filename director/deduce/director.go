package deduce

import (
	"math/rand"

	"github.com/sweepline/minesweeper/director/random"
	"github.com/sweepline/minesweeper/game"
	"github.com/sweepline/minesweeper/util/collections"
)

type location struct {
	row, col int
}

// observation is the constraint an uncovered numbered cell places on its
// covered neighbors: remaining of them hold mines.
type observation struct {
	cells     collections.Set[location]
	remaining int
}

// Director plays with single-constraint deductions. Every uncovered number
// is read as an observation over its covered neighbors, discounted by flags
// already placed. An observation whose remaining mine count equals its cell
// count gets all its cells flagged; one whose count has dropped to zero gets
// them all uncovered. When no observation is decisive the director falls
// back to a random move.
type Director struct {
	visible  *game.VisibleField
	fallback random.Director
}

func (director *Director) Init(visible *game.VisibleField, rng *rand.Rand) {
	director.visible = visible
	director.fallback.Init(visible, rng)
}

// Act applies the first decisive deduction found, or a random move when
// there is none.
func (director *Director) Act() {
	if director.actDeliberate() {
		return
	}
	director.fallback.Act()
}

func (director *Director) End() {
	director.fallback.End()
}

func (director *Director) actDeliberate() bool {
	field := director.visible.MineField()
	for row := 0; row < field.NumRows(); row++ {
		for col := 0; col < field.NumCols(); col++ {
			obs, ok := director.observe(row, col)
			if !ok || obs.cells.Len() == 0 {
				continue
			}

			if obs.remaining <= 0 {
				for loc := range obs.cells {
					director.visible.Uncover(loc.row, loc.col)
				}
				return true
			}

			if obs.remaining == obs.cells.Len() {
				for loc := range obs.cells {
					director.flag(loc)
				}
				return true
			}
		}
	}
	return false
}

// observe builds the observation of the numbered cell at (row, col). Cells
// showing zero carry no constraint (the flood already cleared around them),
// so only statuses 1 through 8 observe anything.
func (director *Director) observe(row, col int) (observation, bool) {
	status := director.visible.GetStatus(row, col)
	if status < 1 || status > game.MaxAdjacent {
		return observation{}, false
	}

	field := director.visible.MineField()
	cells := make(collections.Set[location])
	flags := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if !field.InRange(r, c) {
				continue
			}

			switch director.visible.GetStatus(r, c) {
			case game.Flagged:
				flags++
			case game.Covered, game.Questioned:
				cells.Add(location{r, c})
			}
		}
	}

	return observation{cells: cells, remaining: int(status) - flags}, true
}

// flag cycles a covered cell until it shows a flag. A Questioned cell takes
// two steps, through Covered.
func (director *Director) flag(loc location) {
	for director.visible.GetStatus(loc.row, loc.col) != game.Flagged {
		director.visible.CycleGuess(loc.row, loc.col)
	}
}
