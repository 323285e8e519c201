package game

// VisibleField is the overlay a player sees of a MineField: one CellStatus
// per location, mutated by the player actions CycleGuess and Uncover.
// Together with its MineField it forms the whole model of a game in play.
//
// The MineField reference is fixed for the VisibleField's lifetime and is
// never mutated through it. A VisibleField is not safe for concurrent use.
type VisibleField struct {
	mineField *MineField
	grid      [][]CellStatus

	// Count of cells showing an adjacency number. The end-of-game statuses
	// (Mine, WronglyFlagged, ExplodedMine) never count toward a win, so a
	// lost board can never satisfy the win condition.
	uncovered int
}

// NewVisibleField creates an all-Covered overlay for the given mine field.
func NewVisibleField(mineField *MineField) *VisibleField {
	visible := &VisibleField{mineField: mineField}
	visible.ResetGameDisplay()
	return visible
}

// MineField returns the underlying mine field this overlay covers.
func (visible *VisibleField) MineField() *MineField {
	return visible.mineField
}

// ResetGameDisplay returns the overlay to its initial state: every cell
// Covered, same underlying mine field.
func (visible *VisibleField) ResetGameDisplay() {
	grid := make([][]CellStatus, visible.mineField.NumRows())
	for row := range grid {
		grid[row] = make([]CellStatus, visible.mineField.NumCols())
		for col := range grid[row] {
			grid[row][col] = Covered
		}
	}
	visible.grid = grid
	visible.uncovered = 0
}

// GetStatus returns the visible status of the cell at (row, col).
func (visible *VisibleField) GetStatus(row, col int) CellStatus {
	visible.mineField.assertInRange(row, col)
	return visible.grid[row][col]
}

// NumMinesLeft is the field's mine count minus the number of flags placed.
// It says nothing about whether the flags are correct, and goes negative
// when the player has flagged more cells than there are mines.
func (visible *VisibleField) NumMinesLeft() int {
	flags := 0
	for _, row := range visible.grid {
		for _, status := range row {
			if status == Flagged {
				flags++
			}
		}
	}
	return visible.mineField.NumMines() - flags
}

// CycleGuess advances the covered-state cycle of the cell at (row, col):
// Covered to Flagged, Flagged to Questioned, Questioned back to Covered.
// It has no effect on an uncovered cell.
func (visible *VisibleField) CycleGuess(row, col int) {
	visible.mineField.assertInRange(row, col)
	switch visible.grid[row][col] {
	case Covered:
		visible.grid[row][col] = Flagged
	case Flagged:
		visible.grid[row][col] = Questioned
	case Questioned:
		visible.grid[row][col] = Covered
	}
}

// Uncover reveals the cell at (row, col) and returns false iff that cell is
// a mine. Out-of-range, already-uncovered and Flagged cells are left alone
// and report true; a Questioned cell uncovers like a Covered one (flags
// protect against accidental reveals, question marks do not).
//
// Revealing a mine ends the game: every wrong flag becomes WronglyFlagged,
// every unflagged mine becomes Mine, and (row, col) itself ExplodedMine.
// Revealing a safe cell shows its adjacent-mine count; a count of zero
// expands to all 8 neighbors, uncovering the whole connected zero region
// plus its numbered boundary. Uncovering the last safe cell wins the game
// and flags any mines still covered.
func (visible *VisibleField) Uncover(row, col int) bool {
	if !visible.mineField.InRange(row, col) || visible.IsUncovered(row, col) ||
		visible.grid[row][col] == Flagged {
		return true
	}

	if visible.mineField.HasMine(row, col) {
		visible.revealLost()
		visible.grid[row][col] = ExplodedMine
		return false
	}

	flood(row, col, visible.uncoverOne)
	return true
}

// uncoverOne reveals a single queued cell and reports whether the flood
// should expand through it. Cells reached by expansion border a
// zero-adjacency cell and so can never hold a mine; only the initiating
// cell of an Uncover is checked for one.
func (visible *VisibleField) uncoverOne(row, col int) bool {
	if !visible.mineField.InRange(row, col) || visible.IsUncovered(row, col) ||
		visible.grid[row][col] == Flagged {
		return false
	}

	adjacent := visible.mineField.NumAdjacentMines(row, col)
	visible.grid[row][col] = CellStatus(adjacent)
	visible.uncovered++

	if visible.uncovered == visible.numSafeCells() {
		visible.revealWon()
	}

	return adjacent == 0
}

// IsGameOver reports whether the game has been won or lost. There is no
// cached game-over flag; the outcome is rederived on every call.
func (visible *VisibleField) IsGameOver() bool {
	return visible.State() != Ongoing
}

// State reports the game's outcome so far: Lost once a mine has exploded,
// Won once every safe cell shows its adjacency number, Ongoing otherwise.
// A loss takes precedence; the exploded mine itself is not a safe cell, so
// a lost board never reaches the uncovered count a win requires.
func (visible *VisibleField) State() GameState {
	for _, row := range visible.grid {
		for _, status := range row {
			if status == ExplodedMine {
				return Lost
			}
		}
	}
	if visible.uncovered == visible.numSafeCells() {
		return Won
	}
	return Ongoing
}

// IsUncovered reports whether the cell at (row, col) is in any uncovered
// state, as opposed to Covered, Flagged or Questioned.
func (visible *VisibleField) IsUncovered(row, col int) bool {
	visible.mineField.assertInRange(row, col)
	status := visible.grid[row][col]
	return status != Covered && status != Flagged && status != Questioned
}

// revealWon flags every still-covered mine. Purely a display change; the
// win itself is detected from the uncovered count.
func (visible *VisibleField) revealWon() {
	for row := range visible.grid {
		for col := range visible.grid[row] {
			if !visible.IsUncovered(row, col) && visible.mineField.HasMine(row, col) {
				visible.grid[row][col] = Flagged
			}
		}
	}
}

// revealLost repaints the overlay for the end of a losing game: flags
// without a mine underneath become WronglyFlagged, unflagged mines become
// Mine. The exploded cell is set separately by Uncover.
func (visible *VisibleField) revealLost() {
	for row := range visible.grid {
		for col := range visible.grid[row] {
			flagged := visible.grid[row][col] == Flagged
			mined := visible.mineField.HasMine(row, col)

			if flagged && !mined {
				visible.grid[row][col] = WronglyFlagged
			} else if !flagged && mined {
				visible.grid[row][col] = Mine
			}
		}
	}
}

func (visible *VisibleField) numSafeCells() int {
	return visible.mineField.NumRows()*visible.mineField.NumCols() - visible.mineField.NumMines()
}
