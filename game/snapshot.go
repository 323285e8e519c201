package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Snapshot is a serializable record of a game: the ground-truth mine layout
// and the player-visible overlay, one rune per cell, rows separated by
// newlines. The seed is carried along so randomized games can be traced back
// to the run that produced them.
type Snapshot struct {
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`
	NumMines int    `yaml:"mines"`
	Seed     int64  `yaml:"seed,omitempty"`
	Field    string `yaml:"field,flow"`
	Overlay  string `yaml:"overlay,flow"`
}

// Capture records the current state of the visible field and its underlying
// mine field into a Snapshot.
func Capture(visible *VisibleField, seed int64) *Snapshot {
	mineField := visible.MineField()

	var field, overlay strings.Builder
	for row := 0; row < mineField.NumRows(); row++ {
		if row > 0 {
			field.WriteByte('\n')
			overlay.WriteByte('\n')
		}
		for col := 0; col < mineField.NumCols(); col++ {
			if mineField.HasMine(row, col) {
				field.WriteByte('*')
			} else {
				field.WriteByte('.')
			}
			overlay.WriteRune(statusRune(visible.GetStatus(row, col)))
		}
	}

	return &Snapshot{
		Rows:     mineField.NumRows(),
		Cols:     mineField.NumCols(),
		NumMines: mineField.NumMines(),
		Seed:     seed,
		Field:    field.String(),
		Overlay:  overlay.String(),
	}
}

// Serialize renders the snapshot as yaml.
func (snapshot *Snapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}
	return string(out)
}

// LoadSnapshot parses a yaml snapshot previously produced by Serialize.
func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snapshot, nil
}

// Restore rebuilds the mine field and visible field this snapshot was
// captured from, with every cell status intact.
func (snapshot *Snapshot) Restore() (*MineField, *VisibleField, error) {
	layout, err := snapshot.parseLayout()
	if err != nil {
		return nil, nil, err
	}

	mineField := NewMineFieldFromLayout(layout)
	if mineField.NumMines() != snapshot.NumMines {
		return nil, nil, fmt.Errorf("snapshot field holds %d mines, header says %d",
			mineField.NumMines(), snapshot.NumMines)
	}

	visible := NewVisibleField(mineField)
	overlayRows := strings.Split(snapshot.Overlay, "\n")
	if len(overlayRows) != snapshot.Rows {
		return nil, nil, fmt.Errorf("snapshot overlay has %d rows, want %d",
			len(overlayRows), snapshot.Rows)
	}
	for row, line := range overlayRows {
		cells := []rune(line)
		if len(cells) != snapshot.Cols {
			return nil, nil, fmt.Errorf("snapshot overlay row %d has %d cells, want %d",
				row, len(cells), snapshot.Cols)
		}
		for col, c := range cells {
			status, ok := runeStatus(c)
			if !ok {
				return nil, nil, fmt.Errorf("snapshot overlay has unknown cell %q at (%d, %d)",
					c, row, col)
			}
			visible.grid[row][col] = status
			if status >= 0 && status <= MaxAdjacent {
				visible.uncovered++
			}
		}
	}

	return mineField, visible, nil
}

func (snapshot *Snapshot) parseLayout() ([][]bool, error) {
	rows := strings.Split(snapshot.Field, "\n")
	if len(rows) != snapshot.Rows {
		return nil, fmt.Errorf("snapshot field has %d rows, want %d", len(rows), snapshot.Rows)
	}

	layout := make([][]bool, len(rows))
	for row, line := range rows {
		if len(line) != snapshot.Cols {
			return nil, fmt.Errorf("snapshot field row %d has %d cells, want %d",
				row, len(line), snapshot.Cols)
		}
		layout[row] = make([]bool, len(line))
		for col, c := range line {
			switch c {
			case '*':
				layout[row][col] = true
			case '.':
			default:
				return nil, fmt.Errorf("snapshot field has unknown cell %q at (%d, %d)",
					c, row, col)
			}
		}
	}
	return layout, nil
}

func statusRune(status CellStatus) rune {
	switch status {
	case Covered:
		return '#'
	case Flagged:
		return 'F'
	case Questioned:
		return '?'
	case Mine:
		return 'M'
	case WronglyFlagged:
		return 'X'
	case ExplodedMine:
		return '!'
	default:
		return rune('0' + status)
	}
}

func runeStatus(c rune) (CellStatus, bool) {
	switch {
	case c == '#':
		return Covered, true
	case c == 'F':
		return Flagged, true
	case c == '?':
		return Questioned, true
	case c == 'M':
		return Mine, true
	case c == 'X':
		return WronglyFlagged, true
	case c == '!':
		return ExplodedMine, true
	case c >= '0' && c <= '8':
		return CellStatus(c - '0'), true
	default:
		return 0, false
	}
}
