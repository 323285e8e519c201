package game

// CellStatus is the player-visible state of a single square. The covered
// states are negative; 0 through 8 are the adjacent-mine count of an
// uncovered safe square; Mine, WronglyFlagged and ExplodedMine only appear
// once a game has been lost.
type CellStatus int

const (
	Covered CellStatus = -1 - iota
	Flagged
	Questioned
)

const (
	Mine CellStatus = iota + 9
	WronglyFlagged
	ExplodedMine
)

// MaxAdjacent is the largest possible adjacent-mine count.
const MaxAdjacent = 8

type GameState int

const (
	Ongoing GameState = iota
	Won
	Lost
)

func (state GameState) String() string {
	switch state {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}
