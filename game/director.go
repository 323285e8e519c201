package game

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Director is an automated player. Implementations pick their moves from the
// public VisibleField surface only; they never see mine positions.
type Director interface {
	// Init binds the director to the field it will play. The rng is the
	// director's only source of randomness, so a fixed seed replays a game.
	Init(visible *VisibleField, rng *rand.Rand)

	// Act performs a single move (one or more CycleGuess/Uncover calls).
	// Every Act on a game that is not over must change the overlay, or the
	// play loop cannot make progress.
	Act()

	// End releases anything the director holds once the game is over.
	End()
}

// Play drives the director against the visible field until the game is won
// or lost, returning the final state and the number of moves taken. Each
// move is logged at debug level; pass a nil log to disable logging.
func Play(visible *VisibleField, director Director, rng *rand.Rand, log logrus.FieldLogger) (GameState, int) {
	director.Init(visible, rng)
	defer director.End()

	moves := 0
	for !visible.IsGameOver() {
		director.Act()
		moves++

		if log != nil {
			log.WithFields(logrus.Fields{
				"move":      moves,
				"minesLeft": visible.NumMinesLeft(),
			}).Debug("director acted")
		}
	}

	return visible.State(), moves
}
