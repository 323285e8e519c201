package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sweepline/minesweeper/director/deduce"
	"github.com/sweepline/minesweeper/director/random"
	"github.com/sweepline/minesweeper/game"
)

var log = logrus.New()

var (
	numRows      int
	numCols      int
	numMines     int
	seed         int64
	numGames     int
	directorName string
	saveDir      string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Run computer-driven Minesweeper games",
	Long: `sweeper plays headless Minesweeper games using an automated
director and reports the outcomes.

Play a single random-director game on an expert board
	sweeper

Play 100 games with the deducing director on a fixed seed
	sweeper --games 100 --director deduce --seed 42
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if numRows <= 0 || numCols <= 0 {
		return fmt.Errorf("field dimensions %dx%d must be positive", numRows, numCols)
	}
	if numMines < 0 || numMines >= numRows*numCols/3 {
		return fmt.Errorf("mine count %d must be non-negative and below a third of the %d cells",
			numMines, numRows*numCols)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.WithField("seed", seed).Info("starting run")

	wins := 0
	for i := 1; i <= numGames; i++ {
		director, err := newDirector()
		if err != nil {
			return err
		}

		field := game.NewMineField(numRows, numCols, numMines, rng)
		visible := game.NewVisibleField(field)

		// Classic opening: mines are placed only after the starting cell is
		// chosen, so the first uncover never explodes.
		startRow, startCol := rng.Intn(numRows), rng.Intn(numCols)
		field.Populate(startRow, startCol)
		visible.Uncover(startRow, startCol)

		state, moves := game.Play(visible, director, rng, log)
		if state == game.Won {
			wins++
		}

		log.WithFields(logrus.Fields{
			"game":      i,
			"state":     state,
			"moves":     moves,
			"minesLeft": visible.NumMinesLeft(),
		}).Info("game finished")

		if saveDir != "" {
			if err := saveSnapshot(visible, i, state); err != nil {
				log.WithError(err).Warn("could not save snapshot")
			}
		}
	}

	log.WithFields(logrus.Fields{
		"games": numGames,
		"wins":  wins,
	}).Info("run finished")
	return nil
}

func newDirector() (game.Director, error) {
	switch directorName {
	case "random":
		return &random.Director{}, nil
	case "deduce":
		return &deduce.Director{}, nil
	default:
		return nil, fmt.Errorf("unknown director %q (want random or deduce)", directorName)
	}
}

func saveSnapshot(visible *game.VisibleField, gameNum int, state game.GameState) error {
	if err := os.MkdirAll(saveDir, 0777); err != nil {
		return err
	}

	filename := fmt.Sprintf("%s%03d_%s.yaml", time.Now().Format("20060102_150405_"), gameNum, state)
	path := filepath.Join(saveDir, filename)

	snapshot := game.Capture(visible, seed)
	return os.WriteFile(path, []byte(snapshot.Serialize()), 0666)
}

func init() {
	rootCmd.Flags().IntVarP(&numRows, "rows", "r", 16, "Number of rows in the field")
	rootCmd.Flags().IntVarP(&numCols, "cols", "c", 30, "Number of columns in the field")
	rootCmd.Flags().IntVarP(&numMines, "mines", "m", 99, "Number of mines to place")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 seeds from the current time)")
	rootCmd.Flags().IntVarP(&numGames, "games", "g", 1, "Number of games to play")
	rootCmd.Flags().StringVarP(&directorName, "director", "d", "random", "Director to play with (random or deduce)")
	rootCmd.Flags().StringVar(&saveDir, "save-dir", "", "Directory to save finished-game snapshots to")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every director move")
}
