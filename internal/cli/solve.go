package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/internal/storage"
)

var (
	solveFacelets string
	solveMaxBound int
	solveNoRecord bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble...]",
	Short: "Find an optimal solution for a scramble",
	Long: `Find an optimal (shortest) solution for a scrambled cube.

The scramble is given either as standard move notation:

  cubesolver solve R U R' U' F2 D

or as a 54-character facelet string via --facelets (faces in U, D, F,
B, R, L order, row-major, colors W/Y/G/B/R/O).

Requires the corner pattern database; generate it first with
'cubesolver build'. Solved scrambles are recorded to the history
database unless --no-record is set.`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveFacelets, "facelets", "", "Scramble as a 54-character facelet string")
	solveCmd.Flags().IntVar(&solveMaxBound, "max-bound", 0, "Abort if the search bound exceeds this (0 = unlimited)")
	solveCmd.Flags().BoolVar(&solveNoRecord, "no-record", false, "Do not record the solve to the history database")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	// Build the scrambled cube
	var cube cubesolver.Cube
	var scrambleText string
	switch {
	case solveFacelets != "":
		var err error
		cube, err = cubesolver.ParseFacelets(solveFacelets)
		if err != nil {
			return err
		}
		scrambleText = solveFacelets
	case len(args) > 0:
		scrambleText = strings.Join(args, " ")
		moves, err := cubesolver.ParseMoves(scrambleText)
		if err != nil {
			return err
		}
		cube = cubesolver.NewCube()
		cube.ApplyMoves(moves)
	default:
		return fmt.Errorf("no scramble given (pass move notation or --facelets)")
	}

	// Load the heuristic table
	path, err := getTablePath()
	if err != nil {
		return err
	}
	db := cubesolver.NewPatternDatabase()
	if err := db.Load(path); err != nil {
		return fmt.Errorf("loading pattern database (run 'cubesolver build' first): %w", err)
	}

	opts := []cubesolver.Option{}
	if solveMaxBound > 0 {
		opts = append(opts, cubesolver.WithMaxBound(solveMaxBound))
	}
	if verbose {
		opts = append(opts, cubesolver.WithProgress(func(bound int) {
			fmt.Printf("searching bound %d...\n", bound)
		}))
	}

	solver, err := cubesolver.NewSolver(cube, db, opts...)
	if err != nil {
		return err
	}

	started := time.Now()
	solution, err := solver.Solve()
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	fmt.Println(RenderCube(&cube))
	fmt.Println(RenderSolution(solution, solver.Nodes(), elapsed))

	if solveNoRecord {
		return nil
	}

	return recordSolve(scrambleText, solution, solver, elapsed)
}

func recordSolve(scramble string, solution []cubesolver.Move, solver *cubesolver.Solver, elapsed time.Duration) error {
	var db *storage.DB
	var err error
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		return err
	}

	repo := storage.NewSolveRepository(db)
	id, err := repo.Create(&storage.Solve{
		Scramble:      scramble,
		Solution:      cubesolver.FormatMoves(solution),
		MoveCount:     len(solution),
		Bound:         solver.Bound(),
		NodesExpanded: solver.Nodes(),
		DurationMs:    elapsed.Milliseconds(),
	})
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Recorded solve %s\n", id)
	}
	return nil
}
