package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/analysis"
	"github.com/SeamusWaldron/gocube_solver/internal/render"
	"github.com/SeamusWaldron/gocube_solver/internal/service"
	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

var (
	solveSave     bool
	solveNotation bool
	solveStats    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <cube>",
	Short: "Solve the bottom cross of a cube",
	Long: `Print the rotations that bring the cube to the bottom cross: first a daisy
of bottom colored edges around the Up center, then each petal flipped down
under its matching side center.

Use --save to record the solve in the history database.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Record the solve in the history database")
	solveCmd.Flags().BoolVar(&solveNotation, "notation", false, "Print standard notation (U' R R) instead of letters")
	solveCmd.Flags().BoolVar(&solveStats, "stats", false, "Print move statistics per goal")
}

func runSolve(cmd *cobra.Command, args []string) error {
	var opts []service.Option
	if solveSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		opts = append(opts, service.WithRecorder(storage.NewSolveRepository(db, version)))
	}

	r, err := run(newService(opts...), "solve", service.Params{service.KeyCube: args[0]})
	if err != nil {
		return err
	}

	rotations := r[service.KeyRotations]
	if solveNotation {
		moves, err := gocube.ParseMoves(rotations)
		if err != nil {
			return err
		}
		rotations = gocube.FormatNotation(moves)
	}

	fmt.Fprintln(cmd.OutOrStdout(), rotations)
	if solveStats {
		return printStats(cmd, args[0])
	}
	return nil
}

// printStats solves code again to get the raw moves and prints how they
// split between goals.
func printStats(cmd *cobra.Command, code string) error {
	start, err := gocube.ParseCube(code)
	if err != nil {
		return err
	}
	solver, err := gocube.NewSolver(start.Clone(), gocube.WithMaxMoves(cfg.MaxMoves))
	if err != nil {
		return err
	}
	optimized, err := solver.Solve()
	if err != nil {
		return err
	}
	raw := solver.RawMoves()

	s, err := analysis.Summarize(start, raw, optimized)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Title("Statistics"))
	fmt.Fprintf(out, "Raw moves:       %d\n", s.RawMoves)
	fmt.Fprintf(out, "Optimized moves: %d (%.0f%%)\n", s.OptimizedMoves, s.Efficiency*100)
	for _, ph := range s.PhaseStats {
		fmt.Fprintf(out, "  %-13s %3d moves (raw %d-%d)\n", ph.DisplayName+":", ph.MoveCount, ph.StartIndex+1, ph.EndIndex)
	}
	fmt.Fprintln(out, render.Moves("Raw", raw))
	if s.Profile.MostUsedFace != "" {
		fmt.Fprintf(out, "Most used face:  %s (%d)\n", s.Profile.MostUsedFace, s.Profile.FaceCounts[s.Profile.MostUsedFace])
	}
	return nil
}
