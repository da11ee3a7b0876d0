package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [solve-id]",
	Short: "List recorded solves",
	Long: `Display the most recent solves recorded with 'solve --save' or 'serve --save'.
Give a solve ID to show that solve's moves.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db, version)
	if len(args) == 1 {
		return showSolve(cmd, repo, args[0])
	}

	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(solves) == 0 {
		fmt.Fprintln(out, "No solves recorded")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-19s  %5s  %s\n", "ID", "Date", "Moves", "Rotations")
	for _, s := range solves {
		fmt.Fprintf(out, "%-36s  %-19s  %5d  %s\n",
			s.SolveID,
			s.CreatedAt.Local().Format(time.DateTime),
			len(s.Rotations),
			s.Rotations,
		)
	}
	return nil
}

func showSolve(cmd *cobra.Command, repo *storage.SolveRepository, id string) error {
	s, err := repo.Get(id)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("solve not found: %s", id)
	}

	moves, err := repo.Moves(id)
	if err != nil {
		return err
	}
	notation := make([]string, len(moves))
	for i, m := range moves {
		notation[i] = m.Notation
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Solve:    %s\n", s.SolveID)
	fmt.Fprintf(out, "Date:     %s\n", s.CreatedAt.Local().Format(time.RFC3339))
	if s.AppVersion != nil {
		fmt.Fprintf(out, "Version:  %s\n", *s.AppVersion)
	}
	fmt.Fprintf(out, "Cube:     %s\n", s.CubeCode)
	fmt.Fprintf(out, "Result:   %s\n", s.SolvedCode)
	fmt.Fprintf(out, "Moves:    %d\n", len(moves))
	fmt.Fprintf(out, "Sequence: %s\n", strings.Join(notation, " "))
	return nil
}
