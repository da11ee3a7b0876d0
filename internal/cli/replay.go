package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/render"
)

var replayQuiet bool

var replayCmd = &cobra.Command{
	Use:   "replay <cube> <rotations>",
	Short: "Step through rotations and report goals reached",
	Long: `Apply rotations to a cube one at a time, printing each move and every new
goal reached (Top Daisy, Bottom Cross), then draw the final cube.

Paste the output of 'solve' to watch the solver's path.`,
	Args: cobra.ExactArgs(2),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVarP(&replayQuiet, "quiet", "q", false, "Only print goals and the final cube")
}

func runReplay(cmd *cobra.Command, args []string) error {
	c, err := gocube.ParseCube(args[0])
	if err != nil {
		return err
	}
	moves, err := gocube.ParseMoves(args[1])
	if err != nil {
		return err
	}

	tracker, err := gocube.NewTracker(c)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Start: %s\n", c.DetectGoal().DisplayName())
	tracker.SetGoalCallback(func(g gocube.Goal, moveIndex int) {
		fmt.Fprintf(out, "  -> %s reached after %d moves\n", g.DisplayName(), moveIndex)
	})

	for i, m := range moves {
		if !replayQuiet {
			fmt.Fprintf(out, "%3d  %s\n", i+1, m.Notation())
		}
		if err := tracker.ApplyMove(m); err != nil {
			return err
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Moves("Moves", moves))
	fmt.Fprintln(out, render.Net(tracker.Cube()))
	fmt.Fprintf(out, "Goal: %s\n", tracker.CurrentGoal().DisplayName())

	code, err := tracker.Cube().Code()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, code.String())
	return nil
}
