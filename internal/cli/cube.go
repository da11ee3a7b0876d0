package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver"
	"github.com/SeamusWaldron/gocube_solver/internal/render"
	"github.com/SeamusWaldron/gocube_solver/internal/service"
)

var (
	createColors string
	createShow   bool
	rotateShow   bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Print the code of a solved cube",
	Long: `Print the code of a solved cube. --colors gives one color letter per face
in Front, Right, Back, Left, Up, Down order (default: bogrwy).`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

var rotateCmd = &cobra.Command{
	Use:   "rotate <cube> [dir]",
	Short: "Apply rotations to a cube",
	Long: `Apply the rotation letters in dir, left to right, and print the resulting
cube code. dir defaults to F.

Examples:
  gocube-solver rotate bbbbbbbbbrrrrrrrrrgggggggggoooooooooyyyyyyyyywwwwwwwww
  gocube-solver rotate bbbbbbbbbrrrrrrrrrgggggggggoooooooooyyyyyyyyywwwwwwwww RUru`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRotate,
}

var verifyCmd = &cobra.Command{
	Use:   "verify <cube>",
	Short: "Verify a cube (always reports ok)",
	Long:  `Verify a cube. Physical solvability is not checked; the result is always ok.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

var showCmd = &cobra.Command{
	Use:   "show <cube>",
	Short: "Draw a cube as an unfolded net",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVar(&createColors, "colors", gocube.DefaultColors, "Face colors in code order")
	createCmd.Flags().BoolVar(&createShow, "show", false, "Also draw the cube")

	rootCmd.AddCommand(rotateCmd)
	rotateCmd.Flags().BoolVar(&rotateShow, "show", false, "Also draw the resulting cube")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(showCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	r, err := run(newService(), "create", service.Params{service.KeyColors: createColors})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), r[service.KeyCube])
	if createShow {
		return printNet(cmd, r[service.KeyCube])
	}
	return nil
}

func runRotate(cmd *cobra.Command, args []string) error {
	p := service.Params{service.KeyCube: args[0]}
	if len(args) > 1 {
		p[service.KeyDir] = args[1]
	}

	r, err := run(newService(), "rotate", p)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), r[service.KeyCube])
	if rotateShow {
		return printNet(cmd, r[service.KeyCube])
	}
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	r, err := run(newService(), "verify", service.Params{service.KeyCube: args[0]})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), r.Status())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	return printNet(cmd, args[0])
}

// printNet draws the cube encoded by code along with its goal.
func printNet(cmd *cobra.Command, code string) error {
	c, err := gocube.ParseCube(code)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.Net(c))
	fmt.Fprintf(out, "Goal: %s\n", c.DetectGoal().DisplayName())
	return nil
}
