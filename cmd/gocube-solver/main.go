// gocube-solver - Rubik's Cube model and bottom cross solver.
package main

import (
	"github.com/SeamusWaldron/gocube_solver/internal/cli"
)

func main() {
	cli.Execute()
}
