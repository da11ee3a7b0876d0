// Package gocube models a 3x3x3 Rubik's cube as 27 cubelets, turns its
// faces, converts it to and from a 54 letter color code, and computes a
// move sequence that builds the bottom cross.
//
// # Quick Start
//
//	cube, err := gocube.ParseCube("wryrbobgbgbybrgwbrogyrgyyogborrobogwrwbwywgworyoowywyg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	solver, _ := gocube.NewSolver(cube)
//	moves, err := solver.Solve()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(gocube.FormatMoves(moves)) // uRRULLBBUFF
//
// # Cube Codes
//
// A code lists nine stickers per face in Front, Right, Back, Left, Up,
// Down order, each face read row by row while facing it. Letters are
// b, r, g, o, y and w; every color appears nine times and the six centers
// differ.
//
// # Rotation Letters
//
// Moves are written as face letters, uppercase for a clockwise quarter
// turn and lowercase for counter-clockwise:
//
//	cube.ApplyMoves(gocube.SexyMove)
//	moves, _ := gocube.ParseMoves("FrUu")
//
// # Goals
//
// The solver works toward two goals:
//
//   - GoalUpDaisy: the Down color shows on the four Up edges
//   - GoalDownCross: the Down color forms a cross aligned with the side centers
package gocube
