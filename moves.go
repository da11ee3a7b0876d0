package gocube

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.ApplyMoves([]gocube.Move{gocube.R, gocube.U, gocube.RPrime, gocube.UPrime})
var (
	F      = Move{Face: Front, Turn: CW}  // Front clockwise
	FPrime = Move{Face: Front, Turn: CCW} // Front counter-clockwise

	R      = Move{Face: Right, Turn: CW}  // Right clockwise
	RPrime = Move{Face: Right, Turn: CCW} // Right counter-clockwise

	B      = Move{Face: Back, Turn: CW}  // Back clockwise
	BPrime = Move{Face: Back, Turn: CCW} // Back counter-clockwise

	L      = Move{Face: Left, Turn: CW}  // Left clockwise
	LPrime = Move{Face: Left, Turn: CCW} // Left counter-clockwise

	U      = Move{Face: Up, Turn: CW}  // Up clockwise
	UPrime = Move{Face: Up, Turn: CCW} // Up counter-clockwise

	D      = Move{Face: Down, Turn: CW}  // Down clockwise
	DPrime = Move{Face: Down, Turn: CCW} // Down counter-clockwise
)

// SexyMove is R U R' U'. Six repetitions return the cube to its start.
var SexyMove = []Move{R, U, RPrime, UPrime}

// Optimize shortens a recorded move list in a single left to right pass:
// a move followed by its inverse cancels (and the move exposed before it is
// checked again), and three identical moves in a row collapse into one
// move in the opposite direction.
func Optimize(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		n := len(out)
		switch {
		case n > 0 && out[n-1].Cancels(m):
			out = out[:n-1]
		case n > 1 && out[n-1] == m && out[n-2] == m:
			out = append(out[:n-2], m.Inverse())
		default:
			out = append(out, m)
		}
	}
	return out
}
