package gocube

import "errors"

// Sentinel errors for the gocube package.
var (
	// Construction errors
	ErrInvalidCode   = errors.New("gocube: invalid cube code")
	ErrTooManyColors = errors.New("gocube: cubelet has more than three colored faces")

	// Argument errors
	ErrInvalidPosition = errors.New("gocube: invalid face position")
	ErrInvalidTurn     = errors.New("gocube: invalid turn direction")
	ErrInvalidNotation = errors.New("gocube: invalid move notation")
	ErrNilCube         = errors.New("gocube: nil cube")

	// Solver errors
	ErrSolverStalled = errors.New("gocube: solver made no progress")
)
