package gocube

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultMaxMoves bounds the raw moves a solver may record before giving
// up. Real cubes need far fewer.
const DefaultMaxMoves = 1000

// Option configures Solver behavior.
type Option func(*config)

type config struct {
	maxMoves int
	logger   *log.Logger
}

func defaultConfig() *config {
	return &config{
		maxMoves: DefaultMaxMoves,
		logger:   log.New(io.Discard),
	}
}

// WithMaxMoves sets the move ceiling. A solver that records more raw
// moves than this fails with ErrSolverStalled. Values below 1 are ignored.
func WithMaxMoves(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxMoves = n
		}
	}
}

// WithLogger sets the logger the solver reports progress to at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
