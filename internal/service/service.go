// Package service implements the cube operations exposed to the CLI and the
// HTTP front end. Every operation takes a string keyed parameter map and
// returns a string keyed result carrying a status field. Operations never
// fail with a Go error: bad input is reported through the status.
package service

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/gocube_solver"
)

// Parameter and result keys.
const (
	KeyCube      = "cube"
	KeyColors    = "colors"
	KeyDir       = "dir"
	KeyRotations = "rotations"
	KeyStatus    = "status"
)

// Status values.
const (
	StatusOK               = "ok"
	StatusMissingCube      = "error: missing cube"
	StatusInvalidCube      = "error: invalid cube"
	StatusInvalidRotation  = "error: invalid rotation"
	StatusUnknownOperation = "error: unknown operation"
)

// DefaultDir is the rotation applied when rotate is given no dir.
const DefaultDir = "F"

// Params holds the inputs of an operation.
type Params map[string]string

// Result holds the outputs of an operation. It always has a status.
type Result map[string]string

// Status returns the status field of the result.
func (r Result) Status() string {
	return r[KeyStatus]
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r[KeyStatus] == StatusOK
}

// Recorder stores successful solves.
type Recorder interface {
	Record(cubeCode, solvedCode, rotations string) (string, error)
}

// Service runs cube operations.
type Service struct {
	recorder Recorder
	logger   *log.Logger
	maxMoves int
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder records every successful solve.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithLogger sets the service logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxMoves sets the solver move ceiling.
func WithMaxMoves(n int) Option {
	return func(s *Service) { s.maxMoves = n }
}

// New creates a service.
func New(opts ...Option) *Service {
	s := &Service{
		logger:   log.New(io.Discard),
		maxMoves: gocube.DefaultMaxMoves,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Operations lists the operation names Dispatch accepts.
func (s *Service) Operations() []string {
	return []string{"create", "rotate", "solve", "verify"}
}

// Dispatch runs the named operation. The second return value is false if
// no operation has that name.
func (s *Service) Dispatch(op string, p Params) (Result, bool) {
	var fn func(Params) Result
	switch op {
	case "create":
		fn = s.Create
	case "rotate":
		fn = s.Rotate
	case "solve":
		fn = s.Solve
	case "verify":
		fn = s.Verify
	default:
		return Result{KeyStatus: StatusUnknownOperation}, false
	}
	return fn(p), true
}

// Create returns the code of a solved cube. The optional colors parameter
// lists one letter per face in cube code order and defaults to "bogrwy"
// when absent. A present value is used as given, even when empty.
func (s *Service) Create(p Params) Result {
	colors, ok := p[KeyColors]
	if !ok {
		colors = gocube.DefaultColors
	}
	return Result{
		KeyCube:   gocube.SolidCode(colors),
		KeyStatus: StatusOK,
	}
}

// Rotate applies the rotation letters in dir, left to right, to cube.
// Both inputs are checked before any turn is made.
func (s *Service) Rotate(p Params) Result {
	c, status := s.cube(p)
	if c == nil {
		return Result{KeyStatus: status}
	}

	dir, ok := p[KeyDir]
	if !ok {
		dir = DefaultDir
	}
	moves, err := gocube.ParseMoves(dir)
	if err != nil {
		s.logger.Debug("rejected rotation", "dir", dir, "err", err)
		return Result{KeyStatus: StatusInvalidRotation}
	}

	if err := c.ApplyMoves(moves); err != nil {
		return Result{KeyStatus: StatusInvalidRotation}
	}

	code, err := c.Code()
	if err != nil {
		s.logger.Error("rotated cube produced an invalid code", "err", err)
		return Result{KeyStatus: StatusInvalidCube}
	}

	return Result{
		KeyCube:   code.String(),
		KeyStatus: StatusOK,
	}
}

// Solve returns the rotations that bring cube to the bottom cross.
func (s *Service) Solve(p Params) Result {
	c, status := s.cube(p)
	if c == nil {
		return Result{KeyStatus: status}
	}
	start := p[KeyCube]

	solver, err := gocube.NewSolver(c,
		gocube.WithMaxMoves(s.maxMoves),
		gocube.WithLogger(s.logger),
	)
	if err != nil {
		return Result{KeyStatus: StatusInvalidCube}
	}

	moves, err := solver.Solve()
	if err != nil {
		s.logger.Warn("solver failed", "cube", start, "err", err)
		return Result{KeyStatus: StatusInvalidCube}
	}
	rotations := gocube.FormatMoves(moves)

	if s.recorder != nil {
		var solved string
		if code, err := c.Code(); err == nil {
			solved = code.String()
		}
		id, err := s.recorder.Record(start, solved, rotations)
		if err != nil {
			s.logger.Error("failed to record solve", "err", err)
		} else {
			s.logger.Debug("recorded solve", "id", id)
		}
	}

	return Result{
		KeyRotations: rotations,
		KeyStatus:    StatusOK,
	}
}

// Verify always reports success. Physical solvability is not checked.
func (s *Service) Verify(p Params) Result {
	return Result{KeyStatus: StatusOK}
}

// cube builds the cube named by the cube parameter, or returns the status
// explaining why it could not.
func (s *Service) cube(p Params) (*gocube.Cube, string) {
	code, ok := p[KeyCube]
	if !ok || code == "" {
		return nil, StatusMissingCube
	}
	c, err := gocube.ParseCube(code)
	if err != nil {
		s.logger.Debug("rejected cube", "cube", code, "err", err)
		return nil, StatusInvalidCube
	}
	return c, StatusOK
}
