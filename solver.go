package gocube

import "fmt"

// flanks holds the left and right neighbors of each side face as seen
// facing it with Up on top.
var flanks = [4][2]Position{
	Front: {Left, Right},
	Right: {Front, Back},
	Back:  {Right, Left},
	Left:  {Back, Front},
}

// Solver drives a cube to the bottom cross: it first gathers the Down
// center's color as a daisy around the Up center, then drops each petal
// onto the Down face under its matching side center.
//
// The solver turns the cube it was given in place.
type Solver struct {
	cube   *Cube
	cfg    *config
	bottom Color
	moves  []Move
}

// NewSolver creates a solver for c.
// Returns ErrNilCube if c is nil.
func NewSolver(c *Cube, opts ...Option) (*Solver, error) {
	if c == nil {
		return nil, ErrNilCube
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{cube: c, cfg: cfg}, nil
}

// Solve turns the cube to the bottom cross and returns the optimized
// moves it took. A cube already showing the cross yields an empty list.
//
// ErrSolverStalled is returned when the cube cannot reach a goal, which
// only happens for codes that no physical cube can show.
func (s *Solver) Solve() ([]Move, error) {
	s.moves = s.moves[:0]
	if s.cube.IsDownCross() {
		return []Move{}, nil
	}
	s.bottom = s.cube.CenterColor(Down)
	logger := s.cfg.logger

	if err := s.buildDaisy(); err != nil {
		return nil, err
	}
	if !s.cube.IsUpDaisy() {
		return nil, fmt.Errorf("%w: daisy incomplete after %d moves", ErrSolverStalled, len(s.moves))
	}
	logger.Debug("daisy complete", "bottom", s.bottom, "moves", len(s.moves))

	if err := s.seatPetals(); err != nil {
		return nil, err
	}
	if !s.cube.IsDownCross() {
		return nil, fmt.Errorf("%w: cross incomplete after %d moves", ErrSolverStalled, len(s.moves))
	}

	optimized := Optimize(s.moves)
	logger.Debug("cross complete", "raw", len(s.moves), "optimized", len(optimized), "rotations", FormatMoves(optimized))
	return optimized, nil
}

// RawMoves returns the moves recorded by the last Solve before optimization.
func (s *Solver) RawMoves() []Move {
	out := make([]Move, len(s.moves))
	copy(out, s.moves)
	return out
}

func (s *Solver) turn(face Position, t Turn) error {
	if len(s.moves) >= s.cfg.maxMoves {
		return fmt.Errorf("%w: exceeded %d moves", ErrSolverStalled, s.cfg.maxMoves)
	}
	if err := s.cube.RotateFace(face, t); err != nil {
		return err
	}
	s.moves = append(s.moves, Move{Face: face, Turn: t})
	return nil
}

// buildDaisy visits the side faces in order until every Up edge is a petal.
func (s *Solver) buildDaisy() error {
	for !s.cube.IsUpDaisy() {
		before := len(s.moves)
		for _, side := range sides {
			if s.cube.IsUpDaisy() {
				break
			}
			if err := s.placePetal(side); err != nil {
				return err
			}
		}
		if len(s.moves) == before {
			return fmt.Errorf("%w: no %s edge can reach the daisy", ErrSolverStalled, s.bottom)
		}
	}
	return nil
}

// placePetal brings one bottom-colored sticker from side's layer up into
// the Up edge next to side. Only side and Up are turned, and Up only while
// that slot already holds a petal, so earlier petals stay on the Up face.
func (s *Solver) placePetal(side Position) error {
	slot := petalSlot(side)

	if s.flankShows(side) {
		if err := s.clearSlot(side); err != nil {
			return err
		}
		for s.cube.Color(slot, Up) != s.bottom && s.flankShows(side) {
			if err := s.turn(side, CW); err != nil {
				return err
			}
		}
		s.cfg.logger.Debug("petal placed", "side", side, "moves", len(s.moves))
		return nil
	}

	// The sticker faces side itself on the top or bottom edge, where
	// turning side never lifts it. One turn parks it in the middle layer
	// on a neighbor's flank.
	if s.cube.Color(slot, side) == s.bottom || s.cube.Color(CenterOf(side).Step(Down), side) == s.bottom {
		if err := s.clearSlot(side); err != nil {
			return err
		}
		s.cfg.logger.Debug("petal parked", "side", side)
		return s.turn(side, CW)
	}
	return nil
}

// flankShows reports whether a bottom-colored sticker sits where clockwise
// turns of side carry it onto the Up face: on the outer face of the left
// or right middle edge, or on the Down face of the bottom edge.
func (s *Solver) flankShows(side Position) bool {
	center := CenterOf(side)
	left, right := flanks[side][0], flanks[side][1]
	return s.cube.Color(center.Step(left), left) == s.bottom ||
		s.cube.Color(center.Step(Down), Down) == s.bottom ||
		s.cube.Color(center.Step(right), right) == s.bottom
}

// clearSlot turns Up counter-clockwise until the slot next to side holds
// no petal.
func (s *Solver) clearSlot(side Position) error {
	for s.cube.Color(petalSlot(side), Up) == s.bottom {
		if err := s.turn(Up, CCW); err != nil {
			return err
		}
	}
	return nil
}

// seatPetals turns the daisy into the cross. A pointer starts at the Front
// slot and follows each Up turn; when the petal under it shows its side's
// center color, a half turn of that side drops it onto the Down face and
// the pointer moves on to the next slot.
func (s *Solver) seatPetals() error {
	upCW := SpinFor(Up, CW)
	slot := petalSlot(Front)
	for seated := 0; seated < 4; {
		side := sideOf(slot)
		if s.cube.Color(slot, side) == s.cube.CenterColor(side) {
			if err := s.turn(side, CW); err != nil {
				return err
			}
			if err := s.turn(side, CW); err != nil {
				return err
			}
			seated++
			s.cfg.logger.Debug("petal seated", "side", side, "seated", seated)
		} else if err := s.turn(Up, CW); err != nil {
			return err
		}
		slot = RotateCoord(slot, upCW)
	}
	return nil
}

// sideOf returns the side face an Up edge cell borders.
func sideOf(slot Coord) Position {
	for _, p := range slot.Facing() {
		if p != Up {
			return p
		}
	}
	return Front
}
