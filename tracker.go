package gocube

// Tracker wraps a Cube and reports goal transitions as moves are applied.
type Tracker struct {
	cube         *Cube
	highestGoal  Goal // Monotonic - never goes backwards
	goalCallback func(goal Goal, moveIndex int)
	applied      int
}

// NewTracker creates a tracker for c. Goals c already satisfies count as
// reached.
func NewTracker(c *Cube) (*Tracker, error) {
	if c == nil {
		return nil, ErrNilCube
	}
	return &Tracker{
		cube:        c,
		highestGoal: c.DetectGoal(),
	}, nil
}

// SetGoalCallback sets a callback that fires when a higher goal is reached.
// moveIndex is the 1-based number of the move that reached it.
func (t *Tracker) SetGoalCallback(cb func(goal Goal, moveIndex int)) {
	t.goalCallback = cb
}

// ApplyMove applies a move and checks for goal transitions.
func (t *Tracker) ApplyMove(m Move) error {
	if err := t.cube.ApplyMove(m); err != nil {
		return err
	}
	t.applied++
	t.checkGoalTransition()
	return nil
}

// ApplyMoves applies multiple moves, stopping at the first invalid one.
func (t *Tracker) ApplyMoves(moves []Move) error {
	for _, m := range moves {
		if err := t.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// checkGoalTransition checks if we've reached a new goal.
func (t *Tracker) checkGoalTransition() {
	current := t.cube.DetectGoal()

	// Only fire when reaching a new high; goals may be broken again later.
	if current > t.highestGoal {
		t.highestGoal = current
		if t.goalCallback != nil {
			t.goalCallback(current, t.applied)
		}
	}
}

// CurrentGoal returns the goal the cube satisfies right now.
func (t *Tracker) CurrentGoal() Goal {
	return t.cube.DetectGoal()
}

// HighestGoal returns the highest goal reached.
func (t *Tracker) HighestGoal() Goal {
	return t.highestGoal
}

// Applied returns the number of moves applied so far.
func (t *Tracker) Applied() int {
	return t.applied
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
