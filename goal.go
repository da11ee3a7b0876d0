package gocube

// Goal is a named sub-state on the way to a solved cube. Goals are ordered
// from GoalNone to GoalDownCross, allowing comparison with < and >.
type Goal int

const (
	// GoalNone indicates no goal holds.
	GoalNone Goal = iota

	// GoalUpDaisy indicates the four edges around the Up center show the
	// Down center's color on their Up face.
	GoalUpDaisy

	// GoalDownCross indicates the Down center's color forms a cross on the
	// Down face and each side face's bottom edge matches its center.
	GoalDownCross
)

// String returns a short identifier for the goal.
func (g Goal) String() string {
	switch g {
	case GoalNone:
		return "none"
	case GoalUpDaisy:
		return "up_daisy"
	case GoalDownCross:
		return "down_cross"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the goal.
func (g Goal) DisplayName() string {
	switch g {
	case GoalNone:
		return "Scrambled"
	case GoalUpDaisy:
		return "Top Daisy"
	case GoalDownCross:
		return "Bottom Cross"
	default:
		return "Unknown"
	}
}

// sides lists the four side faces in cube code order.
var sides = [4]Position{Front, Right, Back, Left}

// petalSlot returns the Up edge cell next to side.
func petalSlot(side Position) Coord {
	return CenterOf(side).Step(Up)
}

// IsUpDaisy checks whether the four Up edges show the Down center's color
// on their Up face.
func (c *Cube) IsUpDaisy() bool {
	bottom := c.CenterColor(Down)
	for _, side := range sides {
		if c.Color(petalSlot(side), Up) != bottom {
			return false
		}
	}
	return true
}

// IsDownCross checks whether the Down center matches its four neighbors on
// the Down face and every side face shows its center color directly below
// the center.
func (c *Cube) IsDownCross() bool {
	bottom := c.CenterColor(Down)
	for _, side := range sides {
		if c.Color(CenterOf(Down).Step(side), Down) != bottom {
			return false
		}
		if c.Color(CenterOf(side).Step(Down), side) != c.CenterColor(side) {
			return false
		}
	}
	return true
}

// DetectGoal returns the highest goal the cube currently satisfies.
func (c *Cube) DetectGoal() Goal {
	switch {
	case c.IsDownCross():
		return GoalDownCross
	case c.IsUpDaisy():
		return GoalUpDaisy
	default:
		return GoalNone
	}
}
