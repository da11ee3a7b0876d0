package gocube

// Position is one of the six exterior directions of the cube, fixed to the
// observer rather than to any cubelet. The declaration order is the face
// order of a cube code.
type Position int

const (
	Front Position = iota
	Right
	Back
	Left
	Up
	Down
)

// Positions lists every face position in cube code order.
var Positions = [6]Position{Front, Right, Back, Left, Up, Down}

var positionLetters = [...]byte{Front: 'F', Right: 'R', Back: 'B', Left: 'L', Up: 'U', Down: 'D'}

var positionNames = [...]string{
	Front: "front",
	Right: "right",
	Back:  "back",
	Left:  "left",
	Up:    "up",
	Down:  "down",
}

// Valid reports whether p is one of the six positions.
func (p Position) Valid() bool {
	return p >= Front && p <= Down
}

// Letter returns the uppercase face letter (F, R, B, L, U, D).
func (p Position) Letter() byte {
	if !p.Valid() {
		return '?'
	}
	return positionLetters[p]
}

func (p Position) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return positionNames[p]
}

// PositionFromLetter maps a face letter of either case to its Position.
func PositionFromLetter(b byte) (Position, bool) {
	switch b {
	case 'F', 'f':
		return Front, true
	case 'R', 'r':
		return Right, true
	case 'B', 'b':
		return Back, true
	case 'L', 'l':
		return Left, true
	case 'U', 'u':
		return Up, true
	case 'D', 'd':
		return Down, true
	default:
		return 0, false
	}
}

// Turn is the direction of a face turn as seen from outside, facing that face.
type Turn int

const (
	CW  Turn = 1  // Clockwise quarter turn
	CCW Turn = -1 // Counter-clockwise quarter turn
)

// Valid reports whether t is CW or CCW.
func (t Turn) Valid() bool {
	return t == CW || t == CCW
}

func (t Turn) String() string {
	switch t {
	case CW:
		return "cw"
	case CCW:
		return "ccw"
	default:
		return "unknown"
	}
}

// Spin is a 90 degree spatial rotation of a whole cubelet (or of the grid
// around the cube center). Each value is a clockwise quarter turn as seen
// from the named position; a clockwise spin about one face is the
// counter-clockwise spin about its opposite.
type Spin int

const (
	SpinFront Spin = iota
	SpinRight
	SpinBack
	SpinLeft
	SpinUp
	SpinDown
)

// Valid reports whether s is one of the six spins.
func (s Spin) Valid() bool {
	return s >= SpinFront && s <= SpinDown
}

// spinCycles holds, for each spin, the 4-cycle it applies to the positions
// perpendicular to its axis. The two positions on the axis are fixed.
var spinCycles = [6][4]Position{
	SpinFront: {Up, Right, Down, Left},
	SpinRight: {Front, Up, Back, Down},
	SpinBack:  {Up, Left, Down, Right},
	SpinLeft:  {Up, Front, Down, Back},
	SpinUp:    {Front, Left, Back, Right},
	SpinDown:  {Front, Right, Back, Left},
}

var oppositePositions = [6]Position{
	Front: Back,
	Right: Left,
	Back:  Front,
	Left:  Right,
	Up:    Down,
	Down:  Up,
}

// spinTable[s][p] is where position p points after spin s.
var spinTable = buildSpinTable()

func buildSpinTable() [6][6]Position {
	var t [6][6]Position
	for s := range spinCycles {
		for _, p := range Positions {
			t[s][p] = p
		}
		cycle := spinCycles[s]
		for i, p := range cycle {
			t[s][p] = cycle[(i+1)%4]
		}
	}
	return t
}

// Opposite returns the position on the other side of the cube.
func Opposite(p Position) Position {
	return oppositePositions[p]
}

// RotatePosition returns the position that p points to after spin s.
func RotatePosition(p Position, s Spin) Position {
	return spinTable[s][p]
}

// SpinFor returns the spin produced by turning face in direction t.
func SpinFor(face Position, t Turn) Spin {
	if t == CCW {
		face = Opposite(face)
	}
	return Spin(face)
}
