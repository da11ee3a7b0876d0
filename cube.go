package gocube

import (
	"fmt"
	"strings"
)

// DefaultColors is the face color order used when none is given:
// blue front, orange right, green back, red left, white up, yellow down.
const DefaultColors = "bogrwy"

// Cube is a 3x3x3 cube made of 27 cubelets indexed by Coord.
//
// A Cube is owned by a single caller; rotations mutate it in place and are
// not safe for concurrent use.
type Cube struct {
	cubelets [27]Cubelet
}

// NewCube builds a cube from a validated code. Every outward sticker is
// assigned to its cubelet; the core stays uncolored.
func NewCube(code Code) *Cube {
	c := &Cube{}
	for _, p := range Positions {
		for i, at := range faceletCoords[p] {
			c.cubelets[at.index()].faces[p] = code.Facelet(p, i)
		}
	}
	return c
}

// NewSolvedCube creates a solved cube in the default color scheme.
func NewSolvedCube() *Cube {
	return NewCube(MustParseCode(SolidCode(DefaultColors)))
}

// ParseCube validates s and builds the cube it encodes.
func ParseCube(s string) (*Cube, error) {
	code, err := ParseCode(s)
	if err != nil {
		return nil, err
	}
	return NewCube(code), nil
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Cubelet returns a copy of the cubelet at the given cell.
func (c *Cube) Cubelet(at Coord) Cubelet {
	return c.cubelets[at.index()]
}

// Color returns the color the cubelet at the given cell shows toward p.
func (c *Cube) Color(at Coord, p Position) Color {
	return c.cubelets[at.index()].faces[p]
}

// Facelet returns sticker i (0..8) of face p in cube code order.
func (c *Cube) Facelet(p Position, i int) Color {
	return c.Color(faceletCoords[p][i], p)
}

// CenterColor returns the color of the center sticker of face p.
func (c *Cube) CenterColor(p Position) Color {
	return c.Color(CenterOf(p), p)
}

// RotateFace turns face a quarter turn in direction t as seen facing it.
// The nine cubelets of the layer are moved around the face center and each
// is spun so its stickers follow the turn. Invalid arguments are rejected
// before anything is moved.
func (c *Cube) RotateFace(face Position, t Turn) error {
	if !face.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, face)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidTurn, t)
	}

	spin := SpinFor(face, t)
	next := c.cubelets
	for _, at := range faceletCoords[face] {
		cubelet := c.cubelets[at.index()]
		cubelet.Rotate(spin)
		next[RotateCoord(at, spin).index()] = cubelet
	}
	c.cubelets = next
	return nil
}

// ApplyMove applies a Move to the cube.
func (c *Cube) ApplyMove(m Move) error {
	return c.RotateFace(m.Face, m.Turn)
}

// ApplyMoves applies a sequence of moves. All moves are checked before
// the first one is applied.
func (c *Cube) ApplyMoves(moves []Move) error {
	for _, m := range moves {
		if !m.Face.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidPosition, m.Face)
		}
		if !m.Turn.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidTurn, m.Turn)
		}
	}
	for _, m := range moves {
		if err := c.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// Code reads the 54 outward stickers back into a validated code.
func (c *Cube) Code() (Code, error) {
	return ParseCode(c.codeString())
}

func (c *Cube) codeString() string {
	b := make([]byte, 0, CodeLength)
	for _, p := range Positions {
		for i := 0; i < 9; i++ {
			b = append(b, c.Facelet(p, i).Letter())
		}
	}
	return string(b)
}

// IsSolved returns true if every face shows a single color.
func (c *Cube) IsSolved() bool {
	for _, p := range Positions {
		center := c.CenterColor(p)
		for i := 0; i < 9; i++ {
			if c.Facelet(p, i) != center {
				return false
			}
		}
	}
	return true
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	var b strings.Builder

	row := func(p Position, r int) {
		for col := 0; col < 3; col++ {
			b.WriteByte(c.Facelet(p, r*3+col).Letter())
			b.WriteByte(' ')
		}
	}

	// U face (indented)
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(Up, r)
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for r := 0; r < 3; r++ {
		for _, p := range []Position{Left, Front, Right, Back} {
			row(p, r)
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(Down, r)
		b.WriteString("\n")
	}

	return b.String()
}
