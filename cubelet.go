package gocube

import "fmt"

// MaxColoredFaces is the number of stickers a corner cubelet carries.
const MaxColoredFaces = 3

// Cubelet is one of the 27 unit cubes. It maps every position to a color;
// hidden faces hold Uncolored.
type Cubelet struct {
	faces [6]Color
}

// NewCubelet builds a cubelet from the given stickers.
// Returns ErrTooManyColors if more than three faces are colored.
func NewCubelet(stickers map[Position]Color) (Cubelet, error) {
	var c Cubelet
	for p, color := range stickers {
		if !p.Valid() {
			return Cubelet{}, fmt.Errorf("%w: %d", ErrInvalidPosition, p)
		}
		c.faces[p] = color
	}
	if n := c.ColoredFaces(); n > MaxColoredFaces {
		return Cubelet{}, fmt.Errorf("%w: %d colored faces", ErrTooManyColors, n)
	}
	return c, nil
}

// SetFaceColor assigns one face. The cubelet is left unchanged if the
// assignment would color a fourth face.
func (c *Cubelet) SetFaceColor(p Position, color Color) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPosition, p)
	}
	if color != Uncolored && c.faces[p] == Uncolored && c.ColoredFaces() >= MaxColoredFaces {
		return ErrTooManyColors
	}
	c.faces[p] = color
	return nil
}

// Color returns the color shown toward p.
func (c Cubelet) Color(p Position) Color {
	return c.faces[p]
}

// ColoredFaces counts faces that are not Uncolored.
func (c Cubelet) ColoredFaces() int {
	n := 0
	for _, color := range c.faces {
		if color != Uncolored {
			n++
		}
	}
	return n
}

// Has reports whether any face shows color.
func (c Cubelet) Has(color Color) bool {
	for _, f := range c.faces {
		if f == color {
			return true
		}
	}
	return false
}

// Rotate spins the cubelet in place: the color that pointed toward p now
// points toward RotatePosition(p, s). Only the four faces around the spin
// axis move.
func (c *Cubelet) Rotate(s Spin) {
	var next [6]Color
	for _, p := range Positions {
		next[RotatePosition(p, s)] = c.faces[p]
	}
	c.faces = next
}

func (c Cubelet) String() string {
	b := make([]byte, 0, 6)
	for _, p := range Positions {
		b = append(b, c.faces[p].Letter())
	}
	return string(b)
}
