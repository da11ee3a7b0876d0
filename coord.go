package gocube

import "fmt"

// Coord addresses one of the 27 grid cells. X runs left to right, Y top to
// bottom and Z front to back, each in 0..2.
type Coord struct {
	X, Y, Z int
}

// Core is the geometric center of the cube. It never carries a color.
var Core = Coord{1, 1, 1}

var positionSteps = [6]Coord{
	Front: {0, 0, -1},
	Right: {1, 0, 0},
	Back:  {0, 0, 1},
	Left:  {-1, 0, 0},
	Up:    {0, -1, 0},
	Down:  {0, 1, 0},
}

// Valid reports whether every axis is in range.
func (c Coord) Valid() bool {
	return c.X >= 0 && c.X <= 2 && c.Y >= 0 && c.Y <= 2 && c.Z >= 0 && c.Z <= 2
}

// index packs the coordinate into 0..26.
func (c Coord) index() int {
	return c.X*9 + c.Y*3 + c.Z
}

// Step returns the neighboring cell in the direction of p.
func (c Coord) Step(p Position) Coord {
	d := positionSteps[p]
	return Coord{c.X + d.X, c.Y + d.Y, c.Z + d.Z}
}

// Facing returns the outward directions of the cell: none for the core, one
// for face centers, two for edges and three for corners.
func (c Coord) Facing() []Position {
	var ps []Position
	switch c.X {
	case 0:
		ps = append(ps, Left)
	case 2:
		ps = append(ps, Right)
	}
	switch c.Y {
	case 0:
		ps = append(ps, Up)
	case 2:
		ps = append(ps, Down)
	}
	switch c.Z {
	case 0:
		ps = append(ps, Front)
	case 2:
		ps = append(ps, Back)
	}
	return ps
}

// OnLayer reports whether the cell lies in the outer layer of face p.
func (c Coord) OnLayer(p Position) bool {
	for _, f := range c.Facing() {
		if f == p {
			return true
		}
	}
	return false
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// RotateCoord moves c around the cube center by spin s. It uses the same
// position table as Cubelet.Rotate, so a cell and its stickers stay
// consistent.
func RotateCoord(c Coord, s Spin) Coord {
	out := Core
	for _, p := range c.Facing() {
		out = out.Step(RotatePosition(p, s))
	}
	return out
}

// CenterOf returns the center cell of face p.
func CenterOf(p Position) Coord {
	return Core.Step(p)
}
