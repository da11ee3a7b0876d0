package gocube

import (
	"fmt"
	"strings"
)

// Move represents a quarter turn of one face.
type Move struct {
	Face Position // Which face to turn
	Turn Turn     // Direction as seen facing it
}

// Letter returns the rotation letter: uppercase for CW, lowercase for CCW.
func (m Move) Letter() byte {
	l := m.Face.Letter()
	if m.Turn == CCW {
		l += 'a' - 'A'
	}
	return l
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', U, U'
func (m Move) Notation() string {
	if m.Turn == CCW {
		return string(m.Face.Letter()) + "'"
	}
	return string(m.Face.Letter())
}

// String returns the rotation letter.
func (m Move) String() string {
	return string(m.Letter())
}

// Inverse returns the inverse of this move.
// R becomes r, r becomes R.
func (m Move) Inverse() Move {
	inv := m
	inv.Turn = -m.Turn
	return inv
}

// Cancels returns true if other undoes this move.
func (m Move) Cancels(other Move) bool {
	return m.Face == other.Face && m.Turn == -other.Turn
}

// ParseMove parses a single rotation letter.
func ParseMove(b byte) (Move, error) {
	face, ok := PositionFromLetter(b)
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, b)
	}
	turn := CW
	if b >= 'a' && b <= 'z' {
		turn = CCW
	}
	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a string of rotation letters such as "FrUu". Any
// other byte, whitespace included, rejects the whole string.
func ParseMoves(s string) ([]Move, error) {
	moves := make([]Move, 0, len(s))
	for i := 0; i < len(s); i++ {
		m, err := ParseMove(s[i])
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves concatenates the rotation letters of moves.
func FormatMoves(moves []Move) string {
	b := make([]byte, len(moves))
	for i, m := range moves {
		b[i] = m.Letter()
	}
	return string(b)
}

// FormatNotation formats moves as a space-separated standard notation
// string, e.g. "U' R R U".
func FormatNotation(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
