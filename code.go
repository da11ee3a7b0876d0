package gocube

import (
	"fmt"
	"strings"
)

// CodeLength is the number of stickers on a cube: 6 faces of 9.
const CodeLength = 54

// Rule identifies which cube code invariant was violated.
type Rule int

const (
	RuleLength Rule = iota + 1
	RuleAlphabet
	RuleMissingColor
	RuleUnevenColors
	RuleDuplicateCenters
)

func (r Rule) String() string {
	switch r {
	case RuleLength:
		return "length"
	case RuleAlphabet:
		return "alphabet"
	case RuleMissingColor:
		return "missing color"
	case RuleUnevenColors:
		return "uneven colors"
	case RuleDuplicateCenters:
		return "duplicate centers"
	default:
		return "unknown"
	}
}

// CodeError reports the first invariant a cube code violates.
type CodeError struct {
	Rule   Rule
	Detail string
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("gocube: invalid cube code (%s): %s", e.Rule, e.Detail)
}

// Unwrap lets errors.Is match ErrInvalidCode.
func (e *CodeError) Unwrap() error {
	return ErrInvalidCode
}

// Code is a validated 54 character cube code: nine stickers per face in
// Front, Right, Back, Left, Up, Down order, each face read row by row while
// facing it. The zero value is not a valid code; use ParseCode.
type Code struct {
	s string
}

// ParseCode validates s and returns it as a Code.
// The returned error is a *CodeError.
func ParseCode(s string) (Code, error) {
	if err := ValidateCode(s); err != nil {
		return Code{}, err
	}
	return Code{s: s}, nil
}

// MustParseCode is like ParseCode but panics on an invalid code.
// Intended for constants and tests.
func MustParseCode(s string) Code {
	c, err := ParseCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsValidCode reports whether s is a valid cube code.
func IsValidCode(s string) bool {
	return ValidateCode(s) == nil
}

// ValidateCode checks every cube code invariant in a single pass and
// returns the first one violated, or nil.
func ValidateCode(s string) error {
	if len(s) != CodeLength {
		return &CodeError{Rule: RuleLength, Detail: fmt.Sprintf("got %d characters, want %d", len(s), CodeLength)}
	}

	var counts [len(colorLetters)]int
	for i := 0; i < len(s); i++ {
		color, ok := ColorFromLetter(s[i])
		if !ok {
			return &CodeError{Rule: RuleAlphabet, Detail: fmt.Sprintf("character %q at index %d", s[i], i)}
		}
		counts[color]++
	}

	for _, color := range Colors {
		if counts[color] == 0 {
			return &CodeError{Rule: RuleMissingColor, Detail: color.String()}
		}
	}

	for _, color := range Colors {
		if counts[color] != 9 {
			return &CodeError{Rule: RuleUnevenColors, Detail: fmt.Sprintf("%s appears %d times", color, counts[color])}
		}
	}

	var seen [len(colorLetters)]bool
	for _, p := range Positions {
		color, _ := ColorFromLetter(s[int(p)*9+4])
		if seen[color] {
			return &CodeError{Rule: RuleDuplicateCenters, Detail: fmt.Sprintf("%s center repeats %s", p, color)}
		}
		seen[color] = true
	}

	return nil
}

// String returns the 54 letter form.
func (c Code) String() string {
	return c.s
}

// Facelet returns the sticker at index i (0..8) of face p.
func (c Code) Facelet(p Position, i int) Color {
	color, _ := ColorFromLetter(c.s[int(p)*9+i])
	return color
}

// SolidCode builds the code of a solved cube whose faces, in cube code face
// order, carry the given letters. It does not validate.
func SolidCode(letters string) string {
	var b strings.Builder
	b.Grow(len(letters) * 9)
	for i := 0; i < len(letters); i++ {
		b.WriteString(strings.Repeat(letters[i:i+1], 9))
	}
	return b.String()
}

// faceletCoords maps each sticker of a cube code to the cell it sits on.
// Rows run top to bottom and columns left to right as seen facing the face;
// index 4 is the face center.
var faceletCoords = [6][9]Coord{
	Front: {
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
		{0, 1, 0}, {1, 1, 0}, {2, 1, 0},
		{0, 2, 0}, {1, 2, 0}, {2, 2, 0},
	},
	Right: {
		{2, 0, 0}, {2, 0, 1}, {2, 0, 2},
		{2, 1, 0}, {2, 1, 1}, {2, 1, 2},
		{2, 2, 0}, {2, 2, 1}, {2, 2, 2},
	},
	Back: {
		{2, 0, 2}, {1, 0, 2}, {0, 0, 2},
		{2, 1, 2}, {1, 1, 2}, {0, 1, 2},
		{2, 2, 2}, {1, 2, 2}, {0, 2, 2},
	},
	Left: {
		{0, 0, 2}, {0, 0, 1}, {0, 0, 0},
		{0, 1, 2}, {0, 1, 1}, {0, 1, 0},
		{0, 2, 2}, {0, 2, 1}, {0, 2, 0},
	},
	Up: {
		{0, 0, 2}, {1, 0, 2}, {2, 0, 2},
		{0, 0, 1}, {1, 0, 1}, {2, 0, 1},
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0},
	},
	Down: {
		{0, 2, 0}, {1, 2, 0}, {2, 2, 0},
		{0, 2, 1}, {1, 2, 1}, {2, 2, 1},
		{0, 2, 2}, {1, 2, 2}, {2, 2, 2},
	},
}
