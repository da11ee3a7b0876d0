package gocube

// Color represents a sticker color.
type Color byte

const (
	Uncolored Color = iota // Hidden face of a cubelet
	Blue
	Red
	Green
	Orange
	Yellow
	White
)

// Colors lists the six sticker colors in letter order (b, r, g, o, y, w).
var Colors = [6]Color{Blue, Red, Green, Orange, Yellow, White}

var colorLetters = [...]byte{
	Uncolored: '.',
	Blue:      'b',
	Red:       'r',
	Green:     'g',
	Orange:    'o',
	Yellow:    'y',
	White:     'w',
}

var colorNames = [...]string{
	Uncolored: "uncolored",
	Blue:      "blue",
	Red:       "red",
	Green:     "green",
	Orange:    "orange",
	Yellow:    "yellow",
	White:     "white",
}

// Letter returns the single-letter code used in cube codes.
func (c Color) Letter() byte {
	if int(c) >= len(colorLetters) {
		return '?'
	}
	return colorLetters[c]
}

func (c Color) String() string {
	if int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// ColorFromLetter maps a lowercase code letter to its Color.
// Only the six sticker letters are accepted.
func ColorFromLetter(b byte) (Color, bool) {
	switch b {
	case 'b':
		return Blue, true
	case 'r':
		return Red, true
	case 'g':
		return Green, true
	case 'o':
		return Orange, true
	case 'y':
		return Yellow, true
	case 'w':
		return White, true
	default:
		return Uncolored, false
	}
}
