// Package render draws cubes for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_solver"
)

// Terminal colors per sticker color.
var stickerColors = map[gocube.Color]lipgloss.Color{
	gocube.Blue:   lipgloss.Color("27"),
	gocube.Red:    lipgloss.Color("160"),
	gocube.Green:  lipgloss.Color("34"),
	gocube.Orange: lipgloss.Color("208"),
	gocube.Yellow: lipgloss.Color("226"),
	gocube.White:  lipgloss.Color("255"),
}

var (
	cellStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("16"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))
)

// Cell renders one sticker.
func Cell(c gocube.Color) string {
	style := cellStyle
	if bg, ok := stickerColors[c]; ok {
		style = style.Background(bg)
	}
	return style.Render(string(c.Letter()))
}

// Face renders the nine stickers of face p as a 3x3 block.
func Face(c *gocube.Cube, p gocube.Position) string {
	rows := make([]string, 3)
	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			cells[col] = Cell(c.Facelet(p, r*3+col))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Net renders the cube unfolded: Up above the Left, Front, Right and Back
// faces, Down below.
func Net(c *gocube.Cube) string {
	left := Face(c, gocube.Left)
	pad := strings.Repeat(" ", lipgloss.Width(left))

	indent := func(block string) string {
		lines := strings.Split(block, "\n")
		for i := range lines {
			lines[i] = pad + lines[i]
		}
		return strings.Join(lines, "\n")
	}

	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		left,
		Face(c, gocube.Front),
		Face(c, gocube.Right),
		Face(c, gocube.Back),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		indent(Face(c, gocube.Up)),
		middle,
		indent(Face(c, gocube.Down)),
	)
}

// Moves renders a move list in standard notation with a label.
func Moves(label string, moves []gocube.Move) string {
	text := gocube.FormatNotation(moves)
	if text == "" {
		text = "(none)"
	}
	return labelStyle.Render(label+":") + " " + moveStyle.Render(text)
}

// Title renders a heading.
func Title(s string) string {
	return titleStyle.Render(s)
}
