package surface

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Attr holds the color and attribute metadata of a cell.
// Widgets treat it as opaque and pass it through unchanged.
type Attr struct {
	Fg        lipgloss.Color
	Bg        lipgloss.Color
	Bold      bool
	Underline bool
	Reverse   bool
}

// IsZero reports whether a carries no styling at all.
func (a Attr) IsZero() bool {
	return a == Attr{}
}

// Cell is one position of the grid.
type Cell struct {
	Rune rune
	Attr Attr

	// cont marks the right half of a double-width rune.
	cont bool
}

// Continuation reports whether c is the trailing half of a wide rune.
func (c Cell) Continuation() bool {
	return c.cont
}

// Surface is a mutable grid-addressable drawing target.
type Surface interface {
	// SetCell writes r at column x, row y. Out-of-bounds writes are ignored.
	SetCell(x, y int, r rune, a Attr)
	// Size returns the surface dimensions in columns and rows.
	Size() (w, h int)
}

// Print writes a single line of text starting at (x, y) and returns the
// number of columns it advanced. Newlines are not interpreted; zero-width
// runes are skipped.
func Print(s Surface, x, y int, text string, a Attr) int {
	col := x
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		s.SetCell(col, y, r, a)
		col += rw
	}
	return col - x
}
