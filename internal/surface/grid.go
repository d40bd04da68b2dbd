package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-runewidth"
)

// styleCacheSize bounds the number of distinct Attr values whose lipgloss
// style is kept around between renders.
const styleCacheSize = 256

var blank = Cell{Rune: ' '}

// Grid is an in-memory Surface.
// The zero value is a 0x0 grid that drops every write.
type Grid struct {
	w, h   int
	cells  []Cell
	styles *lru.Cache[Attr, lipgloss.Style]
}

var _ Surface = (*Grid)(nil)

// NewGrid creates a blank grid of w columns and h rows.
// Negative dimensions are treated as zero.
func NewGrid(w, h int) *Grid {
	g := &Grid{}
	g.Resize(w, h)
	return g
}

// Size implements Surface.
func (g *Grid) Size() (int, int) {
	return g.w, g.h
}

// Resize changes the grid dimensions, keeping the content that still fits.
func (g *Grid) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = blank
	}
	for y := 0; y < min(h, g.h); y++ {
		copy(cells[y*w:y*w+min(w, g.w)], g.cells[y*g.w:])
		// A wide rune cut in half by the new right edge is dropped.
		if w > 0 && w < g.w && runewidth.RuneWidth(cells[y*w+w-1].Rune) == 2 && !cells[y*w+w-1].cont {
			cells[y*w+w-1] = blank
		}
	}
	g.w, g.h, g.cells = w, h, cells
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = blank
	}
}

// Cell returns the cell at (x, y). ok is false when the position is outside the grid.
func (g *Grid) Cell(x, y int) (c Cell, ok bool) {
	if !g.inside(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.w+x], true
}

// SetCell implements Surface.
// A double-width rune takes two cells and is dropped when the second one
// would fall outside the grid.
func (g *Grid) SetCell(x, y int, r rune, a Attr) {
	if !g.inside(x, y) {
		return
	}
	rw := runewidth.RuneWidth(r)
	if rw == 0 {
		return
	}
	if rw == 2 && x+1 >= g.w {
		return
	}
	g.breakWide(x, y)
	g.cells[y*g.w+x] = Cell{Rune: r, Attr: a}
	if rw == 2 {
		g.breakWide(x+1, y)
		g.cells[y*g.w+x+1] = Cell{Attr: a, cont: true}
	}
}

// breakWide blanks the other half of a wide rune overlapping (x, y).
func (g *Grid) breakWide(x, y int) {
	i := y*g.w + x
	c := g.cells[i]
	switch {
	case c.cont && x > 0:
		g.cells[i-1] = blank
	case !c.cont && runewidth.RuneWidth(c.Rune) == 2 && x+1 < g.w:
		g.cells[i+1] = blank
	}
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// String returns the grid as plain text, one line per row with trailing
// blanks removed.
func (g *Grid) String() string {
	rows := make([]string, g.h)
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		b.Reset()
		for _, c := range g.row(y) {
			if c.cont {
				continue
			}
			b.WriteRune(c.Rune)
		}
		rows[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(rows, "\n")
}

// Render returns the grid as ANSI-styled text. Consecutive cells sharing
// an Attr are styled as one run.
func (g *Grid) Render() string {
	rows := make([]string, g.h)
	var row, run strings.Builder
	for y := 0; y < g.h; y++ {
		row.Reset()
		run.Reset()
		var cur Attr
		for _, c := range g.row(y) {
			if c.cont {
				continue
			}
			if c.Attr != cur && run.Len() > 0 {
				row.WriteString(g.styled(cur, run.String()))
				run.Reset()
			}
			cur = c.Attr
			run.WriteRune(c.Rune)
		}
		if run.Len() > 0 {
			row.WriteString(g.styled(cur, run.String()))
		}
		rows[y] = row.String()
	}
	return strings.Join(rows, "\n")
}

func (g *Grid) row(y int) []Cell {
	return g.cells[y*g.w : (y+1)*g.w]
}

func (g *Grid) styled(a Attr, s string) string {
	if a.IsZero() {
		return s
	}
	return g.style(a).Render(s)
}

// style returns the lipgloss style for a, building it on first use.
func (g *Grid) style(a Attr) lipgloss.Style {
	if g.styles == nil {
		g.styles, _ = lru.New[Attr, lipgloss.Style](styleCacheSize)
	}
	if st, ok := g.styles.Get(a); ok {
		return st
	}
	st := lipgloss.NewStyle().
		Bold(a.Bold).
		Underline(a.Underline).
		Reverse(a.Reverse)
	if a.Fg != "" {
		st = st.Foreground(a.Fg)
	}
	if a.Bg != "" {
		st = st.Background(a.Bg)
	}
	g.styles.Add(a, st)
	return st
}
