package widget

import "stackui/internal/surface"

// VerticalLayout stacks its children top to bottom with a fixed number of
// blank rows between them.
//
// Children are drawn in the order they were added. The layout owns every
// widget added to it; sharing one widget between two layouts is not supported.
type VerticalLayout struct {
	children []Widget
	spacing  int
}

var _ Widget = (*VerticalLayout)(nil)

// NewVerticalLayout returns an empty layout with zero spacing.
func NewVerticalLayout() *VerticalLayout {
	return &VerticalLayout{}
}

// Add appends w below the current children.
func (l *VerticalLayout) Add(w Widget) {
	l.children = append(l.children, w)
}

// SetSpacing sets the number of blank rows placed after each child.
// Negative values are treated as zero.
func (l *VerticalLayout) SetSpacing(n int) {
	l.spacing = max(n, 0)
}

// Spacing returns the current spacing.
func (l *VerticalLayout) Spacing() int {
	return l.spacing
}

// Len returns the number of children.
func (l *VerticalLayout) Len() int {
	return len(l.children)
}

// Width is the width of the widest child, or 0 without children.
func (l *VerticalLayout) Width() int {
	w := 0
	for _, c := range l.children {
		w = max(w, c.Width())
	}
	return w
}

// Height is the sum of the children's heights plus one spacing unit per
// child. The spacing after the last child is counted as well.
func (l *VerticalLayout) Height() int {
	h := 0
	for _, c := range l.children {
		h += c.Height()
	}
	return h + l.spacing*len(l.children)
}

// DrawAt draws the children one below the other starting at (x, y).
// Drawing stops at the first child whose offset is at or past height;
// that child and the ones after it are left untouched. Each child gets
// the full width and a height of 0, so it draws at its own Height.
func (l *VerticalLayout) DrawAt(s surface.Surface, x, y, width, height int) {
	off := 0
	for _, c := range l.children {
		if off >= height {
			break
		}
		c.DrawAt(s, x, y+off, width, 0)
		off += c.Height() + l.spacing
	}
}

// HandleEvent passes ev to every child in order and always reports it as
// consumed. The children's results are ignored.
func (l *VerticalLayout) HandleEvent(ev Event) bool {
	for _, c := range l.children {
		c.HandleEvent(ev)
	}
	return true
}
