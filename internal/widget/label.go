package widget

import (
	"stackui/internal/surface"
	"stackui/internal/textutil"
)

// Label displays static, possibly multi-line text.
type Label struct {
	lines []string
	width int
	attr  surface.Attr
}

var _ Widget = (*Label)(nil)

// NewLabel creates a label showing text with the given attributes.
func NewLabel(text string, a surface.Attr) *Label {
	l := &Label{attr: a}
	l.SetText(text)
	return l
}

// SetText replaces the label's text.
func (l *Label) SetText(text string) {
	l.lines = textutil.Lines(text)
	l.width = textutil.MaxWidth(l.lines)
}

// Width implements Drawable.
func (l *Label) Width() int { return l.width }

// Height implements Drawable.
func (l *Label) Height() int { return len(l.lines) }

// DrawAt implements Drawable. A positive width truncates long lines and a
// positive height limits the number of lines drawn.
func (l *Label) DrawAt(s surface.Surface, x, y, width, height int) {
	for i, line := range l.lines {
		if height > 0 && i >= height {
			return
		}
		if width > 0 {
			line = textutil.Truncate(line, width)
		}
		surface.Print(s, x, y+i, line, l.attr)
	}
}

// HandleEvent implements EventReceiver. Labels never consume events.
func (l *Label) HandleEvent(Event) bool { return false }
