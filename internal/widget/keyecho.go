package widget

import (
	tea "github.com/charmbracelet/bubbletea"

	"stackui/internal/surface"
	"stackui/internal/textutil"
)

// keyNameWidth is the room reserved for a key name when no width is given.
const keyNameWidth = 12

// KeyEcho is a one-row widget showing a prompt followed by the last key it
// received.
type KeyEcho struct {
	prompt string
	width  int
	attr   surface.Attr

	last  string
	count int
}

var _ Widget = (*KeyEcho)(nil)

// NewKeyEcho creates a key echo. A width of 0 or less sizes it to the
// prompt plus room for a key name.
func NewKeyEcho(prompt string, width int, a surface.Attr) *KeyEcho {
	if width <= 0 {
		width = textutil.VisualWidth(prompt) + keyNameWidth
	}
	return &KeyEcho{prompt: prompt, width: width, attr: a}
}

// Last returns the name of the last key received, or "" if none.
func (e *KeyEcho) Last() string { return e.last }

// Count returns how many key events were received.
func (e *KeyEcho) Count() int { return e.count }

// Width implements Drawable.
func (e *KeyEcho) Width() int { return e.width }

// Height implements Drawable.
func (e *KeyEcho) Height() int { return 1 }

// DrawAt implements Drawable. The whole row is written, padded with
// blanks, so a shorter key name overwrites a longer one.
func (e *KeyEcho) DrawAt(s surface.Surface, x, y, width, _ int) {
	w := e.width
	if width > 0 {
		w = min(w, width)
	}
	surface.Print(s, x, y, textutil.PadRightVisual(e.prompt+e.last, w), e.attr)
}

// HandleEvent implements EventReceiver. Key presses are recorded and
// consumed; everything else is ignored.
func (e *KeyEcho) HandleEvent(ev Event) bool {
	k, ok := ev.(tea.KeyMsg)
	if !ok {
		return false
	}
	e.last = k.String()
	e.count++
	return true
}
