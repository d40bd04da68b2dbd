// Package widget defines the capability set shared by every element of a
// character-grid UI tree, along with the containers and leaf widgets built on it.
//
// A widget can be measured (Width, Height), drawn onto a surface.Surface at a
// position (DrawAt), and informed of input events (HandleEvent). Containers own
// their children as Widget interface values and delegate to them.
package widget

import (
	tea "github.com/charmbracelet/bubbletea"

	"stackui/internal/surface"
)

// Event is one input occurrence (key press, resize, ...). Widgets forward it
// without decoding unless they care about a particular kind.
type Event = tea.Msg

// Drawable is implemented by widgets that can be measured and rendered.
type Drawable interface {
	// Width returns the preferred width in columns.
	Width() int
	// Height returns the preferred height in rows.
	Height() int
	// DrawAt renders the widget with its top-left corner at (x, y).
	// width and height are the space the caller allotted and are advisory.
	// Leaf widgets read a height of 0 as "no limit". Writes beyond the
	// surface are clipped by the surface.
	DrawAt(s surface.Surface, x, y, width, height int)
}

// EventReceiver is implemented by widgets that react to input.
type EventReceiver interface {
	// HandleEvent reports whether the event was consumed. Callers are free
	// to ignore the result.
	HandleEvent(ev Event) bool
}

// Widget is the full capability set a container requires of its children.
type Widget interface {
	Drawable
	EventReceiver
}
