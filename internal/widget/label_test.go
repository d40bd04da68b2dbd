package widget

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"stackui/internal/surface"
)

func TestLabel_Measure(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		wantW int
		wantH int
	}{
		{"empty", "", 0, 0},
		{"single line", "hello", 5, 1},
		{"multi line", "a\nlonger\nmid", 6, 3},
		{"wide runes", "日本", 4, 1},
		{"trailing newline", "x\n", 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLabel(tt.text, surface.Attr{})
			assert.Equal(t, tt.wantW, l.Width())
			assert.Equal(t, tt.wantH, l.Height())
		})
	}
}

func TestLabel_DrawAt(t *testing.T) {
	l := NewLabel("first\nsecond\nthird", surface.Attr{})
	g := surface.NewGrid(10, 4)

	l.DrawAt(g, 1, 1, 0, 0)
	assert.Equal(t, "\n first\n second\n third", g.String())
}

func TestLabel_DrawAtTruncates(t *testing.T) {
	l := NewLabel("first\nsecond\nthird", surface.Attr{})
	g := surface.NewGrid(10, 4)

	l.DrawAt(g, 0, 0, 4, 2)
	assert.Equal(t, "fir…\nsec…\n\n", g.String())
}

func TestLabel_SetText(t *testing.T) {
	l := NewLabel("a", surface.Attr{})
	l.SetText("abc\nd")
	assert.Equal(t, 3, l.Width())
	assert.Equal(t, 2, l.Height())
}

func TestLabel_KeepsAttr(t *testing.T) {
	a := surface.Attr{Fg: "86", Bold: true}
	l := NewLabel("x", a)
	g := surface.NewGrid(1, 1)
	l.DrawAt(g, 0, 0, 0, 0)

	c, _ := g.Cell(0, 0)
	assert.Equal(t, a, c.Attr)
}

func TestLabel_IgnoresEvents(t *testing.T) {
	l := NewLabel("x", surface.Attr{})
	assert.False(t, l.HandleEvent(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestKeyEcho_RecordsKeys(t *testing.T) {
	e := NewKeyEcho("key: ", 0, surface.Attr{})
	assert.Equal(t, 5+keyNameWidth, e.Width())
	assert.Equal(t, 1, e.Height())

	assert.True(t, e.HandleEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}))
	assert.True(t, e.HandleEvent(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, e.HandleEvent(tea.WindowSizeMsg{Width: 10, Height: 10}))

	assert.Equal(t, "enter", e.Last())
	assert.Equal(t, 2, e.Count())

	g := surface.NewGrid(20, 1)
	e.DrawAt(g, 0, 0, 0, 0)
	assert.Equal(t, "key: enter", g.String())
}

func TestKeyEcho_DrawTruncates(t *testing.T) {
	e := NewKeyEcho("> ", 6, surface.Attr{})
	e.HandleEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abcdefg")})

	g := surface.NewGrid(20, 1)
	e.DrawAt(g, 0, 0, 0, 0)
	assert.Equal(t, "> abc…", g.String())

	g.Clear()
	e.DrawAt(g, 0, 0, 4, 0)
	assert.Equal(t, "> a…", g.String())
}

func TestKeyEcho_DrawPadsRow(t *testing.T) {
	e := NewKeyEcho("> ", 8, surface.Attr{Fg: "205"})
	g := surface.NewGrid(10, 1)
	surface.Print(g, 0, 0, "xxxxxxxxxx", surface.Attr{})

	e.HandleEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	e.DrawAt(g, 0, 0, 0, 0)

	assert.Equal(t, "> j     xx", g.String())
	c, _ := g.Cell(7, 0)
	assert.Equal(t, surface.Attr{Fg: "205"}, c.Attr)
}
