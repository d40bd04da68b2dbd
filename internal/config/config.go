// Package config loads layout files describing a vertical stack of widgets.
//
// A layout file is TOML or YAML, picked by extension:
//
//	spacing = 1
//
//	[[widgets]]
//	kind = "label"
//	text = "stackui"
//	fg   = "86"
//	bold = true
//
//	[[widgets]]
//	kind  = "keyecho"
//	text  = "last key: "
//	width = 24
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"stackui/internal/surface"
	"stackui/internal/widget"
)

// Format identifies the syntax of a layout file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Widget kinds understood by Build.
const (
	KindLabel   = "label"
	KindKeyEcho = "keyecho"
)

// ErrUnknownFormat is returned for files whose extension is not recognized.
var ErrUnknownFormat = errors.New("unknown layout format")

// Layout describes a vertical stack of widgets.
type Layout struct {
	Spacing int      `toml:"spacing" yaml:"spacing"`
	Widgets []Widget `toml:"widgets" yaml:"widgets"`
}

// Widget describes one child of the stack.
type Widget struct {
	Kind  string `toml:"kind" yaml:"kind"`
	Text  string `toml:"text" yaml:"text"`
	Width int    `toml:"width,omitempty" yaml:"width,omitempty"`
	Fg    string `toml:"fg,omitempty" yaml:"fg,omitempty"`
	Bg    string `toml:"bg,omitempty" yaml:"bg,omitempty"`
	Bold  bool   `toml:"bold,omitempty" yaml:"bold,omitempty"`
}

// Default returns the built-in demo layout.
func Default() *Layout {
	return &Layout{
		Spacing: 1,
		Widgets: []Widget{
			{Kind: KindLabel, Text: "stackui", Fg: "86", Bold: true},
			{Kind: KindLabel, Text: "Widgets stacked top to bottom.\nPress q to quit.", Fg: "252"},
			{Kind: KindKeyEcho, Text: "last key: ", Width: 24, Fg: "205"},
		},
	}
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Load reads and validates a layout file.
func Load(path string) (*Layout, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	l, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes and validates a layout.
func Parse(data []byte, format Format) (*Layout, error) {
	var l Layout
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks spacing and widget kinds.
func (l *Layout) Validate() error {
	if l.Spacing < 0 {
		return fmt.Errorf("spacing must not be negative, got %d", l.Spacing)
	}
	for i, w := range l.Widgets {
		switch w.Kind {
		case KindLabel, KindKeyEcho:
		default:
			return fmt.Errorf("widgets[%d]: unknown kind %q", i, w.Kind)
		}
		if w.Width < 0 {
			return fmt.Errorf("widgets[%d]: width must not be negative, got %d", i, w.Width)
		}
	}
	return nil
}

// Build creates the vertical layout described by l.
func (l *Layout) Build() (*widget.VerticalLayout, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	root := widget.NewVerticalLayout()
	root.SetSpacing(l.Spacing)
	for _, w := range l.Widgets {
		a := w.attr()
		switch w.Kind {
		case KindLabel:
			root.Add(widget.NewLabel(w.Text, a))
		case KindKeyEcho:
			root.Add(widget.NewKeyEcho(w.Text, w.Width, a))
		}
	}
	return root, nil
}

func (w Widget) attr() surface.Attr {
	return surface.Attr{
		Fg:   lipgloss.Color(w.Fg),
		Bg:   lipgloss.Color(w.Bg),
		Bold: w.Bold,
	}
}
