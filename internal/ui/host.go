package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"stackui/internal/surface"
	"stackui/internal/widget"
)

// TracerName is the instrumentation scope of the host's spans.
const TracerName = "stackui/ui"

// Host runs a widget tree inside a Bubble Tea program. It owns the drawing
// surface, sizes it from window resizes and redraws the whole tree on
// every View.
type Host struct {
	root   widget.Widget
	grid   *surface.Grid
	keys   KeyMap
	logger *log.Logger
	tracer oteltrace.Tracer
}

var _ tea.Model = (*Host)(nil)

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger used for per-event debug output.
func WithLogger(l *log.Logger) Option {
	return func(h *Host) { h.logger = l }
}

// WithTracer sets the tracer used for frame and event spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(h *Host) { h.tracer = t }
}

// WithKeyMap replaces the host's own key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(h *Host) { h.keys = k }
}

// NewHost creates a host for root. The surface stays empty until the first
// tea.WindowSizeMsg arrives.
func NewHost(root widget.Widget, opts ...Option) *Host {
	h := &Host{
		root:   root,
		grid:   surface.NewGrid(0, 0),
		keys:   DefaultKeyMap(),
		logger: log.New(io.Discard),
		tracer: noop.NewTracerProvider().Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Size returns the current surface size.
func (h *Host) Size() (int, int) {
	return h.grid.Size()
}

// Init implements tea.Model.
func (h *Host) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Quit keys stop the program; every other
// message, resizes included, is handed to the root widget.
func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, span := h.tracer.Start(context.Background(), "ui.event",
		oteltrace.WithAttributes(attribute.String("stackui.event.type", fmt.Sprintf("%T", msg))))
	defer span.End()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.grid.Resize(msg.Width, msg.Height)
		h.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Quit) {
			h.logger.Debug("quit", "key", msg.String())
			span.SetAttributes(attribute.Bool("stackui.event.quit", true))
			return h, tea.Quit
		}
	}

	consumed := h.root.HandleEvent(msg)
	span.SetAttributes(attribute.Bool("stackui.event.consumed", consumed))
	h.logger.Debug("event", "type", fmt.Sprintf("%T", msg), "consumed", consumed)
	return h, nil
}

// View implements tea.Model.
func (h *Host) View() string {
	w, ht := h.grid.Size()
	_, span := h.tracer.Start(context.Background(), "ui.frame",
		oteltrace.WithAttributes(
			attribute.Int("stackui.frame.width", w),
			attribute.Int("stackui.frame.height", ht),
		))
	defer span.End()
	if c, ok := h.root.(interface{ Len() int }); ok {
		span.SetAttributes(attribute.Int("stackui.frame.children", c.Len()))
	}

	h.grid.Clear()
	h.root.DrawAt(h.grid, 0, 0, w, ht)
	return h.grid.Render()
}

// Snapshot draws root once onto a fresh w×h surface and returns it as plain text.
func Snapshot(root widget.Drawable, w, h int) string {
	g := surface.NewGrid(w, h)
	root.DrawAt(g, 0, 0, w, h)
	return g.String()
}
