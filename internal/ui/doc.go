// Package ui hosts a widget tree inside a Bubble Tea program.
//
// Host is the tea.Model: it owns the drawing surface, resizes it on
// tea.WindowSizeMsg, forwards every message except its own quit keys to the
// root widget, and redraws the whole tree on each View. Frames and events
// are traced with OpenTelemetry and logged at debug level.
package ui
