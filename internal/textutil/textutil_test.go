package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 5, "hello"},
		{"cut", "hello world", 6, "hello…"},
		{"zero width", "hello", 0, ""},
		{"negative width", "hello", -3, ""},
		{"only ellipsis", "hello", 1, "…"},
		{"wide runes", "日本語", 4, "日…"},
		{"empty", "", 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, VisualWidth(got), max(tt.maxWidth, 0))
		})
	}
}

func TestPadRightVisual(t *testing.T) {
	assert.Equal(t, "ab   ", PadRightVisual("ab", 5))
	assert.Equal(t, "日 ", PadRightVisual("日", 3))
	assert.Equal(t, "abc…", PadRightVisual("abcdef", 4))
	assert.Equal(t, "abc", PadRightVisual("abc", 3))
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"a"}, Lines("a"))
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\r\n\nb"))
	assert.Equal(t, []string{"a", ""}, Lines("a\n"))
}

func TestMaxWidth(t *testing.T) {
	assert.Equal(t, 0, MaxWidth(nil))
	assert.Equal(t, 4, MaxWidth([]string{"ab", "日本", "c"}))
}
