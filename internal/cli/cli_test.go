package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root, opts := newRootCmd()
	defer func() { require.NoError(t, opts.closeLog()) }()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestRender_DefaultLayout(t *testing.T) {
	out, _, err := execute(t, "render")
	require.NoError(t, err)

	want := "stackui\n" +
		"\n" +
		"Widgets stacked top to bottom.\n" +
		"Press q to quit.\n" +
		"\n" +
		"last key:\n" +
		"\n"
	assert.Equal(t, want, out)
}

func TestRender_SpacingAndHeight(t *testing.T) {
	out, _, err := execute(t, "render", "--spacing", "0", "--height", "2", "--width", "10")
	require.NoError(t, err)
	assert.Equal(t, "stackui\nWidgets s…\n", out)
}

func TestRender_LayoutFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	data := "spacing: 1\nwidgets:\n  - kind: label\n    text: alpha\n  - kind: label\n    text: beta\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, _, err := execute(t, "render", "--layout", path)
	require.NoError(t, err)
	assert.Equal(t, "alpha\n\nbeta\n\n", out)
}

func TestRender_Errors(t *testing.T) {
	_, _, err := execute(t, "render", "--layout", "nope.ini")
	assert.ErrorContains(t, err, "unknown layout format")

	_, _, err = execute(t, "render", "--spacing", "-1")
	assert.ErrorContains(t, err, "spacing must not be negative")

	_, _, err = execute(t, "render", "--width", "-2")
	assert.ErrorContains(t, err, "size must not be negative")
}

func TestRender_VerboseLogsToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "stackui.log")

	_, stderr, err := execute(t, "render", "-v", "--log-file", logPath)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "built layout")
}

func TestCloseLog_AfterFailedCommand(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "stackui.log")

	root, opts := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "--log-file", logPath, "--layout", "nope.ini"})
	require.Error(t, root.Execute())

	f := opts.logOut
	require.NotNil(t, f, "log file is opened before the command runs")
	require.NoError(t, opts.closeLog())
	assert.Nil(t, opts.logOut)
	assert.ErrorIs(t, f.Close(), os.ErrClosed)

	// Closing twice is harmless.
	assert.NoError(t, opts.closeLog())
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))

	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
