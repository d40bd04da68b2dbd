package cli

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"stackui/internal/telemetry"
	"stackui/internal/ui"
)

// shutdownTimeout bounds how long pending spans may take to flush on exit.
const shutdownTimeout = 5 * time.Second

func newRunCmd(opts *rootOptions) *cobra.Command {
	var lf layoutFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Show the layout interactively",
		Long:  `Run draws the layout full-screen and forwards key presses and resizes to it until q or ctrl+c is pressed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			root, err := lf.build(ctx, cmd)
			if err != nil {
				return err
			}

			tp, err := telemetry.NewProvider(ctx)
			if err != nil {
				return err
			}
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := tp.Shutdown(sctx); err != nil {
					logger.Warn("tracer shutdown", "err", err)
				}
			}()

			// Logging to the terminal would tear the alt screen.
			hostLogger := logger
			if opts.logOut == nil {
				hostLogger = charmlog.New(io.Discard)
			}

			host := ui.NewHost(root,
				ui.WithLogger(hostLogger),
				ui.WithTracer(tp.Tracer(ui.TracerName)),
			)
			logger.Debug("starting", "tracing", tp.Enabled())

			p := tea.NewProgram(host, tea.WithAltScreen(), tea.WithContext(ctx))
			_, err = p.Run()
			return err
		},
	}

	lf.register(cmd)
	return cmd
}
