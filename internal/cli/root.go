package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version printed by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the stackui CLI.
func Execute() error {
	root, opts := newRootCmd()
	defer opts.closeLog()
	return root.ExecuteContext(context.Background())
}

// rootOptions are the flags shared by every command.
type rootOptions struct {
	verbose bool
	logFile string

	// logOut is the open --log-file. The caller of newRootCmd closes it
	// once the command returns, whether or not it failed.
	logOut *os.File
}

// closeLog closes the --log-file, if one was opened.
func (o *rootOptions) closeLog() error {
	if o.logOut == nil {
		return nil
	}
	err := o.logOut.Close()
	o.logOut = nil
	return err
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "stackui",
		Short:        "stackui stacks terminal widgets vertically",
		Long:         `stackui assembles widgets from a layout file into a vertical stack and draws them in the terminal, either interactively or as a single frame.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			out := cmd.ErrOrStderr()
			if opts.logFile != "" {
				f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				opts.logOut = f
				out = f
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(out, level)))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "append logs to this file instead of stderr")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newRenderCmd())

	return root, opts
}
