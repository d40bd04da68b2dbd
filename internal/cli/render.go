package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"stackui/internal/ui"
)

func newRenderCmd() *cobra.Command {
	var (
		lf            layoutFlags
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw one frame of the layout to stdout",
		Long:  `Render draws the layout once onto a surface of the given size and prints it as plain text. A size of 0 uses the layout's own measured width or height.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 0 || height < 0 {
				return fmt.Errorf("size must not be negative, got %dx%d", width, height)
			}
			root, err := lf.build(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			if width == 0 {
				width = root.Width()
			}
			if height == 0 {
				height = root.Height()
			}
			loggerFromContext(cmd.Context()).Debug("render", "width", width, "height", height)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ui.Snapshot(root, width, height))
			return err
		},
	}

	lf.register(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "surface width in columns")
	cmd.Flags().IntVar(&height, "height", 0, "surface height in rows")
	return cmd
}
