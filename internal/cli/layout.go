package cli

import (
	"context"

	"github.com/spf13/cobra"

	"stackui/internal/config"
	"stackui/internal/widget"
)

// layoutFlags select and tweak the layout a command draws.
type layoutFlags struct {
	path    string
	spacing int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "layout", "l", "", "layout file (.toml, .yaml); built-in demo when empty")
	cmd.Flags().IntVar(&f.spacing, "spacing", 0, "override the layout's spacing")
}

// build loads the layout and applies the --spacing override when it was set.
func (f *layoutFlags) build(ctx context.Context, cmd *cobra.Command) (*widget.VerticalLayout, error) {
	logger := loggerFromContext(ctx)

	l := config.Default()
	if f.path != "" {
		var err error
		if l, err = config.Load(f.path); err != nil {
			return nil, err
		}
		logger.Debug("loaded layout", "path", f.path, "widgets", len(l.Widgets))
	}
	if cmd.Flags().Changed("spacing") {
		l.Spacing = f.spacing
	}

	root, err := l.Build()
	if err != nil {
		return nil, err
	}
	logger.Debug("built layout", "children", root.Len(), "spacing", root.Spacing(),
		"width", root.Width(), "height", root.Height())
	return root, nil
}
