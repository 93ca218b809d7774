package cli

import (
	"io"

	"cartlab/internal/platform/logger"

	"github.com/spf13/cobra"
)

// Optionsはコマンド共通の依存
type Options struct {
	Out        io.Writer
	Log        *logger.Logger
	TodoAPIURL string
}

func NewRootCommand(opts Options) *cobra.Command {
	if opts.Log == nil {
		opts.Log = logger.NewNop()
	}

	root := &cobra.Command{
		Use:           "cartlab",
		Short:         "Shopping cart aggregation demo and todo API client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(opts.Out)

	root.AddCommand(newCartCommand(opts))
	root.AddCommand(newTodoCommand(opts))
	return root
}
