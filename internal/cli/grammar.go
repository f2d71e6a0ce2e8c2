package cli

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glennib/z157/internal/ui"
)

//go:embed docs/grammar.md
var grammarDoc string

func newGrammarCmd(opts *rootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Show the filter grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOutput {
				outputSuccess(cmd, map[string]string{"grammar": grammarDoc}, nil)
				return nil
			}

			display := ui.NewDisplayContext(cmd.OutOrStdout())
			if raw || !display.IsTTY {
				_, err := fmt.Fprint(cmd.OutOrStdout(), grammarDoc)
				return err
			}

			rendered, err := ui.RenderMarkdown(grammarDoc, display.MarkdownWidth())
			if err != nil {
				return opts.handleError(cmd, ErrInternal, err, "")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the markdown source without rendering")
	return cmd
}
