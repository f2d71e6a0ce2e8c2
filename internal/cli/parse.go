package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/glennib/z157/internal/config"
	"github.com/glennib/z157/internal/ui"
)

func newParseCmd(opts *rootOptions) *cobra.Command {
	var format formatFlag

	cmd := &cobra.Command{
		Use:   "parse <filter>",
		Short: "Validate a filter and show its structure",
		Long: `Parse a fields filter and print it as a tree.

A filter that starts with "-" must follow "--" so it is not read as a flag.

Examples:
  z157 parse '(name,bio(height(meters,centimeters),age))'
  z157 parse '!(bio)' --format yaml
  z157 parse '(a,b(c))' --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := opts.parseFilter(cmd, args[0])
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				outputSuccess(cmd, newTreeView(tree), &Meta{Count: tree.Len()})
				return nil
			}

			for _, dup := range duplicateSiblings(tree) {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning(fmt.Sprintf(
					"%s repeats an earlier sibling; lookups by path use the first one", dup)))
			}

			out := cmd.OutOrStdout()
			switch format.resolve(opts.cfg) {
			case config.FormatYAML:
				b, err := yaml.Marshal(newTreeView(tree))
				if err != nil {
					return opts.handleError(cmd, ErrInternal, err, "")
				}
				_, err = out.Write(b)
				return err
			case config.FormatPaths:
				for path := range tree.Paths() {
					fmt.Fprintln(out, dottedPath(path))
				}
				return nil
			default:
				fmt.Fprintln(out, ui.RenderFieldTree(tree))
				fmt.Fprintln(out, ui.Hint(ui.Count(tree.Len(), "field", "fields")))
				return nil
			}
		},
	}
	addFormatFlag(cmd.Flags(), &format)
	return cmd
}
