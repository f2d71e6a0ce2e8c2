package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glennib/z157/fieldset"
	"github.com/glennib/z157/internal/ui"
)

type indexResult struct {
	Field    *fieldView `json:"field"`
	Children []string   `json:"children"`
}

func newIndexCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "index <filter> <path>...",
		Short: "Look up a field by its path",
		Long: `Look up a field by path. Path segments may be given as separate arguments
or joined with dots. When siblings share a name the first one is used.

Exits non-zero when the path does not exist.

A filter that starts with "-" must follow "--" so it is not read as a flag.

Examples:
  z157 index '(name,bio(height(meters)))' bio.height
  z157 index '(name,bio(height(meters)))' bio height meters`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := opts.parseFilter(cmd, args[0])
			if err != nil {
				return err
			}

			path := splitPath(args[1:])
			for _, segment := range path {
				if !fieldset.IsValidName(segment) {
					return opts.handleErrorMsg(cmd, ErrInvalidInput,
						fmt.Sprintf("invalid path segment %q", segment),
						"Path segments use A-Z a-z 0-9 - _ only")
				}
			}

			field, ok := tree.Index(path...)
			if !ok {
				return opts.handleErrorMsg(cmd, ErrFieldNotFound,
					fmt.Sprintf("field not found: %s", dottedPath(path)),
					"Run 'z157 walk' to list the paths in this filter")
			}

			result := indexResult{Field: newFieldView(field), Children: []string{}}
			for child := range field.Children() {
				result.Children = append(result.Children, child.Name())
			}

			if opts.jsonOutput {
				outputSuccess(cmd, result, nil)
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Successf("%s", ui.Bold.Render(field.String())))
			if len(result.Children) == 0 {
				fmt.Fprintln(out, ui.Hint("  leaf field"))
				return nil
			}
			for _, name := range result.Children {
				fmt.Fprintf(out, "  %s %s\n", ui.Muted.Render(ui.SymbolLeaf), name)
			}
			return nil
		},
	}
}
