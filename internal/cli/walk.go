package cli

import (
	"fmt"
	"iter"

	"github.com/spf13/cobra"

	"github.com/glennib/z157/fieldset"
	"github.com/glennib/z157/internal/ui"
)

func newWalkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "walk <filter>",
		Short: "List every field path in depth-first order",
		Long: `List the path of every field, parents before children.

Groups are marked with ▸ and leaves with •.

A filter that starts with "-" must follow "--" so it is not read as a flag.

Examples:
  z157 walk '(name,bio(height,age))'
  z157 walk '(a(b))' --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := opts.parseFilter(cmd, args[0])
			if err != nil {
				return err
			}
			return opts.printFields(cmd, tree, tree.Walk())
		},
	}
}

func newLeavesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "leaves <filter>",
		Short: "List the paths of fields without children",
		Long: `List the leaf fields of a filter. For a negated filter these are the fields
that get removed.

A filter that starts with "-" must follow "--" so it is not read as a flag.

Examples:
  z157 leaves '(parent_1(child_1,parent_2(child_2)),child_3)'
  z157 leaves '!(bio(age))' --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := opts.parseFilter(cmd, args[0])
			if err != nil {
				return err
			}
			return opts.printFields(cmd, tree, tree.Leaves())
		},
	}
}

type fieldListResult struct {
	Negation bool         `json:"negation"`
	Fields   []*fieldView `json:"fields"`
}

func (o *rootOptions) printFields(cmd *cobra.Command, tree *fieldset.Tree, fields iter.Seq[fieldset.Field]) error {
	if o.jsonOutput {
		result := fieldListResult{Negation: tree.Negation(), Fields: []*fieldView{}}
		for field := range fields {
			result.Fields = append(result.Fields, newFieldView(field))
		}
		outputSuccess(cmd, result, &Meta{Count: len(result.Fields)})
		return nil
	}

	out := cmd.OutOrStdout()
	for field := range fields {
		if field.HasChildren() {
			fmt.Fprintf(out, "%s %s\n", ui.Accent.Render(ui.SymbolGroup), field)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", ui.Muted.Render(ui.SymbolLeaf), field)
	}
	return nil
}
