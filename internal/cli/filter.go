package cli

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/glennib/z157/fieldset"
	"github.com/glennib/z157/internal/config"
	"github.com/glennib/z157/internal/ui"
)

// parseErrorDetails is attached to FILTER_INVALID errors in JSON mode.
type parseErrorDetails struct {
	Offset    int    `json:"offset"`
	Remainder string `json:"remainder"`
}

// parseFilter parses a filter argument with the configured depth limit.
// In text mode a caret under the failing position is written to stderr.
func (o *rootOptions) parseFilter(cmd *cobra.Command, input string) (*fieldset.Tree, error) {
	tree, err := fieldset.Parse(input, fieldset.WithMaxDepth(o.cfg.MaxDepth))
	if err == nil {
		return tree, nil
	}

	var perr *fieldset.UnparsableError
	if !errors.As(err, &perr) {
		return nil, o.handleError(cmd, ErrInternal, err, "")
	}
	if !o.jsonOutput {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Caret(input, perr.Offset))
	}
	return nil, o.handleErrorWithDetails(cmd, ErrFilterInvalid, err.Error(),
		"Filters look like (a,b(c)); names use A-Z a-z 0-9 - _ and no spaces. Run 'z157 grammar' for details.",
		parseErrorDetails{Offset: perr.Offset, Remainder: perr.Remainder()})
}

// fieldView is the JSON/YAML representation of one field.
type fieldView struct {
	Name        string       `json:"name" yaml:"name"`
	Path        string       `json:"path" yaml:"path"`
	Depth       int          `json:"depth" yaml:"-"`
	HasChildren bool         `json:"has_children" yaml:"-"`
	Children    []*fieldView `json:"children,omitempty" yaml:"children,omitempty"`
}

func newFieldView(f fieldset.Field) *fieldView {
	return &fieldView{
		Name:        f.Name(),
		Path:        dottedPath(f.Path()),
		Depth:       f.Depth(),
		HasChildren: f.HasChildren(),
	}
}

// treeView is the nested representation of a whole filter.
type treeView struct {
	Filter   string       `json:"filter" yaml:"filter"`
	Negation bool         `json:"negation" yaml:"negation"`
	Fields   []*fieldView `json:"fields" yaml:"fields"`
}

func newTreeView(t *fieldset.Tree) *treeView {
	view := &treeView{
		Filter:   t.Source(),
		Negation: t.Negation(),
	}
	views := make(map[fieldset.Field]*fieldView, t.Len())
	for field := range t.Walk() {
		v := newFieldView(field)
		views[field] = v
		if parent, ok := field.Parent(); ok {
			p := views[parent]
			p.Children = append(p.Children, v)
			continue
		}
		view.Fields = append(view.Fields, v)
	}
	return view
}

// duplicateSiblings returns every field whose name was already used by an
// earlier sibling, in Walk order.
func duplicateSiblings(t *fieldset.Tree) []fieldset.Field {
	var dups []fieldset.Field
	check := func(siblings iter.Seq[fieldset.Field]) {
		seen := make(map[string]bool)
		for f := range siblings {
			if seen[f.Name()] {
				dups = append(dups, f)
			}
			seen[f.Name()] = true
		}
	}

	check(t.Top())
	for field := range t.Walk() {
		if field.HasChildren() {
			check(field.Children())
		}
	}
	slices.SortFunc(dups, func(a, b fieldset.Field) int {
		as, _ := a.Span()
		bs, _ := b.Span()
		return as - bs
	})
	return dups
}

func dottedPath(path []string) string {
	return strings.Join(path, ".")
}

// splitPath turns "a.b" "c" into [a b c]. Field names cannot contain dots,
// so splitting is unambiguous.
func splitPath(args []string) []string {
	var path []string
	for _, arg := range args {
		path = append(path, strings.Split(arg, ".")...)
	}
	return path
}

// formatFlag is a pflag.Value restricted to the known output formats.
type formatFlag struct {
	value string
}

func (f *formatFlag) String() string { return f.value }

func (f *formatFlag) Set(s string) error {
	switch s {
	case config.FormatTree, config.FormatPaths, config.FormatYAML:
		f.value = s
		return nil
	default:
		return fmt.Errorf("must be one of %s, %s, %s", config.FormatTree, config.FormatPaths, config.FormatYAML)
	}
}

func (f *formatFlag) Type() string { return "format" }

func addFormatFlag(fs *pflag.FlagSet, f *formatFlag) {
	fs.Var(f, "format", "Output format: tree, paths or yaml (default from config)")
}

// resolve returns the flag value, falling back to the configured format.
func (f *formatFlag) resolve(cfg *config.Config) string {
	if f.value != "" {
		return f.value
	}
	return cfg.Format
}
