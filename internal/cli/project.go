package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/glennib/z157/internal/atomicfile"
	"github.com/glennib/z157/internal/project"
	"github.com/glennib/z157/internal/ui"
)

func newProjectCmd(opts *rootOptions) *cobra.Command {
	var (
		compact bool
		ndjson  bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "project <filter> [file]",
		Short: "Apply a filter to a JSON document",
		Long: `Apply a fields filter to a JSON document read from a file or stdin.

Without "!" only the listed fields are kept. With "!" the leaf fields are
removed and everything else is kept. Arrays are filtered element by element,
and fields missing from the document are ignored.

With --ndjson every non-blank input line is a separate document and each
result is printed on its own line.

A filter that starts with "-" must follow "--" so it is not read as a flag.

Examples:
  z157 project '(name,bio(height_cm))' user.json
  curl -s https://api.example.com/users/1 | z157 project '!(bio)'
  z157 project '(name)' user.json -o name.json
  z157 project --ndjson '(id,level)' app.log`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := opts.parseFilter(cmd, args[0])
			if err != nil {
				return err
			}

			var input []byte
			if len(args) == 2 {
				input, err = os.ReadFile(args[1])
				if err != nil {
					return opts.handleError(cmd, ErrFileReadError, err, "")
				}
			} else {
				in := cmd.InOrStdin()
				if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
					return opts.handleErrorMsg(cmd, ErrInvalidInput, "no JSON document given",
						"Pass a file argument or pipe a document into stdin")
				}
				input, err = io.ReadAll(in)
				if err != nil {
					return opts.handleError(cmd, ErrFileReadError, fmt.Errorf("failed to read stdin: %w", err), "")
				}
			}

			projector := project.New(tree)

			var docs [][]byte
			if ndjson {
				docs, err = projectLines(projector, input)
			} else {
				var doc []byte
				doc, err = projector.Project(input)
				docs = [][]byte{doc}
			}
			if err != nil {
				var lerr *lineError
				if errors.As(err, &lerr) {
					return opts.handleErrorWithDetails(cmd, ErrDocumentFailed, err.Error(), "", map[string]int{"line": lerr.line})
				}
				return opts.handleError(cmd, ErrDocumentFailed, err, "")
			}

			if opts.jsonOutput && output == "" {
				if ndjson {
					raw := make([]json.RawMessage, len(docs))
					for i, doc := range docs {
						raw[i] = doc
					}
					outputSuccess(cmd, map[string][]json.RawMessage{"documents": raw}, &Meta{Count: len(raw)})
					return nil
				}
				outputSuccess(cmd, map[string]json.RawMessage{"document": docs[0]}, nil)
				return nil
			}

			var buf bytes.Buffer
			for _, doc := range docs {
				if compact || ndjson {
					buf.Write(doc)
				} else if err := json.Indent(&buf, doc, "", "  "); err != nil {
					return opts.handleError(cmd, ErrInternal, err, "")
				}
				buf.WriteByte('\n')
			}

			if output != "" {
				if err := atomicfile.WriteFile(output, buf.Bytes(), 0); err != nil {
					return opts.handleError(cmd, ErrFileWriteError, err, "")
				}
				if opts.jsonOutput {
					outputSuccess(cmd, map[string]string{"output": output}, &Meta{Count: len(docs)})
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Successf("Wrote %s to %s", ui.Count(len(docs), "document", "documents"), output))
				return nil
			}

			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "Print the document on a single line")
	cmd.Flags().BoolVar(&ndjson, "ndjson", false, "Treat each input line as a separate document")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to a file instead of stdout")
	return cmd
}

// lineError reports which input line failed in --ndjson mode.
type lineError struct {
	line int
	err  error
}

func (e *lineError) Error() string { return fmt.Sprintf("line %d: %v", e.line, e.err) }

func (e *lineError) Unwrap() error { return e.err }

// projectLines runs every non-blank line of input through p.
func projectLines(p *project.Projector, input []byte) ([][]byte, error) {
	var docs [][]byte
	for i, line := range bytes.Split(input, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		doc, err := p.Project(line)
		if err != nil {
			return nil, &lineError{line: i + 1, err: err}
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
