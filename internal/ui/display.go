package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is used when the output is not a terminal.
const DefaultTermWidth = 100

// minMarkdownWidth keeps wrapped grammar tables readable on narrow terminals.
const minMarkdownWidth = 40

// DisplayContext describes where rendered output is going.
type DisplayContext struct {
	TermWidth int
	IsTTY     bool
}

// NewDisplayContext inspects w. Anything other than an *os.File attached to
// a terminal is treated as a plain pipe.
func NewDisplayContext(w io.Writer) DisplayContext {
	d := DisplayContext{TermWidth: DefaultTermWidth}

	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return d
	}
	d.IsTTY = true
	if width, _, err := term.GetSize(f.Fd()); err == nil && width > 0 {
		d.TermWidth = width
	}
	return d
}

// MarkdownWidth is the wrap width left after the document margins.
func (d DisplayContext) MarkdownWidth() int {
	return max(d.TermWidth-2*MarkdownRenderMargin, minMarkdownWidth)
}
