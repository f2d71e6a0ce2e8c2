package ui

import (
	"bytes"
	"testing"
)

func TestNewDisplayContextNonTerminal(t *testing.T) {
	d := NewDisplayContext(&bytes.Buffer{})
	if d.IsTTY {
		t.Fatal("expected buffer to be treated as non-TTY")
	}
	if d.TermWidth != DefaultTermWidth {
		t.Errorf("expected default width %d, got %d", DefaultTermWidth, d.TermWidth)
	}
}

func TestMarkdownWidth(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{width: 100, want: 100 - 2*MarkdownRenderMargin},
		{width: 42, want: minMarkdownWidth},
		{width: 0, want: minMarkdownWidth},
	}

	for _, tt := range tests {
		d := DisplayContext{TermWidth: tt.width}
		if got := d.MarkdownWidth(); got != tt.want {
			t.Errorf("MarkdownWidth() with width %d = %d, want %d", tt.width, got, tt.want)
		}
	}
}
