package ui

import (
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/glennib/z157/fieldset"
)

// RenderFieldTree draws a parsed filter as an indented tree:
//
//	(…)
//	├── name
//	╰── bio
//	    ├── height
//	    ╰── age
//
// Negated filters get a "!(…)" root. Field groups use the accent style.
func RenderFieldTree(t *fieldset.Tree) string {
	label := "(…)"
	if t.Negation() {
		label = "!(…)"
	}

	// The enumerator style also renders the gap after each branch glyph.
	guides := Muted.MarginRight(1)

	root := tree.Root(Accent.Render(label)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(guides)

	// Walk is pre-order, so a field's parent is always built before it.
	groups := make(map[fieldset.Field]*tree.Tree)
	for field := range t.Walk() {
		attach := root
		if parent, ok := field.Parent(); ok {
			attach = groups[parent]
		}

		if !field.HasChildren() {
			attach.Child(field.Name())
			continue
		}
		group := tree.Root(Accent.Render(field.Name())).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(guides)
		groups[field] = group
		attach.Child(group)
	}

	return root.String()
}
