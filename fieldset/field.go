package fieldset

import (
	"iter"
	"strings"
)

// Field is a handle to one field occurrence in a Tree. Fields are small
// values; two Fields are == exactly when they refer to the same occurrence.
// The zero Field refers to nothing and must not be used except with IsZero.
type Field struct {
	tree *Tree
	id   int
}

// IsZero reports whether f is the zero Field.
func (f Field) IsZero() bool {
	return f.tree == nil
}

// Name returns the field name. It is a substring of the parsed source.
func (f Field) Name() string {
	return f.tree.name(f.id)
}

// Span returns the byte offsets of the field name within Tree.Source.
func (f Field) Span() (start, end int) {
	n := &f.tree.nodes[f.id]
	return n.start, n.end
}

// Parent returns the enclosing field. Top-level fields have none.
func (f Field) Parent() (Field, bool) {
	parent := f.tree.nodes[f.id].parent
	if parent == rootID {
		return Field{}, false
	}
	return f.tree.field(parent), true
}

// Children iterates over the direct children of f in input order.
func (f Field) Children() iter.Seq[Field] {
	return f.tree.children(f.id)
}

// HasChildren reports whether f has a nested field set.
func (f Field) HasChildren() bool {
	return f.tree.nodes[f.id].firstChild != noNode
}

// Walk iterates over f and all of its descendants in pre-order.
func (f Field) Walk() iter.Seq[Field] {
	return f.tree.walkRange(f.id, f.tree.nodes[f.id].subtreeEnd)
}

// Depth returns 1 for top-level fields, 2 for their children, and so on.
func (f Field) Depth() int {
	depth := 0
	for id := f.id; id != rootID; id = f.tree.nodes[id].parent {
		depth++
	}
	return depth
}

// Path returns the names from the top-level ancestor down to and including f.
func (f Field) Path() []string {
	path := make([]string, f.Depth())
	i := len(path) - 1
	for id := f.id; id != rootID; id = f.tree.nodes[id].parent {
		path[i] = f.tree.name(id)
		i--
	}
	return path
}

// String returns the dotted path of f, e.g. "bio.height.meters".
func (f Field) String() string {
	if f.IsZero() {
		return "<nil>"
	}
	return strings.Join(f.Path(), ".")
}
