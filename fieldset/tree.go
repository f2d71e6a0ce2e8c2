package fieldset

import (
	"iter"
	"strings"
)

const (
	rootID = 0
	noNode = -1
)

// node is one entry in the arena. Names are byte offsets into Tree.source.
//
// Nodes are appended in input order, which is also pre-order: a node is
// created when its name is read, and all of its descendants are read before
// its next sibling. The subtree of node i is therefore the contiguous range
// [i, end).
type node struct {
	start, end  int
	parent      int
	firstChild  int
	lastChild   int
	nextSibling int
	subtreeEnd  int
}

// Tree is a parsed fields filter. It keeps the source string and refers to
// field names by offset, so no name is ever copied.
//
// A Tree is immutable and safe for concurrent use.
type Tree struct {
	source   string
	nodes    []node
	negation bool
}

func newTree(source string) *Tree {
	// A field needs at least two bytes of input ("a," or "a)"), which gives
	// a tight enough upper bound to avoid regrowing the arena.
	nodes := make([]node, 1, len(source)/2+1)
	nodes[rootID] = node{
		parent:      noNode,
		firstChild:  noNode,
		lastChild:   noNode,
		nextSibling: noNode,
		subtreeEnd:  1,
	}
	return &Tree{source: source, nodes: nodes}
}

func (t *Tree) appendChild(parent, start, end int) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		start:       start,
		end:         end,
		parent:      parent,
		firstChild:  noNode,
		lastChild:   noNode,
		nextSibling: noNode,
		subtreeEnd:  id + 1,
	})

	p := &t.nodes[parent]
	if p.lastChild == noNode {
		p.firstChild = id
	} else {
		t.nodes[p.lastChild].nextSibling = id
	}
	p.lastChild = id
	return id
}

func (t *Tree) closeGroup(id int) {
	t.nodes[id].subtreeEnd = len(t.nodes)
}

func (t *Tree) field(id int) Field {
	return Field{tree: t, id: id}
}

func (t *Tree) name(id int) string {
	n := &t.nodes[id]
	return t.source[n.start:n.end]
}

// Negation reports whether the filter started with "!", meaning the listed
// fields should be excluded rather than included.
func (t *Tree) Negation() bool {
	return t.negation
}

// Source returns the string the tree was parsed from.
func (t *Tree) Source() string {
	return t.source
}

// Len returns the number of fields in the tree.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

// Index looks up a field by its path of names from the top level. At every
// level the first child with a matching name wins, so for "(a(b),a(c))"
// Index("a", "c") reports false. An empty path reports false.
func (t *Tree) Index(path ...string) (Field, bool) {
	if len(path) == 0 {
		return Field{}, false
	}

	id := rootID
	for _, name := range path {
		match := noNode
		for c := t.nodes[id].firstChild; c != noNode; c = t.nodes[c].nextSibling {
			if t.name(c) == name {
				match = c
				break
			}
		}
		if match == noNode {
			return Field{}, false
		}
		id = match
	}
	return t.field(id), true
}

// Top iterates over the top-level fields in input order.
func (t *Tree) Top() iter.Seq[Field] {
	return t.children(rootID)
}

// Walk iterates over every field in pre-order: each field before its
// children, children in input order before the next sibling.
func (t *Tree) Walk() iter.Seq[Field] {
	return t.walkRange(rootID+1, len(t.nodes))
}

// Leaves iterates over the fields without children, in Walk order.
func (t *Tree) Leaves() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for id := rootID + 1; id < len(t.nodes); id++ {
			if t.nodes[id].firstChild != noNode {
				continue
			}
			if !yield(t.field(id)) {
				return
			}
		}
	}
}

// Paths iterates over every field in Walk order together with its path.
//
// The path slice is reused between iterations; clone it to keep it.
func (t *Tree) Paths() iter.Seq2[[]string, Field] {
	return func(yield func([]string, Field) bool) {
		var (
			ids  []int
			path []string
		)
		for id := rootID + 1; id < len(t.nodes); id++ {
			parent := t.nodes[id].parent
			for len(ids) > 0 && ids[len(ids)-1] != parent {
				ids = ids[:len(ids)-1]
				path = path[:len(path)-1]
			}
			ids = append(ids, id)
			path = append(path, t.name(id))
			if !yield(path[:len(path):len(path)], t.field(id)) {
				return
			}
		}
	}
}

func (t *Tree) children(id int) iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for c := t.nodes[id].firstChild; c != noNode; c = t.nodes[c].nextSibling {
			if !yield(t.field(c)) {
				return
			}
		}
	}
}

func (t *Tree) walkRange(from, to int) iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for id := from; id < to; id++ {
			if !yield(t.field(id)) {
				return
			}
		}
	}
}

// String renders the tree back into filter syntax. Since the grammar has a
// single spelling for every tree, the result equals the parsed input.
func (t *Tree) String() string {
	var b strings.Builder
	b.Grow(len(t.source))
	if t.negation {
		b.WriteByte('!')
	}
	b.WriteByte('(')

	open := []int{rootID}
	for id := rootID + 1; id < len(t.nodes); id++ {
		n := &t.nodes[id]
		for open[len(open)-1] != n.parent {
			b.WriteByte(')')
			open = open[:len(open)-1]
		}
		if t.nodes[n.parent].firstChild != id {
			b.WriteByte(',')
		}
		b.WriteString(t.source[n.start:n.end])
		if n.firstChild != noNode {
			b.WriteByte('(')
			open = append(open, id)
		}
	}
	for range open {
		b.WriteByte(')')
	}
	return b.String()
}
