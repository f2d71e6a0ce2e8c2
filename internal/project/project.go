// Package project applies a fields filter to JSON documents.
package project

import (
	"fmt"
	"slices"

	"github.com/valyala/fastjson"

	"github.com/glennib/z157/fieldset"
)

// Projector applies one parsed filter to many documents. It is safe for
// concurrent use.
//
// Without negation only the requested fields are kept; a field without
// children keeps its whole value. With negation the leaf fields are removed
// and everything else is kept. Arrays are projected element by element and
// paths that do not exist in a document are ignored.
type Projector struct {
	tree    *fieldset.Tree
	parsers fastjson.ParserPool
	arenas  fastjson.ArenaPool
}

// New returns a Projector for tree.
func New(tree *fieldset.Tree) *Projector {
	return &Projector{tree: tree}
}

// Project returns the compact JSON encoding of doc after filtering.
func (p *Projector) Project(doc []byte) ([]byte, error) {
	parser := p.parsers.Get()
	defer p.parsers.Put(parser)

	v, err := parser.ParseBytes(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON document: %w", err)
	}

	top := slices.Collect(p.tree.Top())
	if p.tree.Negation() {
		exclude(v, top)
		return v.MarshalTo(nil), nil
	}

	arena := p.arenas.Get()
	defer func() {
		arena.Reset()
		p.arenas.Put(arena)
	}()
	return include(arena, v, top).MarshalTo(nil), nil
}

// selection merges sibling fields that share a name, so "(a(b),a(c))" selects
// both a.b and a.c.
type selection struct {
	name     string
	whole    bool
	children []fieldset.Field
}

func group(fields []fieldset.Field) []selection {
	var out []selection
	for _, f := range fields {
		i := slices.IndexFunc(out, func(s selection) bool { return s.name == f.Name() })
		if i < 0 {
			out = append(out, selection{name: f.Name()})
			i = len(out) - 1
		}
		if !f.HasChildren() {
			out[i].whole = true
			continue
		}
		out[i].children = slices.AppendSeq(out[i].children, f.Children())
	}
	return out
}

func include(a *fastjson.Arena, v *fastjson.Value, fields []fieldset.Field) *fastjson.Value {
	switch v.Type() {
	case fastjson.TypeArray:
		arr := a.NewArray()
		for i, item := range v.GetArray() {
			arr.SetArrayItem(i, include(a, item, fields))
		}
		return arr
	case fastjson.TypeObject:
		obj := a.NewObject()
		for _, sel := range group(fields) {
			child := v.Get(sel.name)
			if child == nil {
				continue
			}
			if !sel.whole {
				child = include(a, child, sel.children)
			}
			obj.Set(sel.name, child)
		}
		return obj
	default:
		// A scalar where a nested field set was requested has nothing to
		// narrow down.
		return v
	}
}

func exclude(v *fastjson.Value, fields []fieldset.Field) {
	switch v.Type() {
	case fastjson.TypeArray:
		for _, item := range v.GetArray() {
			exclude(item, fields)
		}
	case fastjson.TypeObject:
		for _, f := range fields {
			if !f.HasChildren() {
				// Del drops one member per call and documents may repeat keys.
				for v.Exists(f.Name()) {
					v.Del(f.Name())
				}
				continue
			}
			if child := v.Get(f.Name()); child != nil {
				exclude(child, slices.Collect(f.Children()))
			}
		}
	}
}
