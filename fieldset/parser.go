package fieldset

// Option configures Parse.
type Option func(*parseOptions)

type parseOptions struct {
	maxDepth int
}

// WithMaxDepth bounds how deeply field sets may nest. The top-level group
// counts as depth 1. Zero or a negative value means unbounded.
func WithMaxDepth(n int) Option {
	return func(o *parseOptions) {
		o.maxDepth = n
	}
}

// parser builds a Tree in a single left-to-right pass. Open groups live on
// an explicit stack instead of the call stack, so arbitrarily deep input
// cannot overflow the goroutine stack.
type parser struct {
	lexer    lexer
	curr     token
	tree     *Tree
	open     []int // node IDs whose child list is being parsed; 0 is the root
	maxDepth int
}

// Parse parses a fields filter such as "!(name,bio(age))" into a Tree.
//
// The whole input must match the grammar; on failure the returned error is
// an *UnparsableError and no Tree is returned.
func Parse(input string, opts ...Option) (*Tree, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	p := &parser{
		lexer:    lexer{input: input},
		tree:     newTree(input),
		maxDepth: o.maxDepth,
	}
	p.advance()

	if err := p.parseFields(); err != nil {
		return nil, err
	}
	return p.tree, nil
}

// MustParse is like Parse but panics if the input cannot be parsed.
func MustParse(input string, opts ...Option) *Tree {
	tree, err := Parse(input, opts...)
	if err != nil {
		panic(err)
	}
	return tree
}

func (p *parser) advance() {
	p.curr = p.lexer.next()
}

func (p *parser) fail() error {
	return &UnparsableError{Input: p.lexer.input, Offset: p.curr.start}
}

func (p *parser) expect(t tokenType) error {
	if p.curr.typ != t {
		return p.fail()
	}
	p.advance()
	return nil
}

// parseFields parses: [ "!" ] "(" field_items ")" EOF
func (p *parser) parseFields() error {
	if p.curr.typ == tokenBang {
		p.tree.negation = true
		p.advance()
	}

	if err := p.expect(tokenLParen); err != nil {
		return err
	}
	p.open = append(p.open, rootID)

	for {
		// field := field_name [ fields_struct ]
		if p.curr.typ != tokenName {
			return p.fail()
		}
		parent := p.open[len(p.open)-1]
		id := p.tree.appendChild(parent, p.curr.start, p.curr.end)
		p.advance()

		if p.curr.typ == tokenLParen {
			if p.maxDepth > 0 && len(p.open) >= p.maxDepth {
				return p.fail()
			}
			p.open = append(p.open, id)
			p.advance()
			continue
		}

		// Close as many groups as there are ')'.
		for p.curr.typ == tokenRParen {
			closed := p.open[len(p.open)-1]
			p.open = p.open[:len(p.open)-1]
			p.tree.closeGroup(closed)
			p.advance()
			if len(p.open) == 0 {
				return p.expect(tokenEOF)
			}
		}

		if err := p.expect(tokenComma); err != nil {
			return err
		}
	}
}
