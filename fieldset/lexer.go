package fieldset

// tokenType represents the type of a lexer token.
type tokenType int

const (
	tokenEOF    tokenType = iota
	tokenName             // run of [A-Za-z0-9_-]
	tokenBang             // !
	tokenLParen           // (
	tokenRParen           // )
	tokenComma            // ,
	tokenError            // any other byte
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "end of input"
	case tokenName:
		return "field name"
	case tokenBang:
		return "'!'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenComma:
		return "','"
	default:
		return "invalid character"
	}
}

// token is a half-open byte range [start, end) of the input.
type token struct {
	typ   tokenType
	start int
	end   int
}

// lexer tokenizes a fields filter. Unlike most lexers it never skips
// whitespace: a space is an error token like any other stray byte.
type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() token {
	if l.pos >= len(l.input) {
		return token{typ: tokenEOF, start: l.pos, end: l.pos}
	}

	start := l.pos
	ch := l.input[l.pos]

	switch ch {
	case '!':
		l.pos++
		return token{typ: tokenBang, start: start, end: l.pos}
	case '(':
		l.pos++
		return token{typ: tokenLParen, start: start, end: l.pos}
	case ')':
		l.pos++
		return token{typ: tokenRParen, start: start, end: l.pos}
	case ',':
		l.pos++
		return token{typ: tokenComma, start: start, end: l.pos}
	default:
		if isNameChar(ch) {
			return l.scanName()
		}
		// Error tokens always start on a byte boundary the caller can slice
		// from, and parsing stops at the first one.
		l.pos++
		return token{typ: tokenError, start: start, end: l.pos}
	}
}

func (l *lexer) scanName() token {
	start := l.pos
	for l.pos < len(l.input) && isNameChar(l.input[l.pos]) {
		l.pos++
	}
	return token{typ: tokenName, start: start, end: l.pos}
}

func isNameChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_' ||
		ch == '-'
}

// IsValidName reports whether s could appear as a field name in a filter.
func IsValidName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNameChar(s[i]) {
			return false
		}
	}
	return true
}
