package fieldset

import (
	"testing"
)

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		tokens []token
	}{
		{
			name:  "empty input",
			input: "",
			tokens: []token{
				{typ: tokenEOF, start: 0, end: 0},
			},
		},
		{
			name:  "punctuation",
			input: "!(,)",
			tokens: []token{
				{typ: tokenBang, start: 0, end: 1},
				{typ: tokenLParen, start: 1, end: 2},
				{typ: tokenComma, start: 2, end: 3},
				{typ: tokenRParen, start: 3, end: 4},
				{typ: tokenEOF, start: 4, end: 4},
			},
		},
		{
			name:  "name is greedy",
			input: "bio_2-x(",
			tokens: []token{
				{typ: tokenName, start: 0, end: 7},
				{typ: tokenLParen, start: 7, end: 8},
				{typ: tokenEOF, start: 8, end: 8},
			},
		},
		{
			name:  "whitespace is an error",
			input: "a b",
			tokens: []token{
				{typ: tokenName, start: 0, end: 1},
				{typ: tokenError, start: 1, end: 2},
				{typ: tokenName, start: 2, end: 3},
				{typ: tokenEOF, start: 3, end: 3},
			},
		},
		{
			name:  "dot and slash are errors",
			input: "a.b/",
			tokens: []token{
				{typ: tokenName, start: 0, end: 1},
				{typ: tokenError, start: 1, end: 2},
				{typ: tokenName, start: 2, end: 3},
				{typ: tokenError, start: 3, end: 4},
				{typ: tokenEOF, start: 4, end: 4},
			},
		},
		{
			name:  "leading dash is part of a name",
			input: "-(",
			tokens: []token{
				{typ: tokenName, start: 0, end: 1},
				{typ: tokenLParen, start: 1, end: 2},
				{typ: tokenEOF, start: 2, end: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &lexer{input: tt.input}
			for i, want := range tt.tokens {
				got := l.next()
				if got != want {
					t.Fatalf("token %d: got %+v, want %+v", i, got, want)
				}
			}
		})
	}
}

func TestLexerNonASCII(t *testing.T) {
	l := &lexer{input: "é"}
	tok := l.next()
	if tok.typ != tokenError || tok.start != 0 {
		t.Fatalf("got %+v, want error token at 0", tok)
	}
}

func TestIsValidName(t *testing.T) {
	valid := []string{
		"a",
		"A",
		"0",
		"_",
		"-",
		"abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_",
	}
	invalid := []string{"", "!", "abc/", "a b", "ä", "a.b"}

	for _, s := range valid {
		if !IsValidName(s) {
			t.Errorf("IsValidName(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidName(s) {
			t.Errorf("IsValidName(%q) = true, want false", s)
		}
	}
}
