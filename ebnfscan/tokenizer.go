package ebnfscan

import (
	"fmt"
	"io"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/scan"
)

// Token is a lexical token produced by a Tokenizer. Offset is the
// character offset of the token's first character in the input.
type Token struct {
	Kind    string
	Literal string
	Offset  int
}

func (t Token) String() string {
	return fmt.Sprintf("%d %s %q", t.Offset, t.Kind, t.Literal)
}

// Tokenizer splits an input string into tokens according to the token
// productions of an EBNF grammar.
type Tokenizer struct {
	scanner  *scan.Scanner
	classify scan.Classify[string]
	input    []rune
}

// NewTokenizer creates a tokenizer for the given grammar and input.
func NewTokenizer(g ebnf.Grammar, input string) *Tokenizer {
	return &Tokenizer{
		scanner:  scan.New(input),
		classify: Classifier(g),
		input:    []rune(input),
	}
}

// Next returns the next token from the input. Exhaustion is signalled by
// an EOF token together with io.EOF. A character that no token production
// can begin with is emitted as an ERROR token so that tokenization can
// continue past it. A token whose required continuation breaks off
// mid-way is a hard failure carrying the offset of the offending
// character.
func (t *Tokenizer) Next() (Token, error) {
	if t.scanner.IsDone() {
		return Token{Kind: "EOF", Offset: t.scanner.Cursor()}, io.EOF
	}

	start := t.scanner.Cursor()
	kind, ok, err := scan.Scan(t.scanner, t.classify)
	if err != nil {
		return Token{}, err
	}
	if !ok {
		ch, _ := t.scanner.Pop()
		return Token{Kind: "ERROR", Literal: string(ch), Offset: start}, nil
	}

	end := t.scanner.Cursor()
	return Token{
		Kind:    kind,
		Literal: string(t.input[start:end]),
		Offset:  start,
	}, nil
}

// Tokenize reads all tokens from the input, including the final EOF
// token.
func (t *Tokenizer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := t.Next()
		if err == io.EOF {
			tokens = append(tokens, tok)
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}
