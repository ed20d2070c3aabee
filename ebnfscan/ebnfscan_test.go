package ebnfscan

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/scan"
)

const operatorGrammar = `
Number = digit { digit } .
Assign = "=" .
Equals = "==" .
Arrow  = "->" .
Space  = " " { " " } .
digit  = "0" … "9" .
`

func mustGrammar(t *testing.T, src string) ebnf.Grammar {
	t.Helper()
	g, err := ebnf.Parse("test.ebnf", strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	return g
}

func TestClassifierLongestMatch(t *testing.T) {
	g := mustGrammar(t, operatorGrammar)

	tests := []struct {
		input  string
		want   string
		cursor int
	}{
		{"= 1", "Assign", 1},
		{"=1", "Assign", 1},
		{"== 1", "Equals", 2},
		{"-> x", "Arrow", 2},
		{"7", "Number", 1},
		{"123+", "Number", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := scan.New(tt.input)
			got, ok, err := scan.Scan(s, Classifier(g))
			if err != nil {
				t.Fatalf("Scan() error = %v, want nil", err)
			}
			if !ok || got != tt.want {
				t.Errorf("Scan() = %q, %v, want %q, true", got, ok, tt.want)
			}
			if s.Cursor() != tt.cursor {
				t.Errorf("Cursor() = %d, want %d", s.Cursor(), tt.cursor)
			}
		})
	}
}

func TestClassifierRequiredContinuation(t *testing.T) {
	g := mustGrammar(t, operatorGrammar)

	t.Run("broken mid-token", func(t *testing.T) {
		s := scan.New("-x")
		_, _, err := scan.Scan(s, Classifier(g))
		var charErr *scan.InvalidCharacterError
		if !errors.As(err, &charErr) {
			t.Fatalf("Scan() error = %v, want InvalidCharacterError", err)
		}
		if charErr.Cursor != 1 {
			t.Errorf("Cursor = %d, want 1", charErr.Cursor)
		}
	})

	t.Run("input runs out", func(t *testing.T) {
		s := scan.New("-")
		_, _, err := scan.Scan(s, Classifier(g))
		if !errors.Is(err, scan.ErrEndOfInput) {
			t.Fatalf("Scan() error = %v, want ErrEndOfInput", err)
		}
	})
}

func TestClassifierNoMatch(t *testing.T) {
	g := mustGrammar(t, operatorGrammar)
	s := scan.New("?")
	_, ok, err := scan.Scan(s, Classifier(g))
	if err != nil {
		t.Fatalf("Scan() error = %v, want nil", err)
	}
	if ok {
		t.Error("Scan() ok = true, want false")
	}
	if s.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", s.Cursor())
	}
}

func TestTokenizer(t *testing.T) {
	g := mustGrammar(t, operatorGrammar)
	tokens, err := NewTokenizer(g, "12 == 3").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v, want nil", err)
	}

	want := []Token{
		{Kind: "Number", Literal: "12", Offset: 0},
		{Kind: "Space", Literal: " ", Offset: 2},
		{Kind: "Equals", Literal: "==", Offset: 3},
		{Kind: "Space", Literal: " ", Offset: 5},
		{Kind: "Number", Literal: "3", Offset: 6},
		{Kind: "EOF", Offset: 7},
	}

	if len(tokens) != len(want) {
		t.Fatalf("Tokenize() produced %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d = %v, want %v", i, tok, want[i])
		}
	}
}

func TestTokenizerErrorToken(t *testing.T) {
	g := mustGrammar(t, operatorGrammar)
	tokens, err := NewTokenizer(g, "1?2").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v, want nil", err)
	}

	want := []Token{
		{Kind: "Number", Literal: "1", Offset: 0},
		{Kind: "ERROR", Literal: "?", Offset: 1},
		{Kind: "Number", Literal: "2", Offset: 2},
		{Kind: "EOF", Offset: 3},
	}

	if len(tokens) != len(want) {
		t.Fatalf("Tokenize() produced %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d = %v, want %v", i, tok, want[i])
		}
	}
}

func TestTokenizerUnterminated(t *testing.T) {
	g := mustGrammar(t, `
Str    = "\"" { letter } "\"" .
letter = "a" … "z" .
`)
	_, err := NewTokenizer(g, "\"ab").Tokenize()
	if !errors.Is(err, scan.ErrEndOfInput) {
		t.Fatalf("Tokenize() error = %v, want ErrEndOfInput", err)
	}
}

func TestTokenizerRecursiveProduction(t *testing.T) {
	g := mustGrammar(t, `Y = "y" Y | "y" .`)
	tokens, err := NewTokenizer(g, "yyy").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v, want nil", err)
	}
	if len(tokens) != 2 || tokens[0].Kind != "Y" || tokens[0].Literal != "yyy" {
		t.Errorf("Tokenize() = %v, want a single Y token spanning the input", tokens)
	}
}

func TestTokenizerCharacterOffsets(t *testing.T) {
	g := mustGrammar(t, `Heart = "♥" .`)
	tokens, err := NewTokenizer(g, "♥♥").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v, want nil", err)
	}

	want := []Token{
		{Kind: "Heart", Literal: "♥", Offset: 0},
		{Kind: "Heart", Literal: "♥", Offset: 1},
		{Kind: "EOF", Offset: 2},
	}

	if len(tokens) != len(want) {
		t.Fatalf("Tokenize() produced %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok != want[i] {
			t.Errorf("token %d = %v, want %v", i, tok, want[i])
		}
	}
}

func TestClassifierDeterministicTie(t *testing.T) {
	// Two productions match "x" completely; the alphabetically first
	// name wins.
	g := mustGrammar(t, `
B = "x" .
A = "x" .
`)
	s := scan.New("x")
	got, ok, err := scan.Scan(s, Classifier(g))
	if err != nil || !ok {
		t.Fatalf("Scan() = %v, %v, want a value", err, ok)
	}
	if got != "A" {
		t.Errorf("Scan() = %q, want %q", got, "A")
	}
}
