package formula

import "testing"

func TestLexerTokenizesBasicFormula(t *testing.T) {
	tokens, err := NewLexer("A1+2.5*SUM(B1,B2)").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []TokenType{
		TokenCell, TokenOp, TokenNumber, TokenOp, TokenIdentifier, TokenLeftParen,
		TokenCell, TokenComma, TokenCell, TokenRightParen, TokenEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(tokens), len(want), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token[%d].Type = %v, want %v (text %q)", i, tokens[i].Type, tt, tokens[i].Text)
		}
	}
}

func TestLexerTokenizesComparisonOperators(t *testing.T) {
	cases := map[string]string{
		"A1=B1":  "=",
		"A1<>B1": "<>",
		"A1<B1":  "<",
		"A1<=B1": "<=",
		"A1>B1":  ">",
		"A1>=B1": ">=",
	}
	for src, opText := range cases {
		t.Run(src, func(t *testing.T) {
			tokens, err := NewLexer(src).Tokenize()
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", src, err)
			}
			if tokens[1].Type != TokenOp || tokens[1].Text != opText {
				t.Errorf("tokens[1] = %+v, want op %q", tokens[1], opText)
			}
		})
	}
}

func TestLexerFunctionNameUpperCased(t *testing.T) {
	tokens, err := NewLexer("sum(A1)").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if tokens[0].Type != TokenIdentifier || tokens[0].Text != "SUM" {
		t.Errorf("tokens[0] = %+v, want identifier SUM", tokens[0])
	}
}

func TestLexerRejectsUnknownCharacter(t *testing.T) {
	if _, err := NewLexer("A1 & B1").Tokenize(); err == nil {
		t.Fatal("expected a lex error for '&'")
	}
}

func TestLexerSkipsWhitespace(t *testing.T) {
	tokens, err := NewLexer("  A1   +   1  ").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(tokens), tokens)
	}
}
