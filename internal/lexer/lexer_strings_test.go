package lexer

import (
	"testing"

	"github.com/cyber-lang/cyber/internal/token"
)

func TestStringLiteralsBothQuotes(t *testing.T) {
	l := New(`'hello' "world"`)

	tok := l.NextToken()
	if tok.Type != token.STRING || tok.Literal != "hello" {
		t.Fatalf("got %s %q, want STRING hello", tok.Type, tok.Literal)
	}

	tok = l.NextToken()
	if tok.Type != token.STRING || tok.Literal != "world" {
		t.Fatalf("got %s %q, want STRING world", tok.Type, tok.Literal)
	}
}

func TestStringLiteralNoEscapeDecoding(t *testing.T) {
	l := New(`"a\nb"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("got %s, want STRING", tok.Type)
	}
	if tok.Literal != `a\nb` {
		t.Fatalf("got %q, want the raw backslash-n preserved", tok.Literal)
	}
}

func TestUnterminatedStringRecordsError(t *testing.T) {
	l := New(`"unterminated`)
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("got %s, want ILLEGAL", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(l.Errors()))
	}
}
