package lexer

import (
	"testing"

	"github.com/cyber-lang/cyber/internal/token"
)

func TestOperatorDisambiguation(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Type
	}{
		{"= == += -= *= /= %= //= + - * ** / // %", []token.Type{
			token.ASSIGN, token.EQ, token.PLUS_ASSIGN, token.MINUS_ASSIGN,
			token.STAR_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN, token.FSLASH_ASSIGN,
			token.PLUS, token.MINUS, token.STAR, token.STARSTAR, token.SLASH, token.FSLASH, token.PERCENT,
		}},
		{"< <= > >= != ! & | ^ ~ << >>", []token.Type{
			token.LT, token.LE, token.GT, token.GE, token.NOT_EQ, token.BANG,
			token.AMP, token.PIPE, token.CARET, token.TILDE, token.SHL, token.SHR,
		}},
		{"( ) { } [ ] , ; : . @", []token.Type{
			token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
			token.LBRACKET, token.RBRACKET, token.COMMA, token.SEMICOLON,
			token.COLON, token.DOT, token.AT,
		}},
	}

	for _, tt := range tests {
		l := New(tt.input)
		for i, want := range tt.want {
			tok := l.NextToken()
			if tok.Type != want {
				t.Fatalf("input %q token %d: got %s, want %s", tt.input, i, tok.Type, want)
			}
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("$")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL || tok.Literal != "$" {
		t.Fatalf("got %s %q, want ILLEGAL $", tok.Type, tok.Literal)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(l.Errors()))
	}
}
