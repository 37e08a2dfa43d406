// Package parser implements a Pratt (precedence-climbing) parser for cyber
// source, producing an internal/ast tree from an internal/lexer token stream.
//
// Parsing never aborts on the first error: malformed statements and
// expressions are recorded in Errors() and parsing continues on a
// best-effort basis rather than panicking and recovering.
package parser

import (
	"fmt"

	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/lexer"
	"github.com/cyber-lang/cyber/internal/token"
)

// Precedence levels, lowest to highest. Named exactly after the ladder:
// LOWEST, ASSIGN, YIELD, LOGICAL, EQUALS, LESSGREATER, BITWISE, SUM,
// PRODUCT, PREFIX, CALL (both `(` and `.`), INDEX.
//
// BITWISE is the tier for the infix operators `& | ^ << >>`, which are
// wired into both the precedence table and the infix parselet registry; it
// sits between comparisons and additive operators, the conventional
// C-family slot.
const (
	_ int = iota
	LOWEST
	ASSIGN      // = += -= *= /= %= //=
	YIELD       // yield
	LOGICAL     // reserved for a future and/or operator; unused today
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	BITWISE     // & | ^ << >>
	SUM         // + -
	PRODUCT     // * / // % **
	PREFIX      // -x !x ~x
	CALL        // f(args), a.b
	INDEX       // a[i]
)

var precedences = map[token.Type]int{
	token.ASSIGN:         ASSIGN,
	token.PLUS_ASSIGN:    ASSIGN,
	token.MINUS_ASSIGN:   ASSIGN,
	token.STAR_ASSIGN:    ASSIGN,
	token.SLASH_ASSIGN:   ASSIGN,
	token.PERCENT_ASSIGN: ASSIGN,
	token.FSLASH_ASSIGN:  ASSIGN,
	token.EQ:             EQUALS,
	token.NOT_EQ:         EQUALS,
	token.LT:             LESSGREATER,
	token.LE:             LESSGREATER,
	token.GT:             LESSGREATER,
	token.GE:             LESSGREATER,
	token.AMP:            BITWISE,
	token.PIPE:           BITWISE,
	token.CARET:          BITWISE,
	token.SHL:            BITWISE,
	token.SHR:            BITWISE,
	token.PLUS:           SUM,
	token.MINUS:          SUM,
	token.STAR:           PRODUCT,
	token.STARSTAR:       PRODUCT,
	token.SLASH:          PRODUCT,
	token.FSLASH:         PRODUCT,
	token.PERCENT:        PRODUCT,
	token.LPAREN:         CALL,
	token.DOT:            CALL,
	token.LBRACKET:       INDEX,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser turns a token stream into an *ast.Program.
type Parser struct {
	l      *lexer.Lexer
	errors []*ParseError

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New builds a Parser reading from l and primes curToken/peekToken.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.BINARY, p.parseBinaryLiteral)
	p.registerPrefix(token.OCTAL, p.parseOctalLiteral)
	p.registerPrefix(token.HEX, p.parseHexLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NULL, p.parseNullLiteral)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.TILDE, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FN, p.parseFunctionLiteral)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(token.LBRACE, p.parseHashLiteral)
	p.registerPrefix(token.NEW, p.parseNewExpression)
	p.registerPrefix(token.SELF, p.parseSelfExpression)
	p.registerPrefix(token.SUPER, p.parseSuperExpression)
	p.registerPrefix(token.AWAIT, p.parseAwaitExpression)
	p.registerPrefix(token.YIELD, p.parseYieldExpression)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	for _, tt := range []token.Type{
		token.PLUS, token.MINUS, token.STAR, token.STARSTAR, token.SLASH, token.FSLASH, token.PERCENT,
		token.EQ, token.NOT_EQ, token.LT, token.LE, token.GT, token.GE,
		token.AMP, token.PIPE, token.CARET, token.SHL, token.SHR,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	for _, tt := range []token.Type{
		token.ASSIGN, token.PLUS_ASSIGN, token.MINUS_ASSIGN,
		token.STAR_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN, token.FSLASH_ASSIGN,
	} {
		p.registerInfix(tt, p.parseAssignExpression)
	}
	p.registerInfix(token.DOT, p.parseMemberExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every parse error accumulated so far.
func (p *Parser) Errors() []*ParseError { return p.errors }

func (p *Parser) registerPrefix(tt token.Type, fn prefixParseFn) { p.prefixParseFns[tt] = fn }
func (p *Parser) registerInfix(tt token.Type, fn infixParseFn)   { p.infixParseFns[tt] = fn }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(tt token.Type) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt token.Type) bool { return p.peekToken.Type == tt }

// expectPeek advances past peekToken if it matches tt, else records an error.
func (p *Parser) expectPeek(tt token.Type) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) peekError(tt token.Type) {
	p.errors = append(p.errors, &ParseError{
		Message: fmt.Sprintf("expected next token to be %s, got %s instead", tt, p.peekToken.Type),
		Pos:     p.peekToken.Pos,
	})
}

func (p *Parser) addErrorf(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos})
}

func (p *Parser) noPrefixParseFnError(tt token.Type) {
	p.addErrorf(p.curToken.Pos, "no prefix parse function for %s found", tt)
}

// ParseProgram consumes the whole token stream, accumulating statements and
// errors, and returns the resulting AST (always non-nil, even on error).
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	for _, le := range p.l.Errors() {
		p.errors = append(p.errors, &ParseError{Message: le.Message, Pos: le.Pos})
	}

	return program
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}
