package parser

import (
	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/token"
)

// parseClassStatement parses `class Name (: Superclass)? { body }`. The
// body is restricted to named-method function literals and `pass`
// statements; anything else records a parse error once the block is read.
func (p *Parser) parseClassStatement() ast.Statement {
	stmt := &ast.ClassStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		stmt.Superclass = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	p.validateClassBody(stmt.Body)

	return stmt
}

func (p *Parser) validateClassBody(body *ast.BlockStatement) {
	for _, s := range body.Statements {
		if _, ok := s.(*ast.PassStatement); ok {
			continue
		}
		exprStmt, ok := s.(*ast.ExpressionStatement)
		if !ok {
			p.addErrorf(body.Token.Pos, "class body may only contain methods and pass statements")
			continue
		}
		fn, ok := exprStmt.Expression.(*ast.FunctionLiteral)
		if !ok || fn.Name == "" {
			p.addErrorf(body.Token.Pos, "class body may only contain named methods and pass statements")
		}
	}
}
