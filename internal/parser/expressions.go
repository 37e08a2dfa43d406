package parser

import (
	"strconv"

	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/token"
)

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	v, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addErrorf(p.curToken.Pos, "could not parse %q as integer", p.curToken.Literal)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseBasedIntegerLiteral(base int) ast.Expression {
	v, err := strconv.ParseInt(p.curToken.Literal, base, 64)
	if err != nil {
		p.addErrorf(p.curToken.Pos, "could not parse %q as base-%d integer", p.curToken.Literal, base)
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseBinaryLiteral() ast.Expression { return p.parseBasedIntegerLiteral(2) }
func (p *Parser) parseOctalLiteral() ast.Expression  { return p.parseBasedIntegerLiteral(8) }
func (p *Parser) parseHexLiteral() ast.Expression    { return p.parseBasedIntegerLiteral(16) }

func (p *Parser) parseFloatLiteral() ast.Expression {
	v, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.addErrorf(p.curToken.Pos, "could not parse %q as float", p.curToken.Literal)
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: v}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Token: p.curToken}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Literal}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Token: p.curToken, Left: left, Operator: p.curToken.Literal}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	return expr
}

// parseMemberExpression parses `left.ident`. The right side is evaluated
// unevaluated by design (member access dispatches on the left operand's
// runtime value, not on a resolved identifier value) so it is required to
// be syntactically an identifier, never a general expression.
func (p *Parser) parseMemberExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Token: p.curToken, Left: left, Operator: "."}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	expr.Right = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	return expr
}

// parseAssignExpression validates that left is assignable (an identifier or
// a member-access infix) before consuming the right-hand side. The value is
// parsed at the same precedence as the assignment operator itself, so
// `a = b = c` is not supported — matching the reference parser it is
// grounded on, which has the identical limitation.
func (p *Parser) parseAssignExpression(left ast.Expression) ast.Expression {
	switch t := left.(type) {
	case *ast.Identifier:
	case *ast.InfixExpression:
		if t.Operator != "." {
			p.addErrorf(p.curToken.Pos, "invalid assignment target")
			return nil
		}
	default:
		p.addErrorf(p.curToken.Pos, "invalid assignment target")
		return nil
	}

	expr := &ast.AssignExpression{Token: p.curToken, Target: left, Operator: p.curToken.Literal}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Value = p.parseExpression(precedence)
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	expr.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}

// parseFunctionLiteral parses `fn name?(params) { body }`. A present name
// lets the literal refer to itself, and is required for methods in a class
// body (see parseClassStatement).
func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.curToken}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		lit.Name = p.curToken.Literal
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	params := []*ast.Identifier{}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.curToken}
	arr.Elements = p.parseExpressionList(token.RBRACKET)
	return arr
}

func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}
	return list
}

// parseHashLiteral parses `{ key: value (, key: value)* }`; a trailing
// comma before the closing brace is a parse error.
func (p *Parser) parseHashLiteral() ast.Expression {
	hash := &ast.HashLiteral{Token: p.curToken}

	for !p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		key := p.parseExpression(LOWEST)

		if !p.expectPeek(token.COLON) {
			return nil
		}

		p.nextToken()
		value := p.parseExpression(LOWEST)

		hash.Keys = append(hash.Keys, key)
		hash.Values = append(hash.Values, value)

		if !p.peekTokenIs(token.RBRACE) {
			if !p.expectPeek(token.COMMA) {
				return nil
			}
			if p.peekTokenIs(token.RBRACE) {
				p.addErrorf(p.peekToken.Pos, "trailing comma in hash literal")
				return nil
			}
		}
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return hash
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.curToken, Callee: callee}
	expr.Arguments = p.parseExpressionList(token.RPAREN)
	return expr
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.curToken, Left: left}
	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return expr
}

// parseNewExpression parses `new Class`, nothing more: it evaluates to the
// Class value itself. `new Class(args)` is not special syntax — it is an
// ordinary call whose callee happens to be this NewExpression, handled by
// parseCallExpression via the normal infix loop once this returns.
func (p *Parser) parseNewExpression() ast.Expression {
	expr := &ast.NewExpression{Token: p.curToken}
	p.nextToken()
	expr.Class = p.parseExpression(CALL)
	return expr
}

func (p *Parser) parseSelfExpression() ast.Expression  { return &ast.SelfExpression{Token: p.curToken} }
func (p *Parser) parseSuperExpression() ast.Expression { return &ast.SuperExpression{Token: p.curToken} }

func (p *Parser) parseAwaitExpression() ast.Expression {
	expr := &ast.AwaitExpression{Token: p.curToken}
	p.nextToken()
	expr.Expression = p.parseExpression(CALL)
	return expr
}

// parseYieldExpression parses `yield` or `yield expr`; a bare yield (the
// token immediately followed by ";") leaves Expression nil.
func (p *Parser) parseYieldExpression() ast.Expression {
	expr := &ast.YieldExpression{Token: p.curToken}
	p.nextToken()
	if !p.curTokenIs(token.SEMICOLON) {
		expr.Expression = p.parseExpression(YIELD)
	}
	return expr
}
