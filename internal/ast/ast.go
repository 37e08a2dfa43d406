// Package ast defines the abstract syntax tree produced by the parser and
// consumed by the evaluator.
//
// Every node carries the token.Token that introduced it, purely for
// diagnostics — TokenLiteral() is never used by the evaluator to decide
// behavior, only to describe where a node came from.
package ast

import (
	"bytes"

	"github.com/cyber-lang/cyber/internal/token"
)

// Node is the root of the AST type hierarchy.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is a node that is executed for effect.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that evaluates to a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: a sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var buf bytes.Buffer
	for _, s := range p.Statements {
		buf.WriteString(s.String())
	}
	return buf.String()
}

// Identifier is both an expression (variable reference) and the name slot
// used by let-bindings, parameters, and class/function names.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
