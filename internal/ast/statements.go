package ast

import (
	"bytes"
	"strings"

	"github.com/cyber-lang/cyber/internal/token"
)

// LetStatement binds Value to Name in the innermost scope.
type LetStatement struct {
	Token token.Token
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) String() string {
	var buf bytes.Buffer
	buf.WriteString("let " + ls.Name.String() + " = ")
	if ls.Value != nil {
		buf.WriteString(ls.Value.String())
	}
	buf.WriteString(";")
	return buf.String()
}

// ReturnStatement wraps an optional return value; ReturnValue is nil for a
// bare `return`, which evaluates to NULL.
type ReturnStatement struct {
	Token       token.Token
	ReturnValue Expression
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	if rs.ReturnValue == nil {
		return "return;"
	}
	return "return " + rs.ReturnValue.String() + ";"
}

// ExpressionStatement wraps an expression evaluated for its value and effects.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

// BlockStatement is `{ statement* }`.
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) String() string {
	var buf bytes.Buffer
	buf.WriteString("{ ")
	for _, s := range bs.Statements {
		buf.WriteString(s.String())
	}
	buf.WriteString(" }")
	return buf.String()
}

// PassStatement is a true no-op.
type PassStatement struct {
	Token token.Token
}

func (ps *PassStatement) statementNode()       {}
func (ps *PassStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PassStatement) String() string       { return "pass;" }

// BreakStatement unwinds the nearest enclosing loop.
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) String() string       { return "break;" }

// ContinueStatement skips to the next iteration of the nearest enclosing loop.
type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) String() string       { return "continue;" }

// AssertStatement checks Condition at runtime; Message is nil for a bare
// `assert`.
type AssertStatement struct {
	Token     token.Token
	Condition Expression
	Message   Expression // nil if absent
}

func (as *AssertStatement) statementNode()       {}
func (as *AssertStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssertStatement) String() string {
	if as.Message == nil {
		return "assert " + as.Condition.String() + ";"
	}
	return "assert " + as.Condition.String() + ", " + as.Message.String() + ";"
}

// ImportStatement is `import "path";`. Parsed, never evaluated — modules are
// out of scope for evaluation.
type ImportStatement struct {
	Token token.Token
	Path  *StringLiteral
}

func (is *ImportStatement) statementNode()       {}
func (is *ImportStatement) TokenLiteral() string { return is.Token.Literal }
func (is *ImportStatement) String() string       { return "import " + is.Path.String() }

// FromImportStatement is `from "path" import a, b, ...;` or `from "path" import *;`.
// Parsed, never evaluated.
type FromImportStatement struct {
	Token   token.Token
	Path    *StringLiteral
	Imports []*Identifier // a single Identifier with Value "*" for the wildcard form
}

func (fi *FromImportStatement) statementNode()       {}
func (fi *FromImportStatement) TokenLiteral() string { return fi.Token.Literal }
func (fi *FromImportStatement) String() string {
	names := make([]string, len(fi.Imports))
	for i, n := range fi.Imports {
		names[i] = n.String()
	}
	return "from " + fi.Path.String() + " import " + strings.Join(names, ", ")
}

// RaiseStatement is `raise Expression;`. Parsed, never evaluated.
type RaiseStatement struct {
	Token      token.Token
	Expression Expression
}

func (rs *RaiseStatement) statementNode()       {}
func (rs *RaiseStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *RaiseStatement) String() string       { return "raise " + rs.Expression.String() + ";" }

// TryStatement is `try { } except? { } finally? { }`. Both ExceptBlock and
// FinallyBlock are nil-able — the grammar has no `except (name)` binding
// form, so the caught value (if this were ever evaluated) would be unnamed.
// Parsed, never evaluated.
type TryStatement struct {
	Token        token.Token
	Block        *BlockStatement
	ExceptBlock  *BlockStatement // nil if absent
	FinallyBlock *BlockStatement // nil if absent
}

func (ts *TryStatement) statementNode()       {}
func (ts *TryStatement) TokenLiteral() string { return ts.Token.Literal }
func (ts *TryStatement) String() string {
	out := "try " + ts.Block.String()
	if ts.ExceptBlock != nil {
		out += " except " + ts.ExceptBlock.String()
	}
	if ts.FinallyBlock != nil {
		out += " finally " + ts.FinallyBlock.String()
	}
	return out
}

// WithStatement is `with Expression { body }`. Parsed, never evaluated.
type WithStatement struct {
	Token      token.Token
	Expression Expression
	Body       *BlockStatement
}

func (ws *WithStatement) statementNode()       {}
func (ws *WithStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WithStatement) String() string {
	return "with " + ws.Expression.String() + " " + ws.Body.String()
}

// AsyncStatement wraps a single statement, which evaluates to completion
// sequentially, with no real concurrency.
type AsyncStatement struct {
	Token     token.Token
	Statement Statement
}

func (as *AsyncStatement) statementNode()       {}
func (as *AsyncStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AsyncStatement) String() string       { return "async " + as.Statement.String() }
