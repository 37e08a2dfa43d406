package ast

import (
	"bytes"
	"strings"

	"github.com/cyber-lang/cyber/internal/token"
)

// IntegerLiteral covers plain-decimal and alternate-base (binary/octal/hex)
// integer literals alike — the base is implied by token.Type, but the
// evaluator always produces an Integer value regardless of base.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }

// FloatLiteral is a decimal floating-point literal.
type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FloatLiteral) String() string       { return fl.Token.Literal }

// StringLiteral holds the raw characters between the quotes, unescaped.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return sl.Token.Literal }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }

// NullLiteral is `null`.
type NullLiteral struct {
	Token token.Token
}

func (nl *NullLiteral) expressionNode()      {}
func (nl *NullLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NullLiteral) String() string       { return "null" }

// PrefixExpression is a unary operator applied to a right operand: !x, -x, ~x.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + pe.Right.String() + ")"
}

// InfixExpression is a binary operator applied to two operands. Operator
// also covers member access (".") whose Right must be an *Identifier.
type InfixExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + ie.Operator + " " + ie.Right.String() + ")"
}

// AssignExpression assigns Value to Target. Target is either an *Identifier
// or an *InfixExpression with Operator "." (member access).
type AssignExpression struct {
	Token    token.Token
	Target   Expression
	Operator string // "=", "+=", "-=", "*=", "/=", "%=", "//="
	Value    Expression
}

func (ae *AssignExpression) expressionNode()      {}
func (ae *AssignExpression) TokenLiteral() string { return ae.Token.Literal }
func (ae *AssignExpression) String() string {
	return "(" + ae.Target.String() + " " + ae.Operator + " " + ae.Value.String() + ")"
}

// ArrayLiteral is a bracketed, comma-separated list of expressions.
type ArrayLiteral struct {
	Token    token.Token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) String() string {
	elems := make([]string, len(al.Elements))
	for i, e := range al.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// IndexExpression is `Left[Index]`.
type IndexExpression struct {
	Token token.Token
	Left  Expression
	Index Expression
}

func (ix *IndexExpression) expressionNode()      {}
func (ix *IndexExpression) TokenLiteral() string { return ix.Token.Literal }
func (ix *IndexExpression) String() string {
	return "(" + ix.Left.String() + "[" + ix.Index.String() + "])"
}

// HashLiteral is an ordered mapping literal `{key: value, ...}`. Keys and
// Values are parallel slices in source order, since hash iteration order is
// insertion order.
type HashLiteral struct {
	Token token.Token
	Keys  []Expression
	Values []Expression
}

func (hl *HashLiteral) expressionNode()      {}
func (hl *HashLiteral) TokenLiteral() string { return hl.Token.Literal }
func (hl *HashLiteral) String() string {
	pairs := make([]string, len(hl.Keys))
	for i := range hl.Keys {
		pairs[i] = hl.Keys[i].String() + ": " + hl.Values[i].String()
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// IfExpression is expression-valued: without Alternative, a missing branch
// evaluates to NULL.
type IfExpression struct {
	Token       token.Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (ie *IfExpression) expressionNode()      {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IfExpression) String() string {
	var buf bytes.Buffer
	buf.WriteString("if")
	buf.WriteString(ie.Condition.String())
	buf.WriteString(" ")
	buf.WriteString(ie.Consequence.String())
	if ie.Alternative != nil {
		buf.WriteString("else ")
		buf.WriteString(ie.Alternative.String())
	}
	return buf.String()
}

// FunctionLiteral is `fn name?(params) { body }`. Name is non-empty when the
// literal is self-referential (named function expression) or appears as a
// method inside a class body, where it names the method.
type FunctionLiteral struct {
	Token      token.Token
	Name       string
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FunctionLiteral) String() string {
	params := make([]string, len(fl.Parameters))
	for i, p := range fl.Parameters {
		params[i] = p.String()
	}
	var buf bytes.Buffer
	buf.WriteString("fn")
	if fl.Name != "" {
		buf.WriteString(" " + fl.Name)
	}
	buf.WriteString("(" + strings.Join(params, ", ") + ") ")
	buf.WriteString(fl.Body.String())
	return buf.String()
}

// CallExpression is `Callee(Arguments...)`.
type CallExpression struct {
	Token     token.Token
	Callee    Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	args := make([]string, len(ce.Arguments))
	for i, a := range ce.Arguments {
		args[i] = a.String()
	}
	return ce.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// NewExpression is `new Class`; it evaluates to the Class value itself.
// Instantiation happens when the result is called — `new Class(args)`
// parses as a CallExpression whose Callee is this NewExpression, so the
// ordinary call-dispatch rules (see the evaluator's calls) do the rest.
type NewExpression struct {
	Token token.Token
	Class Expression
}

func (ne *NewExpression) expressionNode()      {}
func (ne *NewExpression) TokenLiteral() string { return ne.Token.Literal }
func (ne *NewExpression) String() string       { return "new " + ne.Class.String() }

// SelfExpression is the `self` keyword, resolved at method-call time.
type SelfExpression struct {
	Token token.Token
}

func (se *SelfExpression) expressionNode()      {}
func (se *SelfExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SelfExpression) String() string       { return "self" }

// SuperExpression is the `super` keyword, bound at method-call time.
type SuperExpression struct {
	Token token.Token
}

func (se *SuperExpression) expressionNode()      {}
func (se *SuperExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SuperExpression) String() string       { return "super" }

// AwaitExpression is `await Expression`, evaluated as identity on non-async
// values.
type AwaitExpression struct {
	Token      token.Token
	Expression Expression
}

func (ae *AwaitExpression) expressionNode()      {}
func (ae *AwaitExpression) TokenLiteral() string { return ae.Token.Literal }
func (ae *AwaitExpression) String() string       { return "await " + ae.Expression.String() }

// YieldExpression is `yield Expression?`; parsed but not evaluated.
type YieldExpression struct {
	Token      token.Token
	Expression Expression // nil for bare `yield`
}

func (ye *YieldExpression) expressionNode()      {}
func (ye *YieldExpression) TokenLiteral() string { return ye.Token.Literal }
func (ye *YieldExpression) String() string {
	if ye.Expression == nil {
		return "yield"
	}
	return "yield " + ye.Expression.String()
}
