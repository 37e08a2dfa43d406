package ast

import "github.com/cyber-lang/cyber/internal/token"

// ClassStatement declares a class, optionally extending Superclass.
// Body's statements are restricted by the parser to *ExpressionStatement
// wrapping a named *FunctionLiteral (a method) or *PassStatement.
type ClassStatement struct {
	Token      token.Token
	Name       *Identifier
	Superclass *Identifier // nil when there is no `: Superclass` clause
	Body       *BlockStatement
}

func (cs *ClassStatement) statementNode()       {}
func (cs *ClassStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ClassStatement) String() string {
	out := "class " + cs.Name.String()
	if cs.Superclass != nil {
		out += " : " + cs.Superclass.String()
	}
	return out + " " + cs.Body.String()
}
