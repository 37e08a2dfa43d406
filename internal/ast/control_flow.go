package ast

import "github.com/cyber-lang/cyber/internal/token"

// WhileStatement is `while (Condition) Body`.
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Condition.String() + ") " + ws.Body.String()
}

// ForStatement is the C-style `for (Init; Condition; Increment) Body`.
// Init is nil when the init clause is omitted (`for (; i < n; i = i + 1)`);
// the parser requires Condition and Increment.
type ForStatement struct {
	Token       token.Token
	Init        Statement
	Condition   Expression
	Increment   Statement
	Body        *BlockStatement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) String() string {
	out := "for ("
	if fs.Init != nil {
		out += fs.Init.String()
	}
	out += "; "
	if fs.Condition != nil {
		out += fs.Condition.String()
	}
	out += "; "
	if fs.Increment != nil {
		out += fs.Increment.String()
	}
	out += ") " + fs.Body.String()
	return out
}

// ForInStatement is `for (Iterator in Iterable) Body`.
type ForInStatement struct {
	Token    token.Token
	Iterator *Identifier
	Iterable Expression
	Body     *BlockStatement
}

func (fi *ForInStatement) statementNode()       {}
func (fi *ForInStatement) TokenLiteral() string { return fi.Token.Literal }
func (fi *ForInStatement) String() string {
	return "for (" + fi.Iterator.String() + " in " + fi.Iterable.String() + ") " + fi.Body.String()
}
