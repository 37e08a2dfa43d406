package parser

import (
	"fmt"

	"github.com/cyber-lang/cyber/internal/token"
)

// ParseError is one accumulated parse failure. The program is considered
// unparseable iff the error list is non-empty after ParseProgram returns.
type ParseError struct {
	Message string
	Pos     token.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Pos.Line, e.Pos.Column)
}
