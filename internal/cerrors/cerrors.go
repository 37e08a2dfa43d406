// Package cerrors formats lex/parse failures with source context: a
// line/column header, the offending source line, and a caret pointing at
// the column.
//
// This is strictly a presentation layer for a debug CLI surface (`cyber lex
// --verbose`) and for tests. The plain `cyber run`
// path keeps the terse, byte-pinned `Parser error: <message>` form and never
// touches this package. Runtime errors are a different thing entirely —
// they are object.Error values flowing through the evaluator, not anything
// cerrors ever sees.
package cerrors

import (
	"fmt"
	"strings"

	"github.com/cyber-lang/cyber/internal/lexer"
	"github.com/cyber-lang/cyber/internal/parser"
	"github.com/cyber-lang/cyber/internal/token"
)

// SourceError is a single lex or parse failure bound to the source text it
// came from, ready to render with a caret.
type SourceError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// FromLexError adapts a lexer.LexError into a SourceError for formatting.
func FromLexError(e lexer.LexError, source, file string) *SourceError {
	return &SourceError{Message: e.Message, Source: source, File: file, Pos: e.Pos}
}

// FromParseError adapts a parser.ParseError into a SourceError for formatting.
func FromParseError(e *parser.ParseError, source, file string) *SourceError {
	return &SourceError{Message: e.Message, Source: source, File: file, Pos: e.Pos}
}

func (e *SourceError) Error() string { return e.Format(false) }

// Format renders the header, the offending line, and a caret under the
// error column. color adds ANSI bold/red escapes for terminal output.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		pad := len(prefix) + e.Pos.Column - 1
		if pad < len(prefix) {
			pad = len(prefix)
		}
		sb.WriteString(strings.Repeat(" ", pad))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// FormatAll renders every error in errs, numbered when there is more than one.
func FormatAll(errs []*SourceError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "failed with %d error(s):\n\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&sb, "[%d of %d] ", i+1, len(errs))
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// FormatLexErrors adapts and renders a lexer's accumulated errors.
func FormatLexErrors(errs []lexer.LexError, source, file string, color bool) string {
	out := make([]*SourceError, len(errs))
	for i, e := range errs {
		out[i] = FromLexError(e, source, file)
	}
	return FormatAll(out, color)
}

// FormatParseErrors adapts and renders a parser's accumulated errors.
func FormatParseErrors(errs []*parser.ParseError, source, file string, color bool) string {
	out := make([]*SourceError, len(errs))
	for i, e := range errs {
		out[i] = FromParseError(e, source, file)
	}
	return FormatAll(out, color)
}
