package parser

import (
	"testing"

	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/lexer"
)

func TestLetStatement(t *testing.T) {
	program := parseProgram(t, "let x = 5;")
	stmt, ok := program.Statements[0].(*ast.LetStatement)
	if !ok {
		t.Fatalf("expected *ast.LetStatement, got %T", program.Statements[0])
	}
	if stmt.Name.Value != "x" {
		t.Errorf("got name %q", stmt.Name.Value)
	}
}

func TestReturnStatementBareAndWithValue(t *testing.T) {
	program := parseProgram(t, "fn f() { return; };")
	_ = program

	program2 := parseProgram(t, "fn g() { return 5; };")
	fn := program2.Statements[0].(*ast.ExpressionStatement).Expression.(*ast.FunctionLiteral)
	ret := fn.Body.Statements[0].(*ast.ReturnStatement)
	if ret.ReturnValue == nil {
		t.Fatal("expected a return value")
	}
}

func TestEmptySemicolonIsSkipped(t *testing.T) {
	program := parseProgram(t, ";;let x = 1;;")
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
}

func TestImportStatement(t *testing.T) {
	program := parseProgram(t, `import "math";`)
	stmt, ok := program.Statements[0].(*ast.ImportStatement)
	if !ok {
		t.Fatalf("expected *ast.ImportStatement, got %T", program.Statements[0])
	}
	if stmt.Path.Value != "math" {
		t.Errorf("got path %q", stmt.Path.Value)
	}
}

func TestFromImportStatementNamesAndWildcard(t *testing.T) {
	program := parseProgram(t, `from "math" import sqrt, pow;`)
	stmt := program.Statements[0].(*ast.FromImportStatement)
	if len(stmt.Imports) != 2 || stmt.Imports[0].Value != "sqrt" || stmt.Imports[1].Value != "pow" {
		t.Fatalf("got imports %v", stmt.Imports)
	}

	program2 := parseProgram(t, `from "math" import *;`)
	stmt2 := program2.Statements[0].(*ast.FromImportStatement)
	if len(stmt2.Imports) != 1 || stmt2.Imports[0].Value != "*" {
		t.Fatalf("got wildcard imports %v", stmt2.Imports)
	}
}

func TestTryExceptFinally(t *testing.T) {
	program := parseProgram(t, `try { x = 1; } except { y = 2; } finally { z = 3; }`)
	stmt := program.Statements[0].(*ast.TryStatement)
	if stmt.ExceptBlock == nil || stmt.FinallyBlock == nil {
		t.Fatal("expected both except and finally blocks")
	}
}

func TestAssertWithAndWithoutMessage(t *testing.T) {
	program := parseProgram(t, `assert x > 0; assert x > 0, "must be positive";`)
	a1 := program.Statements[0].(*ast.AssertStatement)
	if a1.Message != nil {
		t.Error("expected no message")
	}
	a2 := program.Statements[1].(*ast.AssertStatement)
	if a2.Message == nil {
		t.Error("expected a message")
	}
}

func TestAsyncWrapsStatement(t *testing.T) {
	program := parseProgram(t, `async let x = 1;`)
	stmt := program.Statements[0].(*ast.AsyncStatement)
	if _, ok := stmt.Statement.(*ast.LetStatement); !ok {
		t.Fatalf("expected wrapped *ast.LetStatement, got %T", stmt.Statement)
	}
}

func TestRaiseAndWithStatements(t *testing.T) {
	program := parseProgram(t, `raise "boom"; with x { y = 1; }`)
	if _, ok := program.Statements[0].(*ast.RaiseStatement); !ok {
		t.Fatalf("expected *ast.RaiseStatement, got %T", program.Statements[0])
	}
	if _, ok := program.Statements[1].(*ast.WithStatement); !ok {
		t.Fatalf("expected *ast.WithStatement, got %T", program.Statements[1])
	}
}

func TestParserAccumulatesMultipleErrors(t *testing.T) {
	p := New(lexer.New("let = ; let x 5;"))
	p.ParseProgram()
	if len(p.Errors()) < 2 {
		t.Fatalf("expected at least 2 accumulated errors, got %d", len(p.Errors()))
	}
}
