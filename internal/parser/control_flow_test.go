package parser

import (
	"testing"

	"github.com/cyber-lang/cyber/internal/ast"
)

func TestWhileStatement(t *testing.T) {
	program := parseProgram(t, "while (x < 10) { x = x + 1; }")
	stmt, ok := program.Statements[0].(*ast.WhileStatement)
	if !ok {
		t.Fatalf("expected *ast.WhileStatement, got %T", program.Statements[0])
	}
	if len(stmt.Body.Statements) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(stmt.Body.Statements))
	}
}

func TestCStyleForStatement(t *testing.T) {
	program := parseProgram(t, "for (let i = 0; i < 10; i = i + 1) { print(i); }")
	stmt, ok := program.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected *ast.ForStatement, got %T", program.Statements[0])
	}
	if stmt.Init == nil || stmt.Condition == nil || stmt.Increment == nil {
		t.Fatal("expected all three clauses to be present")
	}
}

func TestForInStatement(t *testing.T) {
	program := parseProgram(t, "for (item in items) { print(item); }")
	stmt, ok := program.Statements[0].(*ast.ForInStatement)
	if !ok {
		t.Fatalf("expected *ast.ForInStatement, got %T", program.Statements[0])
	}
	if stmt.Iterator.Value != "item" {
		t.Errorf("got iterator %q", stmt.Iterator.Value)
	}
	if stmt.Iterable.String() != "items" {
		t.Errorf("got iterable %q", stmt.Iterable.String())
	}
}
