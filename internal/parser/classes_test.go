package parser

import (
	"testing"

	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/lexer"
)

func TestClassStatementWithSuperclass(t *testing.T) {
	program := parseProgram(t, `
class Animal {
	fn speak() { return "..."; }
}
class Dog : Animal {
	fn speak() { return "woof"; }
}
`)
	dog := program.Statements[1].(*ast.ClassStatement)
	if dog.Name.Value != "Dog" {
		t.Errorf("got name %q", dog.Name.Value)
	}
	if dog.Superclass == nil || dog.Superclass.Value != "Animal" {
		t.Fatalf("expected superclass Animal, got %v", dog.Superclass)
	}
}

func TestClassStatementWithoutSuperclass(t *testing.T) {
	program := parseProgram(t, `class Point { fn init(x, y) { self.x = x; self.y = y; } }`)
	cls := program.Statements[0].(*ast.ClassStatement)
	if cls.Superclass != nil {
		t.Errorf("expected no superclass, got %v", cls.Superclass)
	}
	if len(cls.Body.Statements) != 1 {
		t.Fatalf("expected 1 method, got %d", len(cls.Body.Statements))
	}
}

func TestClassBodyRejectsNonMethodStatements(t *testing.T) {
	p := New(lexer.New(`class Bad { let x = 1; }`))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected a parse error for a non-method class body statement")
	}
}

func TestClassBodyAllowsPass(t *testing.T) {
	program := parseProgram(t, `class Empty { pass; }`)
	cls := program.Statements[0].(*ast.ClassStatement)
	if _, ok := cls.Body.Statements[0].(*ast.PassStatement); !ok {
		t.Fatalf("expected *ast.PassStatement, got %T", cls.Body.Statements[0])
	}
}
