package eval

import (
	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/object"
)

// evalClassStatement builds a Class value and binds it in env under its own
// name. Method bodies close over a class-scoped environment (a child of env
// holding a self-reference to the class under construction), letting a
// method refer to its own class by name (e.g. inside a factory-style method
// that does `new Self(...)`).
//
// The class-body restriction — only function literals and pass statements
// allowed in a class body — is enforced earlier, at parse time (see the
// parser's validateClassBody), so it never needs rechecking here.
func (e *Evaluator) evalClassStatement(node *ast.ClassStatement, env *object.Environment) object.Value {
	var superclass *object.Class
	if node.Superclass != nil {
		val := e.Eval(node.Superclass, env)
		if object.IsError(val) {
			return val
		}
		sc, ok := val.(*object.Class)
		if !ok {
			return newError("Superclass must be a class.")
		}
		superclass = sc
	}

	class := &object.Class{
		Name:       node.Name.Value,
		Superclass: superclass,
		Methods:    make(map[string]*object.Function),
	}

	classEnv := object.NewEnclosedEnvironment(env)
	classEnv.Set(node.Name.Value, class)

	for _, stmt := range node.Body.Statements {
		exprStmt, ok := stmt.(*ast.ExpressionStatement)
		if !ok {
			continue // PassStatement, the only other body statement the parser allows
		}
		fnLit, ok := exprStmt.Expression.(*ast.FunctionLiteral)
		if !ok {
			continue
		}
		class.Methods[fnLit.Name] = &object.Function{
			Name:       fnLit.Name,
			Parameters: fnLit.Parameters,
			Body:       fnLit.Body,
			Env:        classEnv,
		}
	}

	env.Set(node.Name.Value, class)
	return class
}
