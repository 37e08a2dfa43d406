// Package eval implements cyber's tree-walking evaluator: Eval recursively
// folds an *ast.Program (or any node within one) against an
// *object.Environment into an object.Value.
//
// The evaluator is a method set on Evaluator rather than a bag of free
// functions, so it can own the builtins registry and hand it an Apply
// callback without an import cycle (see internal/builtins' Context doc).
package eval

import (
	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/builtins"
	"github.com/cyber-lang/cyber/internal/object"
)

// Evaluator walks an AST and produces runtime values.
type Evaluator struct {
	builtins *builtins.Registry
}

// New builds an Evaluator with the full built-in library wired in.
func New() *Evaluator {
	return &Evaluator{builtins: builtins.NewRegistry()}
}

// Apply implements builtins.Context, letting map/filter/reduce call back
// into the evaluator's own function-application logic.
func (e *Evaluator) Apply(fn object.Value, args []object.Value) object.Value {
	return e.applyFunction(fn, args)
}

// wrapBuiltin adapts a builtins.Func (which needs a Context) into the
// simpler object.BuiltinFunction signature (plain variadic Values in, Value
// out) that object.Builtin carries, closing over the evaluator itself as the
// Context. This is what lets internal/object stay free of any dependency on
// internal/builtins while internal/eval wires the two together.
func (e *Evaluator) wrapBuiltin(fn builtins.Func) object.BuiltinFunction {
	return func(args ...object.Value) object.Value {
		return fn(e, args)
	}
}

// NewGlobalEnvironment returns a fresh root environment for a top-level run.
func NewGlobalEnvironment() *object.Environment {
	return object.NewEnvironment()
}

// Eval dispatches on node's concrete type and returns the resulting Value.
func (e *Evaluator) Eval(node ast.Node, env *object.Environment) object.Value {
	switch n := node.(type) {

	case *ast.Program:
		return e.evalProgram(n, env)
	case *ast.ExpressionStatement:
		return e.Eval(n.Expression, env)
	case *ast.BlockStatement:
		return e.evalBlockStatement(n, env)

	// Literals
	case *ast.IntegerLiteral:
		return &object.Integer{Value: n.Value}
	case *ast.FloatLiteral:
		return &object.Float{Value: n.Value}
	case *ast.StringLiteral:
		return &object.String{Value: n.Value}
	case *ast.BooleanLiteral:
		return object.NativeBool(n.Value)
	case *ast.NullLiteral:
		return object.NULL

	// Expressions
	case *ast.Identifier:
		return e.evalIdentifier(n, env)
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(n, env)
	case *ast.InfixExpression:
		return e.evalInfixExpression(n, env)
	case *ast.AssignExpression:
		return e.evalAssignExpression(n, env)
	case *ast.IfExpression:
		return e.evalIfExpression(n, env)
	case *ast.FunctionLiteral:
		return &object.Function{Name: n.Name, Parameters: n.Parameters, Body: n.Body, Env: env}
	case *ast.CallExpression:
		return e.evalCallExpression(n, env)
	case *ast.ArrayLiteral:
		elements, err := e.evalExpressions(n.Elements, env)
		if err != nil {
			return err
		}
		return &object.Array{Elements: elements}
	case *ast.IndexExpression:
		return e.evalIndexExpression(n, env)
	case *ast.HashLiteral:
		return e.evalHashLiteral(n, env)
	case *ast.NewExpression:
		return e.evalNewExpression(n, env)
	case *ast.SelfExpression:
		return e.evalNamedBinding(env, "self")
	case *ast.SuperExpression:
		return e.evalNamedBinding(env, "super")
	case *ast.AwaitExpression:
		return e.Eval(n.Expression, env) // identity on non-async values

	// Statements
	case *ast.LetStatement:
		val := e.Eval(n.Value, env)
		if object.IsError(val) {
			return val
		}
		env.Set(n.Name.Value, val)
		return object.NULL
	case *ast.ReturnStatement:
		var val object.Value = object.NULL
		if n.ReturnValue != nil {
			val = e.Eval(n.ReturnValue, env)
			if object.IsError(val) {
				return val
			}
		}
		return &object.ReturnValue{Value: val}
	case *ast.WhileStatement:
		return e.evalWhileStatement(n, env)
	case *ast.ForStatement:
		return e.evalForStatement(n, env)
	case *ast.ForInStatement:
		return e.evalForInStatement(n, env)
	case *ast.ClassStatement:
		return e.evalClassStatement(n, env)
	case *ast.BreakStatement:
		return &object.BreakValue{}
	case *ast.ContinueStatement:
		return &object.ContinueValue{}
	case *ast.PassStatement:
		return object.NULL
	case *ast.AssertStatement:
		return e.evalAssertStatement(n, env)
	case *ast.AsyncStatement:
		return e.Eval(n.Statement, env) // sequential collapse, no real concurrency

	// Parsed-but-not-evaluated constructs.
	case *ast.ImportStatement, *ast.FromImportStatement, *ast.TryStatement,
		*ast.RaiseStatement, *ast.WithStatement, *ast.YieldExpression:
		return notSupported(node)
	}

	return newError("unknown node type: %T", node)
}

func (e *Evaluator) evalProgram(program *ast.Program, env *object.Environment) object.Value {
	var result object.Value = object.NULL
	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)
		switch r := result.(type) {
		case *object.ReturnValue:
			return r.Value
		case *object.Error:
			return r
		}
	}
	return result
}

func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *object.Environment) object.Value {
	var result object.Value = object.NULL
	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)
		if result != nil {
			switch result.Type() {
			case object.RETURN_VALUE_OBJ, object.ERROR_OBJ, object.BREAK_OBJ, object.CONTINUE_OBJ:
				return result
			}
		}
	}
	return result
}

func (e *Evaluator) evalExpressions(exps []ast.Expression, env *object.Environment) ([]object.Value, *object.Error) {
	results := make([]object.Value, len(exps))
	for i, exp := range exps {
		v := e.Eval(exp, env)
		if errVal, ok := v.(*object.Error); ok {
			return nil, errVal
		}
		results[i] = v
	}
	return results, nil
}

func (e *Evaluator) evalNamedBinding(env *object.Environment, name string) object.Value {
	if v, ok := env.Get(name); ok {
		return v
	}
	return newError("identifier not found: %s", name)
}
