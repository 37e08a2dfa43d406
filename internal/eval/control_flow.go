package eval

import (
	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/object"
)

func (e *Evaluator) evalWhileStatement(node *ast.WhileStatement, env *object.Environment) object.Value {
	var result object.Value = object.NULL
	for {
		cond := e.Eval(node.Condition, env)
		if object.IsError(cond) {
			return cond
		}
		if !object.IsTruthy(cond) {
			break
		}
		bodyResult := e.Eval(node.Body, env)
		switch bodyResult.Type() {
		case object.RETURN_VALUE_OBJ, object.ERROR_OBJ:
			return bodyResult
		case object.BREAK_OBJ:
			return object.NULL
		case object.CONTINUE_OBJ:
			continue
		}
		result = bodyResult
	}
	return result
}

func (e *Evaluator) evalForStatement(node *ast.ForStatement, env *object.Environment) object.Value {
	scopeEnv := object.NewEnclosedEnvironment(env)
	if node.Init != nil {
		if init := e.Eval(node.Init, scopeEnv); object.IsError(init) {
			return init
		}
	}

	var result object.Value = object.NULL
	for {
		cond := e.Eval(node.Condition, scopeEnv)
		if object.IsError(cond) {
			return cond
		}
		if !object.IsTruthy(cond) {
			break
		}

		bodyResult := e.Eval(node.Body, scopeEnv)
		switch bodyResult.Type() {
		case object.RETURN_VALUE_OBJ, object.ERROR_OBJ:
			return bodyResult
		case object.BREAK_OBJ:
			return object.NULL
		case object.CONTINUE_OBJ:
			if incr := e.Eval(node.Increment, scopeEnv); object.IsError(incr) {
				return incr
			}
			continue
		}
		result = bodyResult

		if incr := e.Eval(node.Increment, scopeEnv); object.IsError(incr) {
			return incr
		}
	}
	return result
}

func (e *Evaluator) evalForInStatement(node *ast.ForInStatement, env *object.Environment) object.Value {
	iterable := e.Eval(node.Iterable, env)
	if object.IsError(iterable) {
		return iterable
	}

	var elements []object.Value
	switch it := iterable.(type) {
	case *object.Array:
		elements = it.Elements
	case *object.String:
		for _, r := range it.Value {
			elements = append(elements, &object.String{Value: string(r)})
		}
	default:
		return newError("for..in loop not supported for type %s", iterable.Type())
	}

	scopeEnv := object.NewEnclosedEnvironment(env)
	var result object.Value = object.NULL
	for _, el := range elements {
		scopeEnv.Set(node.Iterator.Value, el)
		bodyResult := e.Eval(node.Body, scopeEnv)
		switch bodyResult.Type() {
		case object.RETURN_VALUE_OBJ, object.ERROR_OBJ:
			return bodyResult
		case object.BREAK_OBJ:
			return object.NULL
		case object.CONTINUE_OBJ:
			continue
		}
		result = bodyResult
	}
	return result
}

// evalAssertStatement: a falsy condition produces a runtime *object.Error
// ("assertion failed", with ": <message>" appended when Message is present);
// a truthy condition evaluates to NULL.
func (e *Evaluator) evalAssertStatement(node *ast.AssertStatement, env *object.Environment) object.Value {
	cond := e.Eval(node.Condition, env)
	if object.IsError(cond) {
		return cond
	}
	if object.IsTruthy(cond) {
		return object.NULL
	}
	if node.Message == nil {
		return newError("assertion failed")
	}
	msg := e.Eval(node.Message, env)
	if object.IsError(msg) {
		return msg
	}
	return newError("assertion failed: %s", msg.Inspect())
}
