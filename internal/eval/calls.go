package eval

import (
	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/object"
)

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *object.Environment) object.Value {
	fn := e.Eval(node.Callee, env)
	if object.IsError(fn) {
		return fn
	}
	args, errVal := e.evalExpressions(node.Arguments, env)
	if errVal != nil {
		return errVal
	}
	return e.applyFunction(fn, args)
}

// applyFunction dispatches a call across every callable Value kind: a plain
// Function, a method already bound to a receiver, a native Builtin, or a
// Class (calling a class synthesizes an Instance, runs its "init" method
// for side effect, and discards init's own return value).
func (e *Evaluator) applyFunction(fn object.Value, args []object.Value) object.Value {
	switch f := fn.(type) {
	case *object.Function:
		extendedEnv := object.NewEnclosedEnvironment(f.Env)
		bindParams(extendedEnv, f.Parameters, args)
		return unwrapReturnValue(e.Eval(f.Body, extendedEnv))

	case *object.BoundMethod:
		extendedEnv := object.NewEnclosedEnvironment(f.Method.Env)
		params := f.Method.Parameters
		if len(params) > 0 {
			extendedEnv.Set(params[0].Value, f.Receiver)
			params = params[1:]
		}
		if f.DefiningClass != nil && f.DefiningClass.Superclass != nil {
			extendedEnv.Set("super", &object.BoundSuper{Receiver: f.Receiver, Class: f.DefiningClass.Superclass})
		}
		bindParams(extendedEnv, params, args)
		return unwrapReturnValue(e.Eval(f.Method.Body, extendedEnv))

	case *object.Builtin:
		return f.Fn(args...)

	case *object.Class:
		instance := object.NewInstance(f)
		if init, owner := f.FindMethodOwner("init"); init != nil {
			bound := &object.BoundMethod{Method: init, Receiver: instance, DefiningClass: owner}
			if result := e.applyFunction(bound, args); object.IsError(result) {
				return result
			}
		}
		return instance

	default:
		return newError("not a function: %s", fn.Type())
	}
}

// bindParams zips params against args — a call with too few arguments
// leaves trailing parameters unbound (erroring only if the body actually
// references them); a call with too many silently ignores the extras.
func bindParams(env *object.Environment, params []*ast.Identifier, args []object.Value) {
	n := len(params)
	if len(args) < n {
		n = len(args)
	}
	for i := 0; i < n; i++ {
		env.Set(params[i].Value, args[i])
	}
}

func unwrapReturnValue(v object.Value) object.Value {
	if rv, ok := v.(*object.ReturnValue); ok {
		return rv.Value
	}
	return v
}
