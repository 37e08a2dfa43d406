package builtins

import (
	"unicode/utf8"

	"github.com/cyber-lang/cyber/internal/object"
)

func registerCollection(r *Registry) {
	r.register("len", CategoryCollection, builtinLen)
	r.register("map", CategoryCollection, builtinMap)
	r.register("filter", CategoryCollection, builtinFilter)
	r.register("reduce", CategoryCollection, builtinReduce)
}

func builtinLen(_ Context, args []object.Value) object.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch v := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(utf8.RuneCountInString(v.Value))}
	case *object.Array:
		return &object.Integer{Value: int64(len(v.Elements))}
	default:
		return newError("argument to `len` not supported, got %s", args[0].Type())
	}
}

func isCallable(v object.Value) bool {
	switch v.(type) {
	case *object.Function, *object.Builtin, *object.BoundMethod:
		return true
	default:
		return false
	}
}

func builtinMap(ctx Context, args []object.Value) object.Value {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	fn, arr := args[0], args[1]
	if !isCallable(fn) {
		return newError("first argument must be a function")
	}
	array, ok := arr.(*object.Array)
	if !ok {
		return newError("second argument must be an array")
	}
	results := make([]object.Value, len(array.Elements))
	for i, el := range array.Elements {
		r := ctx.Apply(fn, []object.Value{el})
		if object.IsError(r) {
			return r
		}
		results[i] = r
	}
	return &object.Array{Elements: results}
}

func builtinFilter(ctx Context, args []object.Value) object.Value {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	fn, arr := args[0], args[1]
	if !isCallable(fn) {
		return newError("first argument must be a function")
	}
	array, ok := arr.(*object.Array)
	if !ok {
		return newError("second argument must be an array")
	}
	var results []object.Value
	for _, el := range array.Elements {
		r := ctx.Apply(fn, []object.Value{el})
		if object.IsError(r) {
			return r
		}
		if object.IsTruthy(r) {
			results = append(results, el)
		}
	}
	return &object.Array{Elements: results}
}

func builtinReduce(ctx Context, args []object.Value) object.Value {
	if len(args) != 2 && len(args) != 3 {
		return newError("wrong number of arguments. got=%d, want=2 or 3", len(args))
	}
	fn, arr := args[0], args[1]
	if !isCallable(fn) {
		return newError("first argument must be a function")
	}
	array, ok := arr.(*object.Array)
	if !ok {
		return newError("second argument must be an array")
	}

	elements := array.Elements
	var accumulator object.Value
	if len(args) == 3 {
		accumulator = args[2]
	} else {
		if len(elements) == 0 {
			return newError("reduce of empty sequence with no initial value")
		}
		accumulator = elements[0]
		elements = elements[1:]
	}

	for _, el := range elements {
		accumulator = ctx.Apply(fn, []object.Value{accumulator, el})
		if object.IsError(accumulator) {
			return accumulator
		}
	}
	return accumulator
}
