package builtins

import (
	"strconv"
	"time"

	"github.com/cyber-lang/cyber/internal/object"
)

func registerTypes(r *Registry) {
	r.register("type", CategoryType, builtinType)
	r.register("str", CategoryType, builtinStr)
	r.register("int", CategoryType, builtinInt)
	r.register("float", CategoryType, builtinFloat)
	r.register("time", CategorySystem, builtinTime)
}

func builtinType(_ Context, args []object.Value) object.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	return &object.String{Value: string(args[0].Type())}
}

func builtinStr(_ Context, args []object.Value) object.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	return &object.String{Value: args[0].Inspect()}
}

func builtinInt(_ Context, args []object.Value) object.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch v := args[0].(type) {
	case *object.Integer:
		return &object.Integer{Value: v.Value}
	case *object.Float:
		return &object.Integer{Value: int64(v.Value)}
	case *object.String:
		n, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return newError("could not convert %s to integer", v.Inspect())
		}
		return &object.Integer{Value: n}
	default:
		return newError("argument to `int` not supported, got %s", args[0].Type())
	}
}

func builtinFloat(_ Context, args []object.Value) object.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch v := args[0].(type) {
	case *object.Integer:
		return &object.Float{Value: float64(v.Value)}
	case *object.Float:
		return &object.Float{Value: v.Value}
	case *object.String:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return newError("could not convert %s to float", v.Inspect())
		}
		return &object.Float{Value: f}
	default:
		return newError("argument to `float` not supported, got %s", args[0].Type())
	}
}

func builtinTime(_ Context, args []object.Value) object.Value {
	if len(args) != 0 {
		return newError("wrong number of arguments. got=%d, want=0", len(args))
	}
	return &object.Float{Value: float64(time.Now().UnixNano()) / 1e9}
}
