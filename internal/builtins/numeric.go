package builtins

import (
	"math"

	"github.com/cyber-lang/cyber/internal/object"
)

func registerNumeric(r *Registry) {
	r.register("abs", CategoryNumeric, builtinAbs)
	r.register("round", CategoryNumeric, builtinRound)
	r.register("max", CategoryNumeric, builtinMax)
	r.register("min", CategoryNumeric, builtinMin)
	r.register("sum", CategoryNumeric, builtinSum)
}

func builtinAbs(_ Context, args []object.Value) object.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	switch v := args[0].(type) {
	case *object.Integer:
		if v.Value < 0 {
			return &object.Integer{Value: -v.Value}
		}
		return &object.Integer{Value: v.Value}
	case *object.Float:
		return &object.Float{Value: math.Abs(v.Value)}
	default:
		return newError("argument to `abs` not supported, got %s", args[0].Type())
	}
}

func builtinRound(_ Context, args []object.Value) object.Value {
	if len(args) != 1 && len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=1 or 2", len(args))
	}
	n, ok := numericValue(args[0])
	if !ok {
		return newError("argument to `round` not supported, got %s", args[0].Type())
	}
	if len(args) == 1 {
		return &object.Integer{Value: int64(math.Round(n))}
	}
	digits, ok := args[1].(*object.Integer)
	if !ok {
		return newError("second argument to `round` must be an integer, got %s", args[1].Type())
	}
	scale := math.Pow(10, float64(digits.Value))
	return &object.Float{Value: math.Round(n*scale) / scale}
}

func numericValue(v object.Value) (float64, bool) {
	switch n := v.(type) {
	case *object.Integer:
		return float64(n.Value), true
	case *object.Float:
		return n.Value, true
	default:
		return 0, false
	}
}

// compare returns -1, 0, or 1 comparing a and b: numbers (Integer and Float)
// compare against numbers and strings against strings. Booleans and every
// other kind are not comparable; ok is false for them and for mixed pairs.
func compare(a, b object.Value) (result int, ok bool) {
	if an, aok := numericValue(a); aok {
		if bn, bok := numericValue(b); bok {
			switch {
			case an < bn:
				return -1, true
			case an > bn:
				return 1, true
			default:
				return 0, true
			}
		}
		return 0, false
	}
	as, aok := a.(*object.String)
	bs, bok := b.(*object.String)
	if aok && bok {
		switch {
		case as.Value < bs.Value:
			return -1, true
		case as.Value > bs.Value:
			return 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}

func builtinMax(_ Context, args []object.Value) object.Value {
	elements := args
	if len(args) == 1 {
		if arr, ok := args[0].(*object.Array); ok {
			if len(arr.Elements) == 0 {
				return object.NULL
			}
			elements = arr.Elements
		}
	}
	if len(elements) == 0 {
		return newError("max() expected 1 argument, got 0")
	}
	best := elements[0]
	for _, e := range elements[1:] {
		cmp, ok := compare(e, best)
		if !ok {
			return newError("argument to `max` not comparable, got %s", e.Type())
		}
		if cmp > 0 {
			best = e
		}
	}
	return best
}

func builtinMin(_ Context, args []object.Value) object.Value {
	elements := args
	if len(args) == 1 {
		if arr, ok := args[0].(*object.Array); ok {
			if len(arr.Elements) == 0 {
				return object.NULL
			}
			elements = arr.Elements
		}
	}
	if len(elements) == 0 {
		return newError("min() expected 1 argument, got 0")
	}
	best := elements[0]
	for _, e := range elements[1:] {
		cmp, ok := compare(e, best)
		if !ok {
			return newError("argument to `min` not comparable, got %s", e.Type())
		}
		if cmp < 0 {
			best = e
		}
	}
	return best
}

func builtinSum(_ Context, args []object.Value) object.Value {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return newError("argument to `sum` must be an array, got %s", args[0].Type())
	}
	var total float64
	allInt := true
	for _, el := range arr.Elements {
		n, ok := numericValue(el)
		if !ok {
			return newError("can only sum numbers")
		}
		if _, isInt := el.(*object.Integer); !isInt {
			allInt = false
		}
		total += n
	}
	if allInt {
		return &object.Integer{Value: int64(total)}
	}
	return &object.Float{Value: total}
}
