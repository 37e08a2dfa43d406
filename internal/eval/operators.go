package eval

import (
	"math"

	"github.com/cyber-lang/cyber/internal/object"
)

func evalPrefixExpression(operator string, right object.Value) object.Value {
	switch operator {
	case "!":
		return object.NativeBool(!object.IsTruthy(right))
	case "-":
		switch r := right.(type) {
		case *object.Integer:
			return &object.Integer{Value: -r.Value}
		case *object.Float:
			return &object.Float{Value: -r.Value}
		default:
			return newError("unknown operator: -%s", right.Type())
		}
	case "~":
		if i, ok := right.(*object.Integer); ok {
			return &object.Integer{Value: ^i.Value}
		}
		return newError("unknown operator: ~%s", right.Type())
	default:
		return newError("unknown operator: %s%s", operator, right.Type())
	}
}

// evalInfixOperator applies operator to two already-evaluated values. A
// strict type(left) != type(right) gate run before numeric promotion would
// break mixed Integer/Float arithmetic, so this checks "both sides numeric"
// first, letting Integer and Float freely intermix.
func evalInfixOperator(operator string, left, right object.Value) object.Value {
	switch {
	case isNumeric(left) && isNumeric(right):
		return evalNumericInfixExpression(operator, left, right)
	case left.Type() == object.STRING_OBJ && right.Type() == object.STRING_OBJ:
		return evalStringInfixExpression(operator, left.(*object.String), right.(*object.String))
	case operator == "==":
		return object.NativeBool(valuesEqual(left, right))
	case operator == "!=":
		return object.NativeBool(!valuesEqual(left, right))
	case left.Type() != right.Type():
		return newError("type mismatch: %s %s %s", left.Type(), operator, right.Type())
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func isNumeric(v object.Value) bool {
	switch v.(type) {
	case *object.Integer, *object.Float:
		return true
	default:
		return false
	}
}

func evalNumericInfixExpression(operator string, left, right object.Value) object.Value {
	li, lIsInt := left.(*object.Integer)
	ri, rIsInt := right.(*object.Integer)
	bothInt := lIsInt && rIsInt

	lf, rf := numericAsFloat(left), numericAsFloat(right)

	switch operator {
	case "+":
		if bothInt {
			return &object.Integer{Value: li.Value + ri.Value}
		}
		return &object.Float{Value: lf + rf}
	case "-":
		if bothInt {
			return &object.Integer{Value: li.Value - ri.Value}
		}
		return &object.Float{Value: lf - rf}
	case "*":
		if bothInt {
			return &object.Integer{Value: li.Value * ri.Value}
		}
		return &object.Float{Value: lf * rf}
	case "/":
		if rf == 0 {
			return newError("division by zero")
		}
		return &object.Float{Value: lf / rf}
	case "//":
		if !bothInt {
			return newError("unsupported operand type for //: %s", floatSideType(left, right))
		}
		if ri.Value == 0 {
			return newError("division by zero")
		}
		return &object.Integer{Value: floorDivInt(li.Value, ri.Value)}
	case "%":
		if bothInt {
			if ri.Value == 0 {
				return newError("division by zero")
			}
			return &object.Integer{Value: floorModInt(li.Value, ri.Value)}
		}
		if rf == 0 {
			return newError("division by zero")
		}
		return &object.Float{Value: math.Mod(math.Mod(lf, rf)+rf, rf)}
	case "**":
		if bothInt && ri.Value >= 0 {
			return &object.Integer{Value: intPow(li.Value, ri.Value)}
		}
		return &object.Float{Value: math.Pow(lf, rf)}
	case "&", "|", "^", "<<", ">>":
		if !bothInt {
			return newError("unsupported operand type for bitwise operator: %s", floatSideType(left, right))
		}
		return evalBitwiseInt(operator, li.Value, ri.Value)
	case ">":
		return object.NativeBool(lf > rf)
	case "<":
		return object.NativeBool(lf < rf)
	case ">=":
		return object.NativeBool(lf >= rf)
	case "<=":
		return object.NativeBool(lf <= rf)
	case "==":
		return object.NativeBool(lf == rf)
	case "!=":
		return object.NativeBool(lf != rf)
	default:
		return newError("unknown operator: %s %s %s", left.Type(), operator, right.Type())
	}
}

func evalBitwiseInt(operator string, l, r int64) object.Value {
	switch operator {
	case "&":
		return &object.Integer{Value: l & r}
	case "|":
		return &object.Integer{Value: l | r}
	case "^":
		return &object.Integer{Value: l ^ r}
	case "<<":
		return &object.Integer{Value: l << uint64(r)}
	case ">>":
		return &object.Integer{Value: l >> uint64(r)}
	}
	return newError("unknown operator: %s", operator)
}

func floatSideType(left, right object.Value) object.Type {
	if _, ok := left.(*object.Float); ok {
		return left.Type()
	}
	return right.Type()
}

func numericAsFloat(v object.Value) float64 {
	switch n := v.(type) {
	case *object.Integer:
		return float64(n.Value)
	case *object.Float:
		return n.Value
	}
	return 0
}

// floorDivInt and floorModInt implement Python's floor-toward-negative-
// infinity // and % semantics (as opposed to Go's truncate-toward-zero /
// and %), matching what the original interpreter's host language does.
func floorDivInt(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorModInt(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

// evalStringInfixExpression covers concatenation and the full comparison
// family for strings, including equality and ordering.
func evalStringInfixExpression(operator string, left, right *object.String) object.Value {
	switch operator {
	case "+":
		return &object.String{Value: left.Value + right.Value}
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	case "<":
		return object.NativeBool(left.Value < right.Value)
	case ">":
		return object.NativeBool(left.Value > right.Value)
	case "<=":
		return object.NativeBool(left.Value <= right.Value)
	case ">=":
		return object.NativeBool(left.Value >= right.Value)
	default:
		return newError("unknown operator: STRING %s STRING", operator)
	}
}

// valuesEqual is the fallback "==" used when neither side is numeric or a
// matching pair of strings: values of different types are never equal,
// Booleans compare by value, Null always equals Null, Arrays compare
// element-wise, and everything else by identity.
func valuesEqual(left, right object.Value) bool {
	if left.Type() != right.Type() {
		return false
	}
	switch l := left.(type) {
	case *object.Boolean:
		return l.Value == right.(*object.Boolean).Value
	case *object.Null:
		return true
	case *object.Array:
		r := right.(*object.Array)
		if len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !valuesEqual(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return left == right
	}
}
