package eval

import (
	"strings"

	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/object"
)

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *object.Environment) object.Value {
	if v, ok := env.Get(node.Value); ok {
		return v
	}
	if fn, ok := e.builtins.Lookup(node.Value); ok {
		return &object.Builtin{Name: node.Value, Fn: e.wrapBuiltin(fn)}
	}
	return newError("identifier not found: %s", node.Value)
}

func (e *Evaluator) evalPrefixExpression(node *ast.PrefixExpression, env *object.Environment) object.Value {
	right := e.Eval(node.Right, env)
	if object.IsError(right) {
		return right
	}
	return evalPrefixExpression(node.Operator, right)
}

// evalInfixExpression special-cases "." (member access, whose Right is an
// unevaluated *ast.Identifier naming the member) before falling through to
// ordinary left/right-evaluated operator dispatch.
func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *object.Environment) object.Value {
	if node.Operator == "." {
		return e.evalMemberExpression(node, env)
	}
	left := e.Eval(node.Left, env)
	if object.IsError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if object.IsError(right) {
		return right
	}
	return evalInfixOperator(node.Operator, left, right)
}

func (e *Evaluator) evalMemberExpression(node *ast.InfixExpression, env *object.Environment) object.Value {
	ident, ok := node.Right.(*ast.Identifier)
	if !ok {
		return newError("member name must be identifier, got %T", node.Right)
	}
	left := e.Eval(node.Left, env)
	if object.IsError(left) {
		return left
	}
	return e.getMember(left, ident.Value)
}

// getMember resolves a named member on a value already in hand — shared by
// plain "." reads and by read-modify-write compound assignment.
func (e *Evaluator) getMember(left object.Value, name string) object.Value {
	switch v := left.(type) {
	case *object.Instance:
		if fv, ok := v.Fields[name]; ok {
			return fv
		}
		if m, owner := v.Class.FindMethodOwner(name); m != nil {
			return &object.BoundMethod{Method: m, Receiver: v, DefiningClass: owner}
		}
		return newError("instance has no member '%s'", name)
	case *object.BoundSuper:
		// Resolution starts at v.Class, the superclass of the class that
		// defines the running method, so chained super.method() calls walk
		// one level further up on each call.
		if m, owner := v.Class.FindMethodOwner(name); m != nil {
			return &object.BoundMethod{Method: m, Receiver: v.Receiver, DefiningClass: owner}
		}
		return newError("instance has no member '%s'", name)
	case *object.Hash:
		if val, ok := v.Get(&object.String{Value: name}); ok {
			return val
		}
		return newError("hash has no key '%s'", name)
	default:
		return newError("member access not supported on %s", left.Type())
	}
}

func (e *Evaluator) setMember(left object.Value, name string, val object.Value) object.Value {
	switch v := left.(type) {
	case *object.Instance:
		v.Set(name, val)
		return val
	case *object.Hash:
		v.Set(&object.String{Value: name}, val)
		return val
	default:
		return newError("member assignment not supported on %s", left.Type())
	}
}

func (e *Evaluator) evalAssignExpression(node *ast.AssignExpression, env *object.Environment) object.Value {
	val := e.Eval(node.Value, env)
	if object.IsError(val) {
		return val
	}

	if node.Operator != "=" {
		current := e.Eval(node.Target, env)
		if object.IsError(current) {
			return current
		}
		op := strings.TrimSuffix(node.Operator, "=")
		val = evalInfixOperator(op, current, val)
		if object.IsError(val) {
			return val
		}
	}

	switch target := node.Target.(type) {
	case *ast.Identifier:
		env.Set(target.Value, val)
		return val
	case *ast.InfixExpression:
		if target.Operator != "." {
			return newError("invalid assignment target")
		}
		ident, ok := target.Right.(*ast.Identifier)
		if !ok {
			return newError("member name must be identifier, got %T", target.Right)
		}
		left := e.Eval(target.Left, env)
		if object.IsError(left) {
			return left
		}
		return e.setMember(left, ident.Value, val)
	default:
		return newError("invalid assignment target")
	}
}

func (e *Evaluator) evalIfExpression(node *ast.IfExpression, env *object.Environment) object.Value {
	cond := e.Eval(node.Condition, env)
	if object.IsError(cond) {
		return cond
	}
	if object.IsTruthy(cond) {
		return e.Eval(node.Consequence, env)
	}
	if node.Alternative != nil {
		return e.Eval(node.Alternative, env)
	}
	return object.NULL
}

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *object.Environment) object.Value {
	left := e.Eval(node.Left, env)
	if object.IsError(left) {
		return left
	}
	index := e.Eval(node.Index, env)
	if object.IsError(index) {
		return index
	}

	switch l := left.(type) {
	case *object.Array:
		idx, ok := index.(*object.Integer)
		if !ok {
			return newError("index operator not supported: %s", left.Type())
		}
		if idx.Value < 0 || idx.Value >= int64(len(l.Elements)) {
			return object.NULL
		}
		return l.Elements[idx.Value]
	case *object.Hash:
		key, ok := index.(object.Hashable)
		if !ok {
			return newError("unusable as hash key: %s", index.Type())
		}
		if val, ok := l.Get(key); ok {
			return val
		}
		return object.NULL
	default:
		return newError("index operator not supported: %s", left.Type())
	}
}

func (e *Evaluator) evalHashLiteral(node *ast.HashLiteral, env *object.Environment) object.Value {
	hash := object.NewHash()
	for i, keyNode := range node.Keys {
		key := e.Eval(keyNode, env)
		if object.IsError(key) {
			return key
		}
		hashableKey, ok := key.(object.Hashable)
		if !ok {
			return newError("unusable as hash key: %s", key.Type())
		}
		value := e.Eval(node.Values[i], env)
		if object.IsError(value) {
			return value
		}
		hash.Set(hashableKey, value)
	}
	return hash
}

func (e *Evaluator) evalNewExpression(node *ast.NewExpression, env *object.Environment) object.Value {
	val := e.Eval(node.Class, env)
	if object.IsError(val) {
		return val
	}
	class, ok := val.(*object.Class)
	if !ok {
		return newError("new requires a class, got %s", val.Type())
	}
	return class
}
