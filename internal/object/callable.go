package object

import (
	"strings"

	"github.com/cyber-lang/cyber/internal/ast"
)

// Function is a user-defined, closing-over-its-environment function value.
type Function struct {
	Name       string
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (f *Function) Type() Type { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	var b strings.Builder
	b.WriteString("fn")
	if f.Name != "" {
		b.WriteString(" " + f.Name)
	}
	b.WriteString("(" + strings.Join(params, ", ") + ") {\n")
	b.WriteString(f.Body.String())
	b.WriteString("\n}")
	return b.String()
}

// BuiltinFunction is the signature every built-in implements: arguments in,
// a Value out (an *Error for misuse — arity, wrong type — rather than a Go
// error, so built-ins compose with the rest of the evaluator uniformly).
type BuiltinFunction func(args ...Value) Value

// Builtin wraps a native Go function as a callable cyber value.
type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() Type      { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string { return "builtin function" }

// Class is a prototype-style class value: a name, an optional superclass
// for single inheritance, and a name-to-Function method table.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) Type() Type      { return CLASS_OBJ }
func (c *Class) Inspect() string { return c.Name }

// FindMethod looks up name on c, then walks the single superclass chain.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// FindMethodOwner is FindMethod plus the class the method was actually found
// on, so a caller can bind `super` to start one level above that class
// rather than above the receiver's own (possibly more derived) class. This
// is what makes chained super.method() calls walk one level further up on
// each successive call instead of always resolving relative to self.
func (c *Class) FindMethodOwner(name string) (*Function, *Class) {
	if m, ok := c.Methods[name]; ok {
		return m, c
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethodOwner(name)
	}
	return nil, nil
}

// Instance is an object created by `new Class(...)`: a class pointer plus a
// mutable field table. Instances satisfy method lookups by delegating to
// their class (and its superclass chain) when a field of that name isn't
// set directly.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (i *Instance) Type() Type      { return INSTANCE_OBJ }
func (i *Instance) Inspect() string { return "<" + i.Class.Name + "> instance" }

// Get resolves name against the instance's own fields first, then its
// class's method table (and the superclass chain via FindMethod).
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m := i.Class.FindMethod(name); m != nil {
		return m, true
	}
	return nil, false
}

// Set assigns a field on the instance directly; it never touches methods.
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}

// BoundMethod pairs a Function with the Instance it was looked up on, so
// calling it implicitly receives `self`. DefiningClass is the class the
// method was actually found on (via FindMethodOwner) — distinct from
// Receiver.Class whenever the method was inherited — and is what `super`
// binds relative to when the method body is invoked.
type BoundMethod struct {
	Method        *Function
	Receiver      *Instance
	DefiningClass *Class
}

func (bm *BoundMethod) Type() Type      { return BOUND_METHOD_OBJ }
func (bm *BoundMethod) Inspect() string { return "bound method" }

// BoundSuper pairs an instance with the superclass of the class that
// defines the running method (BoundMethod.DefiningClass), so
// `super.method()` dispatch starts its method lookup there instead of at
// the receiver's actual class.
type BoundSuper struct {
	Receiver *Instance
	Class    *Class
}

func (bs *BoundSuper) Type() Type      { return BOUND_SUPER_OBJ }
func (bs *BoundSuper) Inspect() string { return "bound super" }

// Module is reserved for a future real module system; the grammar parses
// import/from but the evaluator never evaluates them, so no Module value is
// ever produced today.
type Module struct {
	Name string
	Env  *Environment
}

func (m *Module) Type() Type      { return MODULE_OBJ }
func (m *Module) Inspect() string { return "module '" + m.Name + "'" }
