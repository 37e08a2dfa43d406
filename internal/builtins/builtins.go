// Package builtins implements cyber's fixed built-in function library: len,
// print, type, time, input, str, int, float, abs, round, max, min, sum, map,
// filter, reduce.
//
// Built-ins that need to call back into a cyber function (map, filter,
// reduce) do so through the Context interface rather than importing
// internal/eval directly, avoiding a builtins -> eval -> builtins import
// cycle.
package builtins

import (
	"fmt"

	"github.com/cyber-lang/cyber/internal/object"
)

// Context is the minimal surface a built-in needs from the evaluator: the
// ability to apply a callable cyber value to a list of arguments.
type Context interface {
	Apply(fn object.Value, args []object.Value) object.Value
}

// Func is the signature every built-in implementation has.
type Func func(ctx Context, args []object.Value) object.Value

// Category groups built-ins for documentation/introspection purposes.
type Category string

const (
	CategoryIO         Category = "io"
	CategoryType       Category = "type"
	CategoryNumeric    Category = "numeric"
	CategoryCollection Category = "collection"
	CategorySystem     Category = "system"
)

// entry pairs a built-in's implementation with its registry metadata.
type entry struct {
	name     string
	fn       Func
	category Category
}

// Registry is a name-keyed table of built-in functions. Lookup is
// case-sensitive: cyber identifiers are case-sensitive (see internal/lexer),
// so built-in names are too.
type Registry struct {
	entries map[string]entry
}

// NewRegistry builds the registry populated with every built-in cyber
// supports. Each category lives in its own file (io.go, types.go, numeric.go,
// collection.go) and is wired in here.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]entry)}
	registerIO(r)
	registerTypes(r)
	registerNumeric(r)
	registerCollection(r)
	return r
}

func (r *Registry) register(name string, category Category, fn Func) {
	r.entries[name] = entry{name: name, fn: fn, category: category}
}

// Lookup returns the built-in registered under name, if any.
func (r *Registry) Lookup(name string) (Func, bool) {
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.fn, true
}

// Has reports whether name is a registered built-in.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Names returns every registered built-in name, for introspection/tests.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	return names
}

func newError(format string, args ...any) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, args...)}
}
