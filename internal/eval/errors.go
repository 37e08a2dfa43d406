package eval

import (
	"fmt"

	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/object"
)

func newError(format string, args ...any) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, args...)}
}

// notSupported reports a clean, explicit "not supported" error for a
// construct the parser accepts but the evaluator never executes (import,
// from-import, try/except/finally, raise, with, yield).
func notSupported(node ast.Node) *object.Error {
	kind := "construct"
	switch node.(type) {
	case *ast.ImportStatement:
		kind = "import statement"
	case *ast.FromImportStatement:
		kind = "from-import statement"
	case *ast.TryStatement:
		kind = "try statement"
	case *ast.RaiseStatement:
		kind = "raise statement"
	case *ast.WithStatement:
		kind = "with statement"
	case *ast.YieldExpression:
		kind = "yield expression"
	}
	return newError("not supported: %s", kind)
}
