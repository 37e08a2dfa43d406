package cmd

import (
	"fmt"
	"os"

	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/eval"
	"github.com/cyber-lang/cyber/internal/lexer"
	"github.com/cyber-lang/cyber/internal/object"
	"github.com/cyber-lang/cyber/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a cyber script",
	Long: `Execute a cyber program from a file or inline expression.

Examples:
  # Run a script file
  cyber run script.cy

  # Evaluate an inline expression
  cyber run -e "print(1 + 2);"

  # Run with AST dump (for debugging)
  cyber run --dump-ast script.cy

  # Run with execution trace
  cyber run --trace script.cy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace execution (for debugging)")
}

// runScript reserves exit 1 for a missing file, parser errors, or argument
// misuse. A runtime Error is not in that list: it is printed like any other
// non-null result, via Inspect(), and the process still exits 0.
func runScript(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "Parser error: %s\n", e.Message)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	ev := eval.New()
	env := eval.NewGlobalEnvironment()

	result := evalTopLevel(ev, program, env)

	if result != nil && result.Type() != object.NULL_OBJ {
		fmt.Println(result.Inspect())
	}

	return nil
}

// evalTopLevel mirrors the evaluator's own program-level loop (return/error
// short-circuit the remaining statements), but runs it here so --trace can
// announce each statement immediately before it executes.
func evalTopLevel(ev *eval.Evaluator, program *ast.Program, env *object.Environment) object.Value {
	var result object.Value = object.NULL
	for _, stmt := range program.Statements {
		if trace {
			fmt.Fprintf(os.Stderr, "[trace] %s\n", stmt.String())
		}
		result = ev.Eval(stmt, env)
		switch result.Type() {
		case object.RETURN_VALUE_OBJ:
			if rv, ok := result.(*object.ReturnValue); ok {
				return rv.Value
			}
			return result
		case object.ERROR_OBJ:
			return result
		}
	}
	return result
}
