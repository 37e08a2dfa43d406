package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cyber-lang/cyber/internal/ast"
	"github.com/cyber-lang/cyber/internal/lexer"
	"github.com/cyber-lang/cyber/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseExpr    string
	parseAsJSON  bool
	parseDumpAST bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a cyber file and display its AST",
	Long: `Parse cyber source code and display the Abstract Syntax Tree.

Use -e to parse an inline expression instead of a file.
Use --dump-ast for an indented tree view, or --json for a machine-readable
(json.MarshalIndent) dump.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump an indented AST tree")
	parseCmd.Flags().BoolVar(&parseAsJSON, "json", false, "dump the AST as JSON")
}

func runParse(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case parseExpr != "":
		input = parseExpr
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Parser errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e.Error())
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	switch {
	case parseAsJSON:
		enc, err := json.MarshalIndent(nodeToJSON(program), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(enc))
	case parseDumpAST:
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
	default:
		fmt.Println(program.String())
	}

	return nil
}

func dumpASTNode(node ast.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", pad, len(n.Statements))
		for _, s := range n.Statements {
			dumpASTNode(s, indent+1)
		}
	case *ast.BlockStatement:
		fmt.Printf("%sBlockStatement (%d statements)\n", pad, len(n.Statements))
		for _, s := range n.Statements {
			dumpASTNode(s, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", pad)
		dumpASTNode(n.Expression, indent+1)
	case *ast.LetStatement:
		fmt.Printf("%sLetStatement %s\n", pad, n.Name.Value)
		dumpASTNode(n.Value, indent+1)
	case *ast.ReturnStatement:
		fmt.Printf("%sReturnStatement\n", pad)
		if n.ReturnValue != nil {
			dumpASTNode(n.ReturnValue, indent+1)
		}
	case *ast.AssertStatement:
		fmt.Printf("%sAssertStatement\n", pad)
		dumpASTNode(n.Condition, indent+1)
		if n.Message != nil {
			dumpASTNode(n.Message, indent+1)
		}
	case *ast.WhileStatement:
		fmt.Printf("%sWhileStatement\n", pad)
		dumpASTNode(n.Condition, indent+1)
		dumpASTNode(n.Body, indent+1)
	case *ast.ForStatement:
		fmt.Printf("%sForStatement\n", pad)
		if n.Init != nil {
			dumpASTNode(n.Init, indent+1)
		}
		if n.Condition != nil {
			dumpASTNode(n.Condition, indent+1)
		}
		if n.Increment != nil {
			dumpASTNode(n.Increment, indent+1)
		}
		dumpASTNode(n.Body, indent+1)
	case *ast.ForInStatement:
		fmt.Printf("%sForInStatement %s\n", pad, n.Iterator.Value)
		dumpASTNode(n.Iterable, indent+1)
		dumpASTNode(n.Body, indent+1)
	case *ast.ClassStatement:
		fmt.Printf("%sClassStatement %s\n", pad, n.Name.Value)
		if n.Superclass != nil {
			fmt.Printf("%s  Superclass: %s\n", pad, n.Superclass.Value)
		}
		dumpASTNode(n.Body, indent+1)
	case *ast.AsyncStatement:
		fmt.Printf("%sAsyncStatement\n", pad)
		dumpASTNode(n.Statement, indent+1)
	case *ast.BreakStatement:
		fmt.Printf("%sBreakStatement\n", pad)
	case *ast.ContinueStatement:
		fmt.Printf("%sContinueStatement\n", pad)
	case *ast.PassStatement:
		fmt.Printf("%sPassStatement\n", pad)
	case *ast.ImportStatement:
		fmt.Printf("%sImportStatement %q\n", pad, n.Path.Value)
	case *ast.FromImportStatement:
		fmt.Printf("%sFromImportStatement %q\n", pad, n.Path.Value)
	case *ast.RaiseStatement:
		fmt.Printf("%sRaiseStatement\n", pad)
		dumpASTNode(n.Expression, indent+1)
	case *ast.TryStatement:
		fmt.Printf("%sTryStatement\n", pad)
		dumpASTNode(n.Block, indent+1)
		if n.ExceptBlock != nil {
			dumpASTNode(n.ExceptBlock, indent+1)
		}
		if n.FinallyBlock != nil {
			dumpASTNode(n.FinallyBlock, indent+1)
		}
	case *ast.WithStatement:
		fmt.Printf("%sWithStatement\n", pad)
		dumpASTNode(n.Expression, indent+1)
		dumpASTNode(n.Body, indent+1)

	case *ast.IntegerLiteral:
		fmt.Printf("%sIntegerLiteral: %d\n", pad, n.Value)
	case *ast.FloatLiteral:
		fmt.Printf("%sFloatLiteral: %g\n", pad, n.Value)
	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", pad, n.Value)
	case *ast.BooleanLiteral:
		fmt.Printf("%sBooleanLiteral: %v\n", pad, n.Value)
	case *ast.NullLiteral:
		fmt.Printf("%sNullLiteral\n", pad)
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", pad, n.Value)
	case *ast.SelfExpression:
		fmt.Printf("%sSelfExpression\n", pad)
	case *ast.SuperExpression:
		fmt.Printf("%sSuperExpression\n", pad)
	case *ast.PrefixExpression:
		fmt.Printf("%sPrefixExpression (%s)\n", pad, n.Operator)
		dumpASTNode(n.Right, indent+1)
	case *ast.InfixExpression:
		fmt.Printf("%sInfixExpression (%s)\n", pad, n.Operator)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.AssignExpression:
		fmt.Printf("%sAssignExpression (%s)\n", pad, n.Operator)
		dumpASTNode(n.Target, indent+1)
		dumpASTNode(n.Value, indent+1)
	case *ast.ArrayLiteral:
		fmt.Printf("%sArrayLiteral (%d elements)\n", pad, len(n.Elements))
		for _, el := range n.Elements {
			dumpASTNode(el, indent+1)
		}
	case *ast.IndexExpression:
		fmt.Printf("%sIndexExpression\n", pad)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Index, indent+1)
	case *ast.HashLiteral:
		fmt.Printf("%sHashLiteral (%d pairs)\n", pad, len(n.Keys))
		for i := range n.Keys {
			dumpASTNode(n.Keys[i], indent+1)
			dumpASTNode(n.Values[i], indent+1)
		}
	case *ast.IfExpression:
		fmt.Printf("%sIfExpression\n", pad)
		dumpASTNode(n.Condition, indent+1)
		dumpASTNode(n.Consequence, indent+1)
		if n.Alternative != nil {
			dumpASTNode(n.Alternative, indent+1)
		}
	case *ast.FunctionLiteral:
		fmt.Printf("%sFunctionLiteral %s (%d params)\n", pad, n.Name, len(n.Parameters))
		dumpASTNode(n.Body, indent+1)
	case *ast.CallExpression:
		fmt.Printf("%sCallExpression (%d args)\n", pad, len(n.Arguments))
		dumpASTNode(n.Callee, indent+1)
		for _, a := range n.Arguments {
			dumpASTNode(a, indent+1)
		}
	case *ast.NewExpression:
		fmt.Printf("%sNewExpression\n", pad)
		dumpASTNode(n.Class, indent+1)
	case *ast.AwaitExpression:
		fmt.Printf("%sAwaitExpression\n", pad)
		dumpASTNode(n.Expression, indent+1)
	case *ast.YieldExpression:
		fmt.Printf("%sYieldExpression\n", pad)
		if n.Expression != nil {
			dumpASTNode(n.Expression, indent+1)
		}

	default:
		fmt.Printf("%s%T: %s\n", pad, node, node.String())
	}
}

// nodeToJSON builds a generic {"type": ..., fields...} map for json.MarshalIndent,
// walking the same node kinds dumpASTNode understands rather than leaning on
// reflection over unexported parser internals.
func nodeToJSON(node ast.Node) map[string]any {
	if node == nil {
		return nil
	}

	t := fmt.Sprintf("%T", node)

	switch n := node.(type) {
	case *ast.Program:
		return map[string]any{"type": t, "statements": nodesToJSON(stmtsToNodes(n.Statements))}
	case *ast.BlockStatement:
		return map[string]any{"type": t, "statements": nodesToJSON(stmtsToNodes(n.Statements))}
	case *ast.ExpressionStatement:
		return map[string]any{"type": t, "expression": nodeToJSON(n.Expression)}
	case *ast.LetStatement:
		return map[string]any{"type": t, "name": n.Name.Value, "value": nodeToJSON(n.Value)}
	case *ast.ReturnStatement:
		return map[string]any{"type": t, "value": nodeToJSON(n.ReturnValue)}
	case *ast.AssertStatement:
		return map[string]any{"type": t, "condition": nodeToJSON(n.Condition), "message": nodeToJSON(n.Message)}
	case *ast.WhileStatement:
		return map[string]any{"type": t, "condition": nodeToJSON(n.Condition), "body": nodeToJSON(n.Body)}
	case *ast.ForStatement:
		return map[string]any{"type": t, "init": nodeToJSON(stmtNode(n.Init)), "condition": nodeToJSON(n.Condition), "increment": nodeToJSON(stmtNode(n.Increment)), "body": nodeToJSON(n.Body)}
	case *ast.ForInStatement:
		return map[string]any{"type": t, "iterator": n.Iterator.Value, "iterable": nodeToJSON(n.Iterable), "body": nodeToJSON(n.Body)}
	case *ast.ClassStatement:
		m := map[string]any{"type": t, "name": n.Name.Value, "body": nodeToJSON(n.Body)}
		if n.Superclass != nil {
			m["superclass"] = n.Superclass.Value
		}
		return m
	case *ast.AsyncStatement:
		return map[string]any{"type": t, "statement": nodeToJSON(n.Statement)}
	case *ast.BreakStatement, *ast.ContinueStatement, *ast.PassStatement,
		*ast.SelfExpression, *ast.SuperExpression, *ast.NullLiteral:
		return map[string]any{"type": t}
	case *ast.ImportStatement:
		return map[string]any{"type": t, "path": n.Path.Value}
	case *ast.FromImportStatement:
		names := make([]string, len(n.Imports))
		for i, id := range n.Imports {
			names[i] = id.Value
		}
		return map[string]any{"type": t, "path": n.Path.Value, "imports": names}
	case *ast.RaiseStatement:
		return map[string]any{"type": t, "expression": nodeToJSON(n.Expression)}
	case *ast.TryStatement:
		m := map[string]any{"type": t, "block": nodeToJSON(n.Block)}
		if n.ExceptBlock != nil {
			m["except"] = nodeToJSON(n.ExceptBlock)
		}
		if n.FinallyBlock != nil {
			m["finally"] = nodeToJSON(n.FinallyBlock)
		}
		return m
	case *ast.WithStatement:
		return map[string]any{"type": t, "expression": nodeToJSON(n.Expression), "body": nodeToJSON(n.Body)}

	case *ast.IntegerLiteral:
		return map[string]any{"type": t, "value": n.Value}
	case *ast.FloatLiteral:
		return map[string]any{"type": t, "value": n.Value}
	case *ast.StringLiteral:
		return map[string]any{"type": t, "value": n.Value}
	case *ast.BooleanLiteral:
		return map[string]any{"type": t, "value": n.Value}
	case *ast.Identifier:
		return map[string]any{"type": t, "value": n.Value}
	case *ast.PrefixExpression:
		return map[string]any{"type": t, "operator": n.Operator, "right": nodeToJSON(n.Right)}
	case *ast.InfixExpression:
		return map[string]any{"type": t, "operator": n.Operator, "left": nodeToJSON(n.Left), "right": nodeToJSON(n.Right)}
	case *ast.AssignExpression:
		return map[string]any{"type": t, "operator": n.Operator, "target": nodeToJSON(n.Target), "value": nodeToJSON(n.Value)}
	case *ast.ArrayLiteral:
		elems := make([]map[string]any, len(n.Elements))
		for i, e := range n.Elements {
			elems[i] = nodeToJSON(e)
		}
		return map[string]any{"type": t, "elements": elems}
	case *ast.IndexExpression:
		return map[string]any{"type": t, "left": nodeToJSON(n.Left), "index": nodeToJSON(n.Index)}
	case *ast.HashLiteral:
		keys := make([]map[string]any, len(n.Keys))
		values := make([]map[string]any, len(n.Values))
		for i := range n.Keys {
			keys[i] = nodeToJSON(n.Keys[i])
			values[i] = nodeToJSON(n.Values[i])
		}
		return map[string]any{"type": t, "keys": keys, "values": values}
	case *ast.IfExpression:
		m := map[string]any{"type": t, "condition": nodeToJSON(n.Condition), "consequence": nodeToJSON(n.Consequence)}
		if n.Alternative != nil {
			m["alternative"] = nodeToJSON(n.Alternative)
		}
		return m
	case *ast.FunctionLiteral:
		params := make([]string, len(n.Parameters))
		for i, p := range n.Parameters {
			params[i] = p.Value
		}
		return map[string]any{"type": t, "name": n.Name, "parameters": params, "body": nodeToJSON(n.Body)}
	case *ast.CallExpression:
		args := make([]map[string]any, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = nodeToJSON(a)
		}
		return map[string]any{"type": t, "callee": nodeToJSON(n.Callee), "arguments": args}
	case *ast.NewExpression:
		return map[string]any{"type": t, "class": nodeToJSON(n.Class)}
	case *ast.AwaitExpression:
		return map[string]any{"type": t, "expression": nodeToJSON(n.Expression)}
	case *ast.YieldExpression:
		return map[string]any{"type": t, "expression": nodeToJSON(n.Expression)}

	default:
		return map[string]any{"type": t, "source": node.String()}
	}
}

func stmtNode(s ast.Statement) ast.Node {
	if s == nil {
		return nil
	}
	return s
}

func stmtsToNodes(stmts []ast.Statement) []ast.Node {
	out := make([]ast.Node, len(stmts))
	for i, s := range stmts {
		out[i] = s
	}
	return out
}

func nodesToJSON(nodes []ast.Node) []map[string]any {
	out := make([]map[string]any, len(nodes))
	for i, n := range nodes {
		out[i] = nodeToJSON(n)
	}
	return out
}
