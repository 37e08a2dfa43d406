package builtins

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cyber-lang/cyber/internal/object"
)

var stdinReader = bufio.NewReader(os.Stdin)

func registerIO(r *Registry) {
	r.register("print", CategoryIO, builtinPrint)
	r.register("input", CategoryIO, builtinInput)
}

func builtinPrint(_ Context, args []object.Value) object.Value {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Inspect()
	}
	fmt.Println(strings.Join(parts, " "))
	return object.NULL
}

func builtinInput(_ Context, args []object.Value) object.Value {
	if len(args) > 1 {
		return newError("wrong number of arguments. got=%d, want=0 or 1", len(args))
	}
	if len(args) == 1 {
		s, ok := args[0].(*object.String)
		if !ok {
			return newError("argument to `input` not supported, got %s", args[0].Type())
		}
		fmt.Print(s.Value)
	}
	line, _ := stdinReader.ReadString('\n')
	return &object.String{Value: strings.TrimRight(line, "\r\n")}
}
