// Command cyber is the cyber language interpreter's command-line entry point.
package main

import (
	"os"

	"github.com/cyber-lang/cyber/cmd/cyber/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
