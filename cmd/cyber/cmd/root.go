// Package cmd implements cyber's command-line interface as a cobra command
// tree with run, parse, lex, and version subcommands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags (-ldflags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cyber",
	Short: "cyber language interpreter",
	Long: `cyber is a tree-walking interpreter for a small dynamically-typed
scripting language: C-like statement syntax, C-style and for-in loops,
closures, single-inheritance classes, and a fixed built-in function library.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
