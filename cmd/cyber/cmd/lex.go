package cmd

import (
	"fmt"
	"os"

	"github.com/cyber-lang/cyber/internal/cerrors"
	"github.com/cyber-lang/cyber/internal/lexer"
	"github.com/cyber-lang/cyber/internal/token"
	"github.com/spf13/cobra"
)

var (
	lexExpr    string
	showPos    bool
	showType   bool
	onlyErrors bool
	lexVerbose bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a cyber file or expression",
	Long: `Tokenize (lex) a cyber program and print the resulting tokens.

Examples:
  # Tokenize a script file
  cyber lex script.cy

  # Tokenize an inline expression
  cyber lex -e "let x = 42;"

  # Show token types and positions
  cyber lex --show-type --show-pos script.cy

  # Show only illegal tokens, with source context
  cyber lex --only-errors --verbose script.cy`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only illegal tokens")
	lexCmd.Flags().BoolVarP(&lexVerbose, "verbose", "v", false, "render illegal tokens with a source-line caret via cerrors")
}

func lexScript(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case lexExpr != "":
		input = lexExpr
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

	tokenCount := 0
	for {
		tok := l.NextToken()

		if onlyErrors && tok.Type != token.ILLEGAL {
			if tok.Type == token.EOF {
				break
			}
			continue
		}

		tokenCount++
		printToken(tok)

		if tok.Type == token.EOF {
			break
		}
	}

	errs := l.Errors()
	if len(errs) > 0 {
		if lexVerbose {
			fmt.Fprintln(os.Stderr, cerrors.FormatLexErrors(errs, input, filename, false))
		}
		return fmt.Errorf("found %d illegal token(s)", len(errs))
	}

	return nil
}

func printToken(tok token.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-12s]", tok.Type)
	}

	switch {
	case tok.Type == token.EOF:
		output += " EOF"
	case tok.Type == token.ILLEGAL:
		output += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	case tok.Literal == "":
		output += fmt.Sprintf(" %s", tok.Type)
	default:
		output += fmt.Sprintf(" %q", tok.Literal)
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	fmt.Println(output)
}
