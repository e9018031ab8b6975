package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/spf13/cobra"
	"golang.org/x/text/width"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a mal source file and print its tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE:  lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", true, "show line:column for each token")
}

func lexScript(_ *cobra.Command, args []string) error {
	var input string
	switch {
	case evalExpr != "":
		input = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	tokens, err := reader.Tokenize(input)
	if err != nil {
		fmt.Fprint(os.Stderr, err.Format(true))
		return fmt.Errorf("tokenizing failed")
	}

	for _, t := range tokens {
		printToken(t)
	}
	return nil
}

// printToken aligns the literal column using golang.org/x/text/width's
// East-Asian-width-aware rune count, so that a mal source file containing
// wide CJK identifiers (a legal mal Symbol byte sequence; the grammar
// places no restriction on Unicode symbols) still lines up in the debug
// dump the way an ASCII-only file does.
func printToken(t reader.Token) {
	lit := t.Literal
	padded := lit
	visualWidth := 0
	for _, r := range lit {
		if width.LookupRune(r).Kind() == width.EastAsianWide {
			visualWidth += 2
		} else {
			visualWidth++
		}
	}
	for visualWidth < 12 {
		padded += " "
		visualWidth++
	}

	if showPos {
		fmt.Printf("%-14s %s @%d:%d\n", t.Kind.String(), padded, t.Pos.Line, t.Pos.Column)
	} else {
		fmt.Printf("%-14s %s\n", t.Kind.String(), padded)
	}
}
