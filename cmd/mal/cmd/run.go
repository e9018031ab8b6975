package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-mal/internal/builtins"
	"github.com/cwbudde/go-mal/internal/config"
	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/printer"
	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/cwbudde/go-mal/internal/repl"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	withJSON bool
	interact bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a mal source file or expression",
	Long: `Evaluate every top-level form of a mal program from a file or
inline expression, printing the final form's result.

Examples:
  # Run a script file
  mal run script.mal

  # Evaluate an inline expression
  mal run -e "(+ 1 (* 2 3))"

  # Dump the parsed forms before evaluating them
  mal run --dump-ast script.mal`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print each parsed form before evaluating it")
	runCmd.Flags().BoolVar(&withJSON, "with-json", false, "register the optional json-str/json-parse builtins")
	runCmd.Flags().BoolVar(&interact, "interact", false, "drop into the REPL after the script runs, sharing its environment")
}

func runScript(_ *cobra.Command, args []string) error {
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

	forms, readErr := reader.ReadAll(input)
	if readErr != nil {
		fmt.Fprint(os.Stderr, readErr.Format(true))
		return fmt.Errorf("parsing failed")
	}

	env := builtins.New(os.Stdout)
	if withJSON {
		builtins.RegisterJSONExtras(env)
	}

	var result = "nil"
	for _, form := range forms {
		if dumpAST {
			pretty.Println(form)
		}
		v := eval.Eval(form, env)
		result = printer.PrStr(v, true)
	}
	fmt.Println(result)

	if interact {
		repl.StartWithEnv(os.Stdin, os.Stdout, config.DefaultREPL(), env)
	}

	return nil
}
