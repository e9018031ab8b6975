// Package repl implements the interactive read-eval-print loop described in
// spec §6: prompt "user> ", one line of input per iteration, EOF exits 0,
// reader errors print "error: <message>\n" and the loop continues.
//
// Grounded on amoghasbhardwaj-Eloquence/repl/repl.go's Start(in io.Reader,
// out io.Writer) shape and persistent-environment-across-iterations idiom
// — cited because the teacher itself (CWBudde-go-dws) has no interactive
// REPL command of its own to adapt. Error formatting instead follows the
// teacher's internal/errors idiom (a position-aware Format method), not
// Eloquence's ad hoc ANSI-prefixed strings: the mal REPL contract is a
// plain "error: MSG" line, with no color codes, no banner, no dot-commands.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cwbudde/go-mal/internal/builtins"
	"github.com/cwbudde/go-mal/internal/config"
	"github.com/cwbudde/go-mal/internal/env"
	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/printer"
	"github.com/cwbudde/go-mal/internal/reader"
)

// Start runs the loop against in/out until in is exhausted. cfg supplies
// the prompt (its other fields are not read by the loop); pass
// config.DefaultREPL() for the plain spec-mandated behavior.
func Start(in io.Reader, out io.Writer, cfg config.REPL) {
	e := builtins.New(out)
	StartWithEnv(in, out, cfg, e)
}

// StartWithEnv runs the loop against a caller-supplied environment, used by
// `mal run` to drop into an interactive session after loading a file.
func StartWithEnv(in io.Reader, out io.Writer, cfg config.REPL, e *env.Environment) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, cfg.Prompt)

		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		form, err := reader.ReadString(line)
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err.Error())
			continue
		}
		if form == nil {
			continue
		}

		result := eval.Eval(form, e)
		fmt.Fprintf(out, "%s\n", printer.PrStr(result, true))
	}
}
