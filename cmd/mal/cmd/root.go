// Package cmd implements mal's cobra command tree, grounded on
// cmd/dwscript/cmd/root.go's init()-registered-flags idiom.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version/GitCommit/BuildDate are overridden at build time via
	// -ldflags, matching cmd/dwscript/cmd/root.go's version-variable
	// convention.
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:     "mal",
	Short:   "A small Lisp-family interpreter",
	Version: Version,
	Long: `mal is an interpreter for a small Lisp-family teaching dialect:
nil, booleans, integers, strings, keywords, symbols, lists, vectors,
hash maps, builtin procedures, and user-defined closures, evaluated
against a lexically scoped environment.

Running mal with no subcommand starts the interactive REPL.`,
	RunE: func(c *cobra.Command, args []string) error {
		return replCmd.RunE(c, args)
	},
}

// Execute runs the root command, exiting the process on error the same
// way cmd/dwscript/cmd/root.go's Execute does.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("mal version %s (%s) built %s\n", Version, GitCommit, BuildDate))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostics")
}
