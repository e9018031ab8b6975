package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-mal/internal/config"
	"github.com/cwbudde/go-mal/internal/repl"
	"github.com/spf13/cobra"
)

var replConfigPath string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive read-eval-print loop",
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&replConfigPath, "config", "", "path to a REPL preferences YAML file")
}

func runREPL(_ *cobra.Command, _ []string) error {
	cfg := config.DefaultREPL()
	if replConfigPath != "" {
		loaded, err := config.Load(replConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load REPL config %s: %w", replConfigPath, err)
		}
		cfg = loaded
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[mal repl] prompt=%q\n", cfg.Prompt)
	}

	repl.Start(os.Stdin, os.Stdout, cfg)
	return nil
}
