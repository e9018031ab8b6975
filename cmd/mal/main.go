// Command mal is the CLI front end for the mal interpreter: a cobra
// command tree mirroring cmd/dwscript/cmd's layout (root + repl/run/lex/
// version subcommands).
package main

import "github.com/cwbudde/go-mal/cmd/mal/cmd"

func main() {
	cmd.Execute()
}
