// Package config loads the optional REPL preferences file (SPEC_FULL.md
// §10). This is purely ambient CLI behavior: its absence changes nothing
// about the language's observable semantics (spec §6: "no persisted
// state"), and its presence only tweaks REPL cosmetics.
//
// No single teacher file grounds this package — the teacher has no config
// layer of its own — but the library choice follows the teacher's go.mod
// directly (goccy/go-yaml is the host corpus's YAML library of choice).
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// REPL holds the tunable cosmetics of the interactive loop. The loop reads
// only Prompt; ShowBanner and DumpAST are loaded and kept but nothing in
// the REPL acts on them.
type REPL struct {
	Prompt     string `yaml:"prompt"`
	ShowBanner bool   `yaml:"show_banner"`
	DumpAST    bool   `yaml:"dump_ast"`
}

// DefaultREPL matches the external interface contract in spec §6: the
// prompt is exactly "user> ".
func DefaultREPL() REPL {
	return REPL{Prompt: "user> ", ShowBanner: false, DumpAST: false}
}

// Load reads path as YAML into a REPL config, falling back silently to
// DefaultREPL if the file does not exist. A malformed file that does exist
// is reported as an error — silence is only for absence, not corruption.
func Load(path string) (REPL, error) {
	cfg := DefaultREPL()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
