package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultREPL(t *testing.T) {
	cfg := DefaultREPL()
	if cfg.Prompt != "user> " {
		t.Errorf("DefaultREPL().Prompt = %q, want %q", cfg.Prompt, "user> ")
	}
	if cfg.ShowBanner || cfg.DumpAST {
		t.Errorf("DefaultREPL() should have all cosmetic flags off")
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load of a missing file should not error, got %s", err)
	}
	if cfg != DefaultREPL() {
		t.Errorf("Load of a missing file should return DefaultREPL(), got %+v", cfg)
	}
}

func TestLoadOverridesPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mal.yaml")
	if err := os.WriteFile(path, []byte("prompt: \"mal> \"\nshow_banner: true\n"), 0o644); err != nil {
		t.Fatalf("failed writing fixture: %s", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %s", err)
	}
	if cfg.Prompt != "mal> " {
		t.Errorf("cfg.Prompt = %q, want %q", cfg.Prompt, "mal> ")
	}
	if !cfg.ShowBanner {
		t.Errorf("cfg.ShowBanner should be true")
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("prompt: [this is not a string"), 0o644); err != nil {
		t.Fatalf("failed writing fixture: %s", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("Load of a malformed YAML file should return an error")
	}
}
