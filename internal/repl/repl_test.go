package repl

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-mal/internal/config"
	"github.com/gkampitakis/go-snaps/snaps"
)

func runSession(input string) string {
	var out strings.Builder
	Start(strings.NewReader(input), &out, config.DefaultREPL())
	return out.String()
}

func TestSessionTranscript(t *testing.T) {
	session := "(+ 1 2)\n(def! x 10)\nx\n"
	snaps.MatchSnapshot(t, "basic_session", runSession(session))
}

func TestSessionWithClosure(t *testing.T) {
	session := "(def! double (fn* (a) (* a 2)))\n(double 21)\n"
	snaps.MatchSnapshot(t, "closure_session", runSession(session))
}

func TestSessionReaderError(t *testing.T) {
	out := runSession("(1 2\n")
	if !strings.Contains(out, "error:") {
		t.Errorf("an unbalanced form should print an error line, got %q", out)
	}
}

func TestSessionBlankLineIsIgnored(t *testing.T) {
	out := runSession("\n1\n")
	if strings.Count(out, "user> ") != 3 {
		t.Errorf("expected one prompt per input line including the blank one, plus the prompt answered by EOF, got %q", out)
	}
}

func TestSessionEOFExitsCleanly(t *testing.T) {
	out := runSession("")
	if out != "user> " {
		t.Errorf("an immediately-closed input should print exactly one prompt, got %q", out)
	}
}

func TestSessionCustomPrompt(t *testing.T) {
	var out strings.Builder
	Start(strings.NewReader("1\n"), &out, config.REPL{Prompt: "mal> "})
	if !strings.HasPrefix(out.String(), "mal> ") {
		t.Errorf("custom prompt should be used verbatim, got %q", out.String())
	}
}
