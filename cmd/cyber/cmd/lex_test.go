package cmd

import (
	"strings"
	"testing"
)

func resetLexFlags() {
	lexExpr = ""
	showPos = false
	showType = false
	onlyErrors = false
	lexVerbose = false
}

func TestLexScriptPrintsTokens(t *testing.T) {
	defer resetLexFlags()
	lexExpr = "let a = 5;"

	out, err := captureStdout(t, func() error { return lexScript(lexCmd, nil) })
	if err != nil {
		t.Fatalf("lexScript failed: %v", err)
	}
	for _, want := range []string{"let", "a", "5", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestLexScriptOnlyErrors(t *testing.T) {
	defer resetLexFlags()
	lexExpr = "let a = $;"
	onlyErrors = true

	_, err := captureStdout(t, func() error { return lexScript(lexCmd, nil) })
	if err == nil {
		t.Fatal("expected an error for illegal input")
	}
}

func TestLexScriptShowTypeAndPos(t *testing.T) {
	defer resetLexFlags()
	lexExpr = "5"
	showType = true
	showPos = true

	out, err := captureStdout(t, func() error { return lexScript(lexCmd, nil) })
	if err != nil {
		t.Fatalf("lexScript failed: %v", err)
	}
	if !strings.Contains(out, "[INT") || !strings.Contains(out, "@1:1") {
		t.Errorf("got %q", out)
	}
}
