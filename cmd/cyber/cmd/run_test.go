package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// whatever it wrote.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String(), err
}

func resetRunFlags() {
	evalExpr = ""
	dumpAST = false
	trace = false
}

func TestRunScriptEvalFlag(t *testing.T) {
	defer resetRunFlags()
	evalExpr = "1 + 2;"

	out, err := captureStdout(t, func() error { return runScript(runCmd, nil) })
	if err != nil {
		t.Fatalf("runScript failed: %v", err)
	}
	if strings.TrimSpace(out) != "3" {
		t.Errorf("got %q", out)
	}
}

func TestRunScriptFile(t *testing.T) {
	defer resetRunFlags()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.cy")
	if err := os.WriteFile(path, []byte(`let a = 5; a * 2;`), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	out, err := captureStdout(t, func() error { return runScript(runCmd, []string{path}) })
	if err != nil {
		t.Fatalf("runScript failed: %v", err)
	}
	if strings.TrimSpace(out) != "10" {
		t.Errorf("got %q", out)
	}
}

func TestRunScriptMissingFile(t *testing.T) {
	defer resetRunFlags()
	if err := runScript(runCmd, []string{"/no/such/file.cy"}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRunScriptNoArgs(t *testing.T) {
	defer resetRunFlags()
	if err := runScript(runCmd, nil); err == nil {
		t.Fatal("expected error when neither a file nor -e is given")
	}
}

func TestRunScriptNullResultPrintsNothing(t *testing.T) {
	defer resetRunFlags()
	evalExpr = "let a = 5;"

	out, err := captureStdout(t, func() error { return runScript(runCmd, nil) })
	if err != nil {
		t.Fatalf("runScript failed: %v", err)
	}
	if out != "" {
		t.Errorf("expected no output for a null result, got %q", out)
	}
}

func TestRunScriptRuntimeErrorPrintsButExitsZero(t *testing.T) {
	defer resetRunFlags()
	evalExpr = "5 + true;"

	out, err := captureStdout(t, func() error { return runScript(runCmd, nil) })
	if err != nil {
		t.Fatalf("a runtime error must not be reported as a command error, got: %v", err)
	}
	if !strings.Contains(out, "type mismatch: INTEGER + BOOLEAN") {
		t.Errorf("expected inspected error message in output, got %q", out)
	}
}

func TestRunScriptParserErrorReturnsError(t *testing.T) {
	defer resetRunFlags()
	evalExpr = "let = ;"

	if err := runScript(runCmd, nil); err == nil {
		t.Fatal("expected an error for unparseable input")
	}
}
