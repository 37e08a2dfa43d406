package cmd

import (
	"strings"
	"testing"
)

func resetParseFlags() {
	parseExpr = ""
	parseAsJSON = false
	parseDumpAST = false
}

func TestRunParsePlainString(t *testing.T) {
	defer resetParseFlags()
	parseExpr = "let a = 5;"

	out, err := captureStdout(t, func() error { return runParse(parseCmd, nil) })
	if err != nil {
		t.Fatalf("runParse failed: %v", err)
	}
	if !strings.Contains(out, "let a = 5;") {
		t.Errorf("got %q", out)
	}
}

func TestRunParseDumpAST(t *testing.T) {
	defer resetParseFlags()
	parseExpr = "1 + 2;"
	parseDumpAST = true

	out, err := captureStdout(t, func() error { return runParse(parseCmd, nil) })
	if err != nil {
		t.Fatalf("runParse failed: %v", err)
	}
	if !strings.Contains(out, "InfixExpression (+)") {
		t.Errorf("got %q", out)
	}
}

func TestRunParseJSON(t *testing.T) {
	defer resetParseFlags()
	parseExpr = "1 + 2;"
	parseAsJSON = true

	out, err := captureStdout(t, func() error { return runParse(parseCmd, nil) })
	if err != nil {
		t.Fatalf("runParse failed: %v", err)
	}
	if !strings.Contains(out, `"operator": "+"`) {
		t.Errorf("got %q", out)
	}
}

func TestRunParseErrorReturnsError(t *testing.T) {
	defer resetParseFlags()
	parseExpr = "let = ;"

	if err := runParse(parseCmd, nil); err == nil {
		t.Fatal("expected an error for unparseable input")
	}
}
