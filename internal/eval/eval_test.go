package eval

import (
	"testing"

	"github.com/cyber-lang/cyber/internal/lexer"
	"github.com/cyber-lang/cyber/internal/object"
	"github.com/cyber-lang/cyber/internal/parser"
)

func run(t *testing.T, input string) object.Value {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parser errors on %q: %v", input, errs)
	}
	ev := New()
	env := NewGlobalEnvironment()
	return ev.Eval(program, env)
}

func TestScenario1_IntegerArithmetic(t *testing.T) {
	if got := run(t, "let a = 5; a + 10;").Inspect(); got != "15" {
		t.Errorf("got %s", got)
	}
}

func TestScenario2_FunctionCall(t *testing.T) {
	if got := run(t, "let add = fn(x,y){x+y}; add(2,3);").Inspect(); got != "5" {
		t.Errorf("got %s", got)
	}
}

func TestScenario3_Closures(t *testing.T) {
	if got := run(t, "let mk = fn(x){ fn(y){ x+y } }; mk(2)(3);").Inspect(); got != "5" {
		t.Errorf("got %s", got)
	}
}

func TestScenario4_ClassesAndSelf(t *testing.T) {
	src := `class P { fn init(self,n){ self.n = n } fn g(self){ return "hi "+self.n } } let p = new P("x"); p.g();`
	if got := run(t, src).Inspect(); got != "hi x" {
		t.Errorf("got %s", got)
	}
}

func TestScenario5_ReduceOverArray(t *testing.T) {
	src := `let a=[1,2,3]; reduce(fn(x,y){x+y}, a, 0);`
	if got := run(t, src).Inspect(); got != "6" {
		t.Errorf("got %s", got)
	}
}

func TestScenario6_TypeMismatchError(t *testing.T) {
	result := run(t, "5 + true;")
	errVal, ok := result.(*object.Error)
	if !ok {
		t.Fatalf("expected *object.Error, got %T (%s)", result, result.Inspect())
	}
	if errVal.Message != "type mismatch: INTEGER + BOOLEAN" {
		t.Errorf("got message %q", errVal.Message)
	}
}

func TestScenario8_HashInsertionOrder(t *testing.T) {
	if got := run(t, `{"a":1,"b":2};`).Inspect(); got != `{a: 1, b: 2}` {
		t.Errorf("got %s", got)
	}
}

func TestPrefixOperatorInvariants(t *testing.T) {
	if got := run(t, "-(-5);").Inspect(); got != "5" {
		t.Errorf("got %s", got)
	}
	if got := run(t, "~(~5);").Inspect(); got != "5" {
		t.Errorf("got %s", got)
	}
	if got := run(t, "5 + 0;").Inspect(); got != "5" {
		t.Errorf("got %s", got)
	}
	if got := run(t, "5 * 1;").Inspect(); got != "5" {
		t.Errorf("got %s", got)
	}
}

func TestHashMemberAndIndexAgree(t *testing.T) {
	src := `let h = {"k": 7}; h["k"] == h.k;`
	if got := run(t, src).Inspect(); got != "true" {
		t.Errorf("got %s", got)
	}
}

func TestIntStrRoundTrip(t *testing.T) {
	if got := run(t, "int(str(42));").Inspect(); got != "42" {
		t.Errorf("got %s", got)
	}
}

func TestMapFilterReduceLengthInvariants(t *testing.T) {
	src := `let a = [1,2,3,4]; len(map(fn(x){x*2}, a));`
	if got := run(t, src).Inspect(); got != "4" {
		t.Errorf("got %s", got)
	}
	src2 := `let a = [1,2,3,4]; len(filter(fn(x){x>2}, a));`
	if got := run(t, src2).Inspect(); got != "2" {
		t.Errorf("got %s", got)
	}
}

func TestTruthiness(t *testing.T) {
	cases := map[string]string{
		"!!0;":     "true",
		"!!null;":  "false",
		"!!false;": "false",
		"!!1;":     "true",
		"!!\"\";":  "true",
	}
	for src, want := range cases {
		if got := run(t, src).Inspect(); got != want {
			t.Errorf("%s: got %s, want %s", src, got, want)
		}
	}
}

func TestClosuresCaptureLiveFrame(t *testing.T) {
	src := `
let counter = 0;
let get = fn(){ return counter; };
counter = counter + 3;
get();
`
	if got := run(t, src).Inspect(); got != "3" {
		t.Errorf("got %s", got)
	}
}

func TestForLoopBreakContinue(t *testing.T) {
	src := `
let acc = {"out": ""};
for (let i=0; i<5; i=i+1) {
	if (i==1) { continue }
	if (i==3) { break }
	acc.out = acc.out + str(i);
}
acc.out;
`
	if got := run(t, src).Inspect(); got != "02" {
		t.Errorf("got %s", got)
	}
}

func TestForInOverArrayAndString(t *testing.T) {
	src := `
let acc = {"total": 0};
for (x in [1,2,3]) { acc.total = acc.total + x; }
acc.total;
`
	if got := run(t, src).Inspect(); got != "6" {
		t.Errorf("got %s", got)
	}

	src2 := `
let acc = {"out": ""};
for (c in "ab") { acc.out = acc.out + c; }
acc.out;
`
	if got := run(t, src2).Inspect(); got != "ab" {
		t.Errorf("got %s", got)
	}
}

func TestSuperDispatchWalksOneLevelPerCall(t *testing.T) {
	src := `
class A { fn who(self){ return "A" } }
class B : A { fn who(self){ return "B:" + super.who() } }
class C : B { fn who(self){ return "C:" + super.who() } }
let c = new C();
c.who();
`
	if got := run(t, src).Inspect(); got != "C:B:A" {
		t.Errorf("got %s", got)
	}
}

func TestAssertPassAndFail(t *testing.T) {
	if got := run(t, "assert true;").Inspect(); got != "null" {
		t.Errorf("got %s", got)
	}
	result := run(t, `assert false, "boom";`)
	errVal, ok := result.(*object.Error)
	if !ok {
		t.Fatalf("expected error, got %s", result.Inspect())
	}
	if errVal.Message != "assertion failed: boom" {
		t.Errorf("got %q", errVal.Message)
	}
}

func TestUnsupportedConstructsErrorClearly(t *testing.T) {
	result := run(t, `import "foo";`)
	errVal, ok := result.(*object.Error)
	if !ok {
		t.Fatalf("expected error, got %s", result.Inspect())
	}
	if errVal.Message != "not supported: import statement" {
		t.Errorf("got %q", errVal.Message)
	}
}

func TestArrayIndexOutOfRangeIsNull(t *testing.T) {
	if got := run(t, "[1,2,3][10];").Inspect(); got != "null" {
		t.Errorf("got %s", got)
	}
}

func TestStringNotIndexable(t *testing.T) {
	result := run(t, `"abc"[0];`)
	if !object.IsError(result) {
		t.Fatalf("expected error, got %s", result.Inspect())
	}
}

func TestCompoundAssignment(t *testing.T) {
	src := `let x = 10; x += 5; x;`
	if got := run(t, src).Inspect(); got != "15" {
		t.Errorf("got %s", got)
	}
}

func TestMixedIntFloatPromotion(t *testing.T) {
	if got := run(t, "1 + 2.5;").Inspect(); got != "3.5" {
		t.Errorf("got %s", got)
	}
}
