package object

import "testing"

func TestEnvironmentGetOuterChain(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})
	inner := NewEnclosedEnvironment(outer)

	v, ok := inner.Get("x")
	if !ok || v.(*Integer).Value != 1 {
		t.Fatalf("expected inner to see outer's x, got %v, %v", v, ok)
	}
}

func TestEnvironmentSetNeverWalksUp(t *testing.T) {
	outer := NewEnvironment()
	outer.Set("x", &Integer{Value: 1})
	inner := NewEnclosedEnvironment(outer)

	inner.Set("x", &Integer{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")

	if innerVal.(*Integer).Value != 2 {
		t.Errorf("expected inner x to be 2, got %d", innerVal.(*Integer).Value)
	}
	if outerVal.(*Integer).Value != 1 {
		t.Errorf("expected outer x to remain 1 (no walk-up write), got %d", outerVal.(*Integer).Value)
	}
}

func TestEnvironmentGetMissing(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Get("nope"); ok {
		t.Error("expected lookup of undefined name to fail")
	}
}
