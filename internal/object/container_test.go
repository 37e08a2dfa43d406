package object

import "testing"

func TestArrayInspect(t *testing.T) {
	a := &Array{Elements: []Value{&Integer{Value: 1}, &String{Value: "x"}}}
	if got, want := a.Inspect(), "[1, x]"; got != want {
		t.Errorf("Inspect() = %q, want %q", got, want)
	}
}

func TestHashSetGetPreservesInsertionOrder(t *testing.T) {
	h := NewHash()
	h.Set(&String{Value: "b"}, &Integer{Value: 2})
	h.Set(&String{Value: "a"}, &Integer{Value: 1})
	h.Set(&String{Value: "b"}, &Integer{Value: 20}) // overwrite, same position

	if len(h.Order) != 2 {
		t.Fatalf("expected 2 distinct keys, got %d", len(h.Order))
	}

	v, ok := h.Get(&String{Value: "b"})
	if !ok || v.(*Integer).Value != 20 {
		t.Fatalf("expected overwritten value 20, got %v", v)
	}

	// Insertion order: "b" first, then "a", despite the overwrite.
	first := h.Pairs[h.Order[0]]
	if first.Key.(*String).Value != "b" {
		t.Errorf("expected first key to remain %q, got %q", "b", first.Key.(*String).Value)
	}
}

func TestHashGetMissing(t *testing.T) {
	h := NewHash()
	if _, ok := h.Get(&String{Value: "missing"}); ok {
		t.Error("expected lookup of missing key to fail")
	}
}
