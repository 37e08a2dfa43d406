package object

import "testing"

func TestIntegerHashKey(t *testing.T) {
	a := &Integer{Value: 5}
	b := &Integer{Value: 5}
	c := &Integer{Value: 6}
	if a.HashKey() != b.HashKey() {
		t.Error("expected equal Integers to have equal hash keys")
	}
	if a.HashKey() == c.HashKey() {
		t.Error("expected different Integers to have different hash keys")
	}
}

func TestStringHashKey(t *testing.T) {
	a := &String{Value: "hello"}
	b := &String{Value: "hello"}
	c := &String{Value: "world"}
	if a.HashKey() != b.HashKey() {
		t.Error("expected equal Strings to have equal hash keys")
	}
	if a.HashKey() == c.HashKey() {
		t.Error("expected different Strings to have different hash keys")
	}
}

func TestBooleanSingletonsAndHashKey(t *testing.T) {
	if TRUE.HashKey() == FALSE.HashKey() {
		t.Error("expected TRUE and FALSE to have different hash keys")
	}
	if NativeBool(true) != TRUE || NativeBool(false) != FALSE {
		t.Error("expected NativeBool to return the shared singletons")
	}
}

func TestIntegerFloatDistinctHashKeys(t *testing.T) {
	i := &Integer{Value: 1}
	f := &Float{Value: 1}
	if i.HashKey() == f.HashKey() {
		t.Error("expected Integer(1) and Float(1) to hash differently (distinct type tags)")
	}
}

func TestInspect(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{&Integer{Value: 42}, "42"},
		{&Float{Value: 1.5}, "1.5"},
		{TRUE, "true"},
		{FALSE, "false"},
		{NULL, "null"},
		{&String{Value: "hi"}, "hi"},
		{&Error{Message: "boom"}, "ERROR: boom"},
	}
	for _, tt := range tests {
		if got := tt.val.Inspect(); got != tt.want {
			t.Errorf("Inspect() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	truthy := []Value{TRUE, &Integer{Value: 0}, &String{Value: ""}, &Array{}}
	for _, v := range truthy {
		if !IsTruthy(v) {
			t.Errorf("expected %v to be truthy", v.Inspect())
		}
	}
	falsy := []Value{FALSE, NULL}
	for _, v := range falsy {
		if IsTruthy(v) {
			t.Errorf("expected %v to be falsy", v.Inspect())
		}
	}
}

func TestIsError(t *testing.T) {
	if !IsError(&Error{Message: "x"}) {
		t.Error("expected *Error to be an error")
	}
	if IsError(&Integer{Value: 1}) {
		t.Error("expected *Integer not to be an error")
	}
}
